package edit

import (
	"github.com/xrsl/rsm/pkg/prompt"
	"github.com/xrsl/rsm/pkg/resume"
)

// Initialize builds a new document: personal information first, then the
// sections the user picks, filled through their Add operation, then the
// order those sections render in. Sections not picked follow in canonical
// order.
func Initialize(p prompt.Prompter) (resume.Document, error) {
	info, err := collectFields(p, personalFields)
	if err != nil {
		return resume.Document{}, err
	}
	doc := resume.Document{PersonalInfo: info}

	editable := resume.Editable()
	picked, err := p.MultiSelect("Choose sections you want to fill", sectionNames(editable), 0)
	if err != nil {
		return resume.Document{}, err
	}
	chosen := resume.Permute(editable, picked)
	for _, s := range chosen {
		add, err := For(s, Add)
		if err != nil {
			return resume.Document{}, err
		}
		if doc, _, err = add(doc, p); err != nil {
			return resume.Document{}, err
		}
	}

	order, err := orderOf(p, "Choose the order of sections", sectionNames(chosen))
	if err != nil {
		return resume.Document{}, err
	}
	doc.OrderedSections = resume.NormalizeOrder(resume.Permute(chosen, order))
	return doc, nil
}
