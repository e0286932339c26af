package edit

import (
	"github.com/xrsl/rsm/pkg/prompt"
	"github.com/xrsl/rsm/pkg/resume"
	"github.com/xrsl/rsm/pkg/summary"
)

var personalFields = []field[resume.PersonalInfo]{
	{name: "Full Name", ptr: func(p *resume.PersonalInfo) *string { return &p.Name }},
	{name: "Phone Number", ptr: func(p *resume.PersonalInfo) *string { return &p.Phone }},
	{name: "Email", ptr: func(p *resume.PersonalInfo) *string { return &p.Email }},
	{name: "LinkedIn URL", optional: true, url: true, ptr: func(p *resume.PersonalInfo) *string { return &p.LinkedIn }},
	{name: "GitHub URL", optional: true, url: true, ptr: func(p *resume.PersonalInfo) *string { return &p.GitHub }},
}

// UpdatePersonalInfo re-asks every personal field. An empty answer keeps
// the current value.
func UpdatePersonalInfo(doc resume.Document, p prompt.Prompter) (resume.Document, summary.Change, error) {
	info, items, err := updateFields(p, doc.PersonalInfo, personalFields)
	if err != nil {
		return doc, summary.Change{}, err
	}
	out := doc.Clone()
	out.PersonalInfo = info
	return out, summary.Change{Title: "Updated personal information", Items: items}, nil
}
