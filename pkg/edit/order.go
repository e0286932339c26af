package edit

import (
	"fmt"

	"github.com/xrsl/rsm/pkg/prompt"
	"github.com/xrsl/rsm/pkg/resume"
	"github.com/xrsl/rsm/pkg/summary"
)

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func isIdentity(order []int) bool {
	for i, v := range order {
		if i != v {
			return false
		}
	}
	return true
}

// orderOf asks for a new order of choices. Fewer than two choices have
// only one order and are not asked about.
func orderOf(p prompt.Prompter, msg string, choices []string) ([]int, error) {
	if len(choices) < 2 {
		return identity(len(choices)), nil
	}
	order, err := p.Order(msg, choices)
	if err != nil {
		return nil, err
	}
	if !resume.IsPermutation(order, len(choices)) {
		return nil, &resume.ValidationError{Problems: []string{fmt.Sprintf("%v is not an order of %d entries", order, len(choices))}}
	}
	return order, nil
}

func sectionNames(sections []resume.Section) []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.String()
	}
	return out
}

// ReorderSections changes the render order of the editable sections and
// then optionally reorders the entries of one of them.
func ReorderSections(doc resume.Document, p prompt.Prompter) (resume.Document, summary.Change, error) {
	out := doc.Clone()
	cur := out.Order()
	order, err := orderOf(p, "Choose the order of sections", sectionNames(cur))
	if err != nil {
		return doc, summary.Change{}, err
	}
	change := summary.Change{Title: "Reordered sections"}
	next := resume.Permute(cur, order)
	if !isIdentity(order) {
		out.OrderedSections = next
		change.Items = sectionNames(next)
	}

	more, err := p.Confirm("Do you want to reorder any section?", false)
	if err != nil {
		return doc, summary.Change{}, err
	}
	if !more {
		return out, change, nil
	}
	i, err := p.Select("Select section to reorder:", sectionNames(next))
	if err != nil {
		return doc, summary.Change{}, err
	}
	f, err := For(next[i], Reorder)
	if err != nil {
		return doc, summary.Change{}, err
	}
	out, sub, err := f(out, p)
	if err != nil {
		return doc, summary.Change{}, err
	}
	change.Items = append(change.Items, sub.Items...)
	change.Notice = sub.Notice
	return out, change, nil
}
