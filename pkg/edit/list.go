package edit

import (
	"fmt"
	"slices"

	"github.com/xrsl/rsm/pkg/prompt"
	"github.com/xrsl/rsm/pkg/resume"
	"github.com/xrsl/rsm/pkg/summary"
)

type entry interface {
	EntryID() string
	Label() string
}

// list describes a section backed by a slice of entries.
type list[T entry] struct {
	singular string
	added    string
	removed  string
	updated  string
	ordered  string

	get    func(resume.Document) []T
	set    func(*resume.Document, []T)
	id     func(*T) *string
	fields []field[T]

	// bullets is set for entry types carrying bullet points.
	bullets func(*T) *[]string
	// after runs on the collection once an add or update is done.
	after func([]T) []T
}

func (l list[T]) handler() Handler {
	return Handler{Add: l.add, Remove: l.remove, Update: l.update, Reorder: l.reorder}
}

func labels[T entry](in []T) []string {
	out := make([]string, len(in))
	for i, e := range in {
		out[i] = e.Label()
	}
	return out
}

func (l list[T]) add(doc resume.Document, p prompt.Prompter) (resume.Document, summary.Change, error) {
	out := doc.Clone()
	cur := l.get(out)

	pos := len(cur)
	if len(cur) > 0 {
		choices := make([]string, 0, len(cur)+1)
		for i, label := range labels(cur) {
			choices = append(choices, fmt.Sprintf("%d: %s", i, label))
		}
		choices = append(choices, fmt.Sprintf("%d: add to the end", len(cur)))
		i, err := p.Select(fmt.Sprintf("Select the position to add new %s entry to:", l.singular), choices)
		if err != nil {
			return doc, summary.Change{}, err
		}
		pos = i
	}

	var added []T
	for {
		e, err := collectFields(p, l.fields)
		if err != nil {
			return doc, summary.Change{}, err
		}
		*l.id(&e) = resume.NewID()
		if l.bullets != nil {
			b, err := collectBullets(p, "Bullet point (empty to finish)")
			if err != nil {
				return doc, summary.Change{}, err
			}
			*l.bullets(&e) = b
		}
		added = append(added, e)

		more, err := p.Confirm(fmt.Sprintf("Add another %s entry?", l.singular), false)
		if err != nil {
			return doc, summary.Change{}, err
		}
		if !more {
			break
		}
	}

	next := slices.Insert(cur, pos, added...)
	if l.after != nil {
		next = l.after(next)
	}
	l.set(&out, next)
	return out, summary.Change{Title: l.added, Items: labels(added)}, nil
}

func (l list[T]) remove(doc resume.Document, p prompt.Prompter) (resume.Document, summary.Change, error) {
	cur := l.get(doc)
	if len(cur) == 0 {
		return doc, summary.Noop(fmt.Sprintf("No %s entries to remove.", l.singular)), nil
	}
	picked, err := p.MultiSelect(fmt.Sprintf("Select %s entry to remove:", l.singular), labels(cur), 1)
	if err != nil {
		return doc, summary.Change{}, err
	}
	change := summary.Change{Title: l.removed}
	if len(picked) == 0 {
		return doc, change, nil
	}

	out := doc.Clone()
	ids := make(map[string]bool, len(picked))
	for _, i := range picked {
		ids[cur[i].EntryID()] = true
		change.Items = append(change.Items, cur[i].Label())
	}
	l.set(&out, slices.DeleteFunc(l.get(out), func(e T) bool { return ids[e.EntryID()] }))
	return out, change, nil
}

func (l list[T]) update(doc resume.Document, p prompt.Prompter) (resume.Document, summary.Change, error) {
	if len(l.get(doc)) == 0 {
		return doc, summary.Noop(fmt.Sprintf("No %s entries to update.", l.singular)), nil
	}
	out := doc.Clone()
	next := l.get(out)
	picked, err := p.MultiSelect(fmt.Sprintf("Select %s entry to update:", l.singular), labels(next), 1)
	if err != nil {
		return doc, summary.Change{}, err
	}
	change := summary.Change{Title: l.updated}
	if len(picked) == 0 {
		return doc, change, nil
	}

	for _, i := range picked {
		label := next[i].Label()
		e, items, err := updateFields(p, next[i], l.fields)
		if err != nil {
			return doc, summary.Change{}, err
		}
		change.Items = append(change.Items, items...)
		if l.bullets != nil {
			old := *l.bullets(&e)
			b, err := updateBullets(p, old)
			if err != nil {
				return doc, summary.Change{}, err
			}
			if !slices.Equal(old, b) {
				*l.bullets(&e) = b
				change.Items = append(change.Items, fmt.Sprintf("Bullet points of %s updated", label))
			}
		}
		next[i] = e
	}
	if l.after != nil {
		next = l.after(next)
	}
	l.set(&out, next)
	return out, change, nil
}

func (l list[T]) reorder(doc resume.Document, p prompt.Prompter) (resume.Document, summary.Change, error) {
	cur := l.get(doc)
	if len(cur) == 0 {
		return doc, summary.Noop(fmt.Sprintf("No %s entries to reorder.", l.singular)), nil
	}

	out := doc.Clone()
	order, err := orderOf(p, fmt.Sprintf("Reorder %s entries:", l.singular), labels(cur))
	if err != nil {
		return doc, summary.Change{}, err
	}
	next := resume.Permute(l.get(out), order)
	change := summary.Change{Title: l.ordered}
	if !isIdentity(order) {
		change.Items = labels(next)
	}

	if l.bullets != nil {
		for i := range next {
			label := next[i].Label()
			b, changed, err := reorderBullets(p, label, *l.bullets(&next[i]))
			if err != nil {
				return doc, summary.Change{}, err
			}
			if changed {
				*l.bullets(&next[i]) = b
				change.Items = append(change.Items, fmt.Sprintf("Bullet points of %s reordered", label))
			}
		}
	}
	l.set(&out, next)
	return out, change, nil
}
