package edit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xrsl/rsm/pkg/latex"
	"github.com/xrsl/rsm/pkg/prompt"
	"github.com/xrsl/rsm/pkg/resume"
	"github.com/xrsl/rsm/pkg/summary"
)

const (
	categorizeQuestion = "Do you want to categorize your technical skills?"
	flattenQuestion    = "Do you want to flatten your technical skills?"
	categoryQuestion   = "Category Name (e.g., Languages, Frameworks)"
)

// AddSkills merges newly collected skills into the document. Skills are
// collected per category unless the current skills are flattened; with no
// skills yet the user picks the representation.
func AddSkills(doc resume.Document, p prompt.Prompter) (resume.Document, summary.Change, error) {
	out := doc.Clone()
	base := out.TechnicalSkills
	categorize := !base.Flattened()
	if base.Empty() {
		base = resume.TechnicalSkills{}
		var err error
		if categorize, err = p.Confirm(categorizeQuestion, true); err != nil {
			return doc, summary.Change{}, err
		}
	}

	var incoming resume.TechnicalSkills
	var err error
	if categorize {
		incoming, err = collectCategories(p)
	} else {
		incoming, err = collectFlat(p)
	}
	if err != nil {
		return doc, summary.Change{}, err
	}

	merged := base.Merge(incoming)
	change := summary.Change{Title: "Added new technical skills"}
	for _, c := range merged.Categories {
		before, _ := base.Get(c.Name)
		for _, s := range c.Skills {
			if !slices.Contains(before, s) {
				change.Items = append(change.Items, fmt.Sprintf("%s: %s", c.Name, s))
			}
		}
	}
	if change.Empty() {
		return doc, change, nil
	}
	out.TechnicalSkills = merged
	return out, change, nil
}

func collectCategories(p prompt.Prompter) (resume.TechnicalSkills, error) {
	var cats []resume.SkillCategory
	for {
		name, err := p.Input(categoryQuestion, prompt.InputOpts{Required: true})
		if err != nil {
			return resume.TechnicalSkills{}, err
		}
		name = latex.Escape(strings.TrimSpace(name))
		list, err := p.Input(fmt.Sprintf("Skills in %s (comma-separated)", name), prompt.InputOpts{Required: true})
		if err != nil {
			return resume.TechnicalSkills{}, err
		}
		cats = append(cats, resume.SkillCategory{Name: name, Skills: splitList(list)})

		more, err := p.Confirm("Add another category?", false)
		if err != nil {
			return resume.TechnicalSkills{}, err
		}
		if !more {
			return resume.Skills(cats...), nil
		}
	}
}

func collectFlat(p prompt.Prompter) (resume.TechnicalSkills, error) {
	list, err := p.Input("Technical Skills (comma-separated)", prompt.InputOpts{Required: true})
	if err != nil {
		return resume.TechnicalSkills{}, err
	}
	return resume.Skills(resume.SkillCategory{Name: resume.FlatCategory, Skills: splitList(list)}), nil
}

// nonEmpty returns the categories holding at least one skill.
func nonEmpty(t resume.TechnicalSkills) []resume.SkillCategory {
	var out []resume.SkillCategory
	for _, c := range t.Categories {
		if len(c.Skills) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// RemoveSkills deletes skills category by category. Categories left empty
// are dropped.
func RemoveSkills(doc resume.Document, p prompt.Prompter) (resume.Document, summary.Change, error) {
	if doc.TechnicalSkills.Empty() {
		return doc, summary.Noop("No technical skills to remove."), nil
	}
	cats := nonEmpty(doc.TechnicalSkills)
	picked := []int{0}
	if len(cats) > 1 {
		names := make([]string, len(cats))
		for i, c := range cats {
			names[i] = c.Name
		}
		var err error
		if picked, err = p.MultiSelect("Select categories to remove skills from:", names, 1); err != nil {
			return doc, summary.Change{}, err
		}
	}

	change := summary.Change{Title: "Removed technical skills"}
	ts := doc.TechnicalSkills
	for _, i := range picked {
		c := cats[i]
		sel, err := p.MultiSelect(fmt.Sprintf("Select skills to remove from %s:", c.Name), c.Skills, 1)
		if err != nil {
			return doc, summary.Change{}, err
		}
		var gone []string
		for _, j := range sel {
			gone = append(gone, c.Skills[j])
			change.Items = append(change.Items, fmt.Sprintf("%s: %s", c.Name, c.Skills[j]))
		}
		if len(gone) > 0 {
			ts = ts.Without(c.Name, gone)
		}
	}
	if change.Empty() {
		return doc, change, nil
	}
	out := doc.Clone()
	out.TechnicalSkills = ts
	return out, change, nil
}

// UpdateSkills renames categories and toggles between the flattened and
// categorized representation.
func UpdateSkills(doc resume.Document, p prompt.Prompter) (resume.Document, summary.Change, error) {
	if doc.TechnicalSkills.Empty() {
		return doc, summary.Noop("No technical skills to update."), nil
	}
	out := doc.Clone()
	ts := out.TechnicalSkills
	change := summary.Change{Title: "Updated technical skills"}

	if ts.Flattened() {
		ok, err := p.Confirm(categorizeQuestion, false)
		if err != nil {
			return doc, summary.Change{}, err
		}
		if ok {
			var items []string
			if ts, items, err = categorize(p, ts.All()); err != nil {
				return doc, summary.Change{}, err
			}
			change.Items = append(change.Items, items...)
		}
	} else {
		names := ts.Names()
		picked, err := p.MultiSelect("Select categories to rename:", names, 0)
		if err != nil {
			return doc, summary.Change{}, err
		}
		for _, i := range picked {
			from := names[i]
			to, err := p.Input(fmt.Sprintf("New name for %s", from), prompt.InputOpts{
				Default:  from,
				Validate: categoryName(ts, from),
			})
			if err != nil {
				return doc, summary.Change{}, err
			}
			if to = strings.TrimSpace(to); to == from {
				continue
			}
			to = latex.Escape(to)
			ts = ts.Rename(from, to)
			change.Items = append(change.Items, fmt.Sprintf("Category name updated from '%s' to '%s'", from, to))
		}

		ok, err := p.Confirm(flattenQuestion, false)
		if err != nil {
			return doc, summary.Change{}, err
		}
		if ok {
			ts = ts.Flatten()
			change.Items = append(change.Items, "Flattened technical skills into a single category")
		}
	}

	if change.Empty() {
		return doc, change, nil
	}
	out.TechnicalSkills = ts
	return out, change, nil
}

// categoryName accepts a new name for category from when it is non-empty
// and not taken by another category.
func categoryName(ts resume.TechnicalSkills, from string) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		switch {
		case s == from:
			return nil
		case s == "":
			return prompt.ErrRequired
		}
		if _, taken := ts.Get(latex.Escape(s)); taken {
			return fmt.Errorf("category %q already exists", s)
		}
		return nil
	}
}

// categorize distributes skills into new categories. Skills the user does
// not place end up in the uncategorized bucket.
func categorize(p prompt.Prompter, skills []string) (resume.TechnicalSkills, []string, error) {
	var cats []resume.SkillCategory
	var items []string
	remaining := slices.Clone(skills)
	for len(remaining) > 0 {
		name, err := p.Input(categoryQuestion, prompt.InputOpts{Required: true})
		if err != nil {
			return resume.TechnicalSkills{}, nil, err
		}
		name = latex.Escape(strings.TrimSpace(name))
		picked, err := p.MultiSelect(fmt.Sprintf("Select skills for %s", name), remaining, 1)
		if err != nil {
			return resume.TechnicalSkills{}, nil, err
		}
		if len(picked) > 0 {
			chosen := resume.Permute(remaining, picked)
			cats = append(cats, resume.SkillCategory{Name: name, Skills: chosen})
			items = append(items, fmt.Sprintf("%s: %s", name, strings.Join(chosen, ", ")))
			remaining = slices.DeleteFunc(remaining, func(s string) bool { return slices.Contains(chosen, s) })
		}
		if len(remaining) == 0 {
			break
		}
		more, err := p.Confirm("Add another category?", true)
		if err != nil {
			return resume.TechnicalSkills{}, nil, err
		}
		if !more {
			break
		}
	}
	if len(remaining) > 0 {
		cats = append(cats, resume.SkillCategory{Name: resume.UncategorizedCategory, Skills: remaining})
		items = append(items, fmt.Sprintf("%s: %s", resume.UncategorizedCategory, strings.Join(remaining, ", ")))
	}
	return resume.TechnicalSkills{}.Merge(resume.Skills(cats...)), items, nil
}

// ReorderSkills permutes categories. Flattened skills have nothing to
// reorder and report so.
func ReorderSkills(doc resume.Document, p prompt.Prompter) (resume.Document, summary.Change, error) {
	ts := doc.TechnicalSkills
	if ts.Empty() {
		return doc, summary.Noop("No technical skills to reorder."), nil
	}
	if ts.Flattened() {
		return doc, summary.Noop("Technical skills are flattened. Reordering not applicable."), nil
	}
	order, err := orderOf(p, "Reorder technical skill categories:", ts.Names())
	if err != nil {
		return doc, summary.Change{}, err
	}
	change := summary.Change{Title: "Reordered technical skills"}
	if isIdentity(order) {
		return doc, change, nil
	}
	out := doc.Clone()
	out.TechnicalSkills = ts.Permute(order)
	change.Items = out.TechnicalSkills.Names()
	return out, change, nil
}
