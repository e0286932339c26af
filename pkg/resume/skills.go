package resume

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	// FlatCategory holds every skill when skills are not categorized.
	FlatCategory = "Technical Skills"
	// UncategorizedCategory receives skills left over while categorizing.
	UncategorizedCategory = "Uncategorized"
)

// SkillCategory is one named bucket of skills.
type SkillCategory struct {
	Name   string
	Skills []string
}

// TechnicalSkills maps category names to skills. Category order is
// significant and survives serialization; it is written as an ordered
// mapping in both YAML and JSON.
type TechnicalSkills struct {
	Categories []SkillCategory
}

// Skills builds a TechnicalSkills value from categories in the given order.
func Skills(categories ...SkillCategory) TechnicalSkills {
	return TechnicalSkills{Categories: categories}
}

func (t TechnicalSkills) Len() int { return len(t.Categories) }

// Names returns category names in order.
func (t TechnicalSkills) Names() []string {
	out := make([]string, len(t.Categories))
	for i, c := range t.Categories {
		out[i] = c.Name
	}
	return out
}

// Get returns the skills of a category.
func (t TechnicalSkills) Get(name string) ([]string, bool) {
	for _, c := range t.Categories {
		if c.Name == name {
			return c.Skills, true
		}
	}
	return nil, false
}

// Flattened reports whether the skills use the single canonical bucket.
// No categories at all counts as flattened.
func (t TechnicalSkills) Flattened() bool {
	switch len(t.Categories) {
	case 0:
		return true
	case 1:
		return t.Categories[0].Name == FlatCategory
	default:
		return false
	}
}

// Empty reports whether no category holds a skill.
func (t TechnicalSkills) Empty() bool {
	for _, c := range t.Categories {
		if len(c.Skills) > 0 {
			return false
		}
	}
	return true
}

func (t TechnicalSkills) clone() TechnicalSkills {
	out := TechnicalSkills{Categories: make([]SkillCategory, len(t.Categories))}
	for i, c := range t.Categories {
		out.Categories[i] = SkillCategory{Name: c.Name, Skills: slices.Clone(c.Skills)}
	}
	return out
}

// Merge extends existing categories with other's skills, appends new
// categories, and removes duplicates inside each category keeping the first
// occurrence.
func (t TechnicalSkills) Merge(other TechnicalSkills) TechnicalSkills {
	out := t.clone()
	for _, oc := range other.Categories {
		idx := slices.IndexFunc(out.Categories, func(c SkillCategory) bool { return c.Name == oc.Name })
		if idx < 0 {
			out.Categories = append(out.Categories, SkillCategory{Name: oc.Name, Skills: slices.Clone(oc.Skills)})
			continue
		}
		out.Categories[idx].Skills = append(out.Categories[idx].Skills, oc.Skills...)
	}
	for i := range out.Categories {
		out.Categories[i].Skills = Dedupe(out.Categories[i].Skills)
	}
	return out
}

// Flatten folds every category into FlatCategory, deduplicated, in order.
func (t TechnicalSkills) Flatten() TechnicalSkills {
	if t.Flattened() {
		return t.clone()
	}
	var all []string
	for _, c := range t.Categories {
		all = append(all, c.Skills...)
	}
	return Skills(SkillCategory{Name: FlatCategory, Skills: Dedupe(all)})
}

// All returns every skill across categories, deduplicated, in order.
func (t TechnicalSkills) All() []string {
	var all []string
	for _, c := range t.Categories {
		all = append(all, c.Skills...)
	}
	return Dedupe(all)
}

// Without removes skills from a category and drops the category once it
// is empty.
func (t TechnicalSkills) Without(category string, skills []string) TechnicalSkills {
	out := TechnicalSkills{}
	for _, c := range t.Categories {
		if c.Name != category {
			out.Categories = append(out.Categories, SkillCategory{Name: c.Name, Skills: slices.Clone(c.Skills)})
			continue
		}
		kept := slices.DeleteFunc(slices.Clone(c.Skills), func(s string) bool { return slices.Contains(skills, s) })
		if len(kept) > 0 {
			out.Categories = append(out.Categories, SkillCategory{Name: c.Name, Skills: kept})
		}
	}
	return out
}

// Rename changes a category's name in place.
func (t TechnicalSkills) Rename(from, to string) TechnicalSkills {
	out := t.clone()
	for i := range out.Categories {
		if out.Categories[i].Name == from {
			out.Categories[i].Name = to
		}
	}
	return out
}

// Permute returns the categories in the order given by indexes into the
// current category list.
func (t TechnicalSkills) Permute(order []int) TechnicalSkills {
	src := t.clone()
	return TechnicalSkills{Categories: Permute(src.Categories, order)}
}

func (t TechnicalSkills) Equal(o TechnicalSkills) bool {
	return slices.EqualFunc(t.Categories, o.Categories, func(a, b SkillCategory) bool {
		return a.Name == b.Name && slices.Equal(a.Skills, b.Skills)
	})
}

// Dedupe removes repeated strings, keeping the first occurrence.
func Dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func (t TechnicalSkills) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, c := range t.Categories {
		var value yaml.Node
		skills := c.Skills
		if skills == nil {
			skills = []string{}
		}
		if err := value.Encode(skills); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Name},
			&value,
		)
	}
	return node, nil
}

func (t *TechnicalSkills) UnmarshalYAML(value *yaml.Node) error {
	t.Categories = nil
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("technical skills: line %d: expected a mapping of category to skills", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		var name string
		if err := value.Content[i].Decode(&name); err != nil {
			return err
		}
		var skills []string
		if err := value.Content[i+1].Decode(&skills); err != nil {
			return fmt.Errorf("technical skills %q: %w", name, err)
		}
		t.Categories = append(t.Categories, SkillCategory{Name: name, Skills: skills})
	}
	return nil
}

func (t TechnicalSkills) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range t.Categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		skills := c.Skills
		if skills == nil {
			skills = []string{}
		}
		val, err := json.Marshal(skills)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
