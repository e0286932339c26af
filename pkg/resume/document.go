package resume

import (
	"slices"
)

// Document is the whole résumé: the fixed personal block, the chosen render
// order of the editable sections, and one collection per section.
type Document struct {
	PersonalInfo    PersonalInfo    `yaml:"personal_info" json:"personal_info"`
	OrderedSections []Section       `yaml:"ordered_sections" json:"ordered_sections"`
	Education       []Education     `yaml:"education" json:"education"`
	Experience      []Experience    `yaml:"experience" json:"experience"`
	Projects        []Project       `yaml:"projects" json:"projects"`
	TechnicalSkills TechnicalSkills `yaml:"technical_skills" json:"technical_skills"`
	Certifications  []Certification `yaml:"certifications" json:"certifications"`
}

// Order returns the render order of the editable sections.
func (d Document) Order() []Section {
	return NormalizeOrder(d.OrderedSections)
}

// Clone returns a deep copy that shares no slices with d.
func (d Document) Clone() Document {
	out := d
	out.OrderedSections = slices.Clone(d.OrderedSections)
	out.Education = slices.Clone(d.Education)
	out.Experience = make([]Experience, len(d.Experience))
	for i, e := range d.Experience {
		e.Bullets = slices.Clone(e.Bullets)
		out.Experience[i] = e
	}
	out.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		p.Bullets = slices.Clone(p.Bullets)
		out.Projects[i] = p
	}
	out.TechnicalSkills = d.TechnicalSkills.clone()
	out.Certifications = slices.Clone(d.Certifications)
	return out
}

// Equal compares content. Nil and empty collections are equal.
func (d Document) Equal(o Document) bool {
	return d.PersonalInfo == o.PersonalInfo &&
		slices.Equal(d.OrderedSections, o.OrderedSections) &&
		slices.EqualFunc(d.Education, o.Education, Education.Equal) &&
		slices.EqualFunc(d.Experience, o.Experience, Experience.Equal) &&
		slices.EqualFunc(d.Projects, o.Projects, Project.Equal) &&
		d.TechnicalSkills.Equal(o.TechnicalSkills) &&
		slices.EqualFunc(d.Certifications, o.Certifications, Certification.Equal)
}

type labeled interface {
	Label() string
}

func dropBlank[T labeled](in []T) []T {
	if in == nil {
		return nil
	}
	return slices.DeleteFunc(slices.Clone(in), func(e T) bool { return e.Label() == "" })
}

// DropBlank removes entries whose label is blank. These appear when a
// document file carries empty placeholder entries.
func (d Document) DropBlank() Document {
	out := d.Clone()
	out.Education = dropBlank(out.Education)
	out.Experience = dropBlank(out.Experience)
	out.Projects = dropBlank(out.Projects)
	out.Certifications = dropBlank(out.Certifications)
	return out
}

func ensureIDs[T any](in []T, id func(*T) *string, seen map[string]bool) {
	for i := range in {
		p := id(&in[i])
		if *p == "" || seen[*p] {
			*p = NewID()
		}
		seen[*p] = true
	}
}

// EnsureIDs assigns a fresh ID to every entry that lacks one or repeats an
// ID already used elsewhere in the document.
func (d Document) EnsureIDs() Document {
	out := d.Clone()
	seen := make(map[string]bool)
	ensureIDs(out.Education, func(e *Education) *string { return &e.ID }, seen)
	ensureIDs(out.Experience, func(e *Experience) *string { return &e.ID }, seen)
	ensureIDs(out.Projects, func(p *Project) *string { return &p.ID }, seen)
	ensureIDs(out.Certifications, func(c *Certification) *string { return &c.ID }, seen)
	return out
}

// Permute returns the elements of in rearranged so that out[i] = in[order[i]].
// order must be a permutation of the indexes of in.
func Permute[T any](in []T, order []int) []T {
	out := make([]T, 0, len(in))
	for _, i := range order {
		out = append(out, in[i])
	}
	return out
}

// IsPermutation reports whether order holds each index of an n-element
// collection exactly once.
func IsPermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, i := range order {
		if i < 0 || i >= n || seen[i] {
			return false
		}
		seen[i] = true
	}
	return true
}
