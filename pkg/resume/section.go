package resume

import (
	"fmt"
	"strings"
)

// Section identifies one named block of résumé content.
type Section int

const (
	PersonalInfoSection Section = iota
	EducationSection
	ExperienceSection
	ProjectsSection
	TechnicalSkillsSection
	CertificationsSection

	sectionCount
)

// SectionCount is the number of declared sections, fixed one included.
const SectionCount = int(sectionCount)

var sectionKeys = [sectionCount]string{
	PersonalInfoSection:    "personal_info",
	EducationSection:       "education",
	ExperienceSection:      "experience",
	ProjectsSection:        "projects",
	TechnicalSkillsSection: "technical_skills",
	CertificationsSection:  "certifications",
}

var sectionNames = [sectionCount]string{
	PersonalInfoSection:    "Personal Info",
	EducationSection:       "Education",
	ExperienceSection:      "Experience",
	ProjectsSection:        "Projects",
	TechnicalSkillsSection: "Technical Skills",
	CertificationsSection:  "Certifications",
}

// Valid reports whether s is one of the declared sections.
func (s Section) Valid() bool {
	return s >= 0 && s < sectionCount
}

// Fixed reports whether the section always renders and cannot be reordered.
func (s Section) Fixed() bool {
	return s == PersonalInfoSection
}

// Key is the stable identifier used in the document file and on the command line.
func (s Section) Key() string {
	if !s.Valid() {
		return fmt.Sprintf("section(%d)", int(s))
	}
	return sectionKeys[s]
}

// String returns the display name.
func (s Section) String() string {
	if !s.Valid() {
		return s.Key()
	}
	return sectionNames[s]
}

func (s Section) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid section %d", int(s))
	}
	return []byte(sectionKeys[s]), nil
}

func (s *Section) UnmarshalText(text []byte) error {
	parsed, err := ParseSection(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSection accepts a section key ("technical_skills") or its display
// name ("Technical Skills"), case-insensitively.
func ParseSection(s string) (Section, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for i := Section(0); i < sectionCount; i++ {
		if want == sectionKeys[i] || want == strings.ToLower(sectionNames[i]) {
			return i, nil
		}
	}
	return 0, &ValidationError{Problems: []string{fmt.Sprintf("unknown section %q", s)}}
}

// Sections returns every declared section in declaration order.
func Sections() []Section {
	out := make([]Section, 0, sectionCount)
	for i := Section(0); i < sectionCount; i++ {
		out = append(out, i)
	}
	return out
}

// Editable returns the non-fixed sections in declaration order. This is
// also the canonical render order used when none has been chosen.
func Editable() []Section {
	out := make([]Section, 0, sectionCount-1)
	for _, s := range Sections() {
		if !s.Fixed() {
			out = append(out, s)
		}
	}
	return out
}

// NormalizeOrder drops fixed, invalid and repeated sections from order and
// appends the editable sections it never mentions in canonical order, so the
// result is always a permutation of Editable().
func NormalizeOrder(order []Section) []Section {
	seen := make(map[Section]bool, sectionCount)
	out := make([]Section, 0, sectionCount-1)
	for _, s := range order {
		if !s.Valid() || s.Fixed() || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	for _, s := range Editable() {
		if !seen[s] {
			out = append(out, s)
		}
	}
	return out
}
