package resume

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh identifier for an entry. Entries are selected by
// ID, never by their label, so two entries may render identically.
func NewID() string {
	return uuid.NewString()
}

func blank(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// PersonalInfo is the fixed heading block.
type PersonalInfo struct {
	Name     string `yaml:"name" json:"name"`
	Phone    string `yaml:"phone" json:"phone"`
	Email    string `yaml:"email" json:"email"`
	LinkedIn string `yaml:"linkedin" json:"linkedin"`
	GitHub   string `yaml:"github" json:"github"`
}

// Missing lists the required fields that are empty.
func (p PersonalInfo) Missing() []string {
	var out []string
	if strings.TrimSpace(p.Name) == "" {
		out = append(out, "name")
	}
	if strings.TrimSpace(p.Phone) == "" {
		out = append(out, "phone")
	}
	if strings.TrimSpace(p.Email) == "" {
		out = append(out, "email")
	}
	return out
}

type Education struct {
	ID             string `yaml:"id" json:"id"`
	Institution    string `yaml:"institution" json:"institution"`
	Degree         string `yaml:"degree" json:"degree"`
	Location       string `yaml:"location" json:"location"`
	GraduationDate string `yaml:"graduation_date" json:"graduation_date"`
	GPA            string `yaml:"gpa" json:"gpa"`
}

func (e Education) EntryID() string { return e.ID }

func (e Education) Label() string {
	if blank(e.Institution, e.Degree, e.Location, e.GraduationDate, e.GPA) {
		return ""
	}
	return fmt.Sprintf("%s at %s", e.Degree, e.Institution)
}

func (e Education) Equal(o Education) bool { return e == o }

type Experience struct {
	ID       string   `yaml:"id" json:"id"`
	Company  string   `yaml:"company" json:"company"`
	Position string   `yaml:"position" json:"position"`
	Location string   `yaml:"location" json:"location"`
	Date     string   `yaml:"date" json:"date"`
	Bullets  []string `yaml:"bullets" json:"bullets"`
}

func (e Experience) EntryID() string { return e.ID }

func (e Experience) Label() string {
	if blank(e.Company, e.Position, e.Location, e.Date) && blank(e.Bullets...) {
		return ""
	}
	return fmt.Sprintf("%s at %s (%s)", e.Position, e.Company, e.Date)
}

func (e Experience) Equal(o Experience) bool {
	return e.ID == o.ID && e.Company == o.Company && e.Position == o.Position &&
		e.Location == o.Location && e.Date == o.Date && slices.Equal(e.Bullets, o.Bullets)
}

type Project struct {
	ID           string   `yaml:"id" json:"id"`
	Name         string   `yaml:"name" json:"name"`
	Technologies string   `yaml:"technologies" json:"technologies"`
	Date         string   `yaml:"date" json:"date"`
	Bullets      []string `yaml:"bullets" json:"bullets"`
}

func (p Project) EntryID() string { return p.ID }

func (p Project) Label() string {
	if blank(p.Name, p.Technologies, p.Date) && blank(p.Bullets...) {
		return ""
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Date)
}

func (p Project) Equal(o Project) bool {
	return p.ID == o.ID && p.Name == o.Name && p.Technologies == o.Technologies &&
		p.Date == o.Date && slices.Equal(p.Bullets, o.Bullets)
}

type Certification struct {
	ID           string `yaml:"id" json:"id"`
	Name         string `yaml:"name" json:"name"`
	Organization string `yaml:"issuing_organization" json:"issuing_organization"`
	IssueDate    string `yaml:"issue_date" json:"issue_date"`
}

func (c Certification) EntryID() string { return c.ID }

func (c Certification) Label() string {
	if blank(c.Name, c.Organization, c.IssueDate) {
		return ""
	}
	return fmt.Sprintf("%s by %s (%s)", c.Name, c.Organization, c.IssueDate)
}

func (c Certification) Equal(o Certification) bool { return c == o }

// Reorganize groups certifications by issuing organization. Groups appear in
// the order their organization is first seen and entries keep their
// relative order inside a group.
func Reorganize(certs []Certification) []Certification {
	if len(certs) == 0 {
		return certs
	}
	var orgs []string
	groups := make(map[string][]Certification)
	for _, c := range certs {
		if _, ok := groups[c.Organization]; !ok {
			orgs = append(orgs, c.Organization)
		}
		groups[c.Organization] = append(groups[c.Organization], c)
	}
	out := make([]Certification, 0, len(certs))
	for _, org := range orgs {
		out = append(out, groups[org]...)
	}
	return out
}
