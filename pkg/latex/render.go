// Package latex turns a résumé document into LaTeX markup and drives the
// external compiler that typesets it.
package latex

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/xrsl/rsm/pkg/resume"
)

//go:embed templates/resume.tex.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.New("resume").
	Delims("<<", ">>").
	Funcs(template.FuncMap{
		"handle": handle,
		"join":   func(s []string) string { return strings.Join(s, ", ") },
	}).
	ParseFS(templateFS, "templates/resume.tex.tmpl"))

// certGroup is a run of consecutive certifications from one organization.
type certGroup struct {
	Organization string
	Entries      []resume.Certification
}

func (g certGroup) First() string { return g.Entries[0].IssueDate }
func (g certGroup) Last() string  { return g.Entries[len(g.Entries)-1].IssueDate }

func groupCertifications(certs []resume.Certification) []certGroup {
	var groups []certGroup
	for _, c := range certs {
		if n := len(groups); n > 0 && groups[n-1].Organization == c.Organization {
			groups[n-1].Entries = append(groups[n-1].Entries, c)
			continue
		}
		groups = append(groups, certGroup{Organization: c.Organization, Entries: []resume.Certification{c}})
	}
	return groups
}

// sectionData returns what a section's template renders, or false when the
// section has nothing to show.
func sectionData(doc resume.Document, s resume.Section) (any, bool) {
	switch s {
	case resume.EducationSection:
		return doc.Education, len(doc.Education) > 0
	case resume.ExperienceSection:
		return doc.Experience, len(doc.Experience) > 0
	case resume.ProjectsSection:
		return doc.Projects, len(doc.Projects) > 0
	case resume.TechnicalSkillsSection:
		var cats []resume.SkillCategory
		for _, c := range doc.TechnicalSkills.Categories {
			if len(c.Skills) > 0 {
				cats = append(cats, c)
			}
		}
		return cats, len(cats) > 0
	case resume.CertificationsSection:
		return groupCertifications(doc.Certifications), len(doc.Certifications) > 0
	}
	return nil, false
}

// Render produces the complete LaTeX source for doc. Text fields are
// written verbatim: they are escaped when collected, not here. The same
// document always renders to the same bytes. Output that fails Check is
// returned with a *PreconditionError.
func Render(doc resume.Document) (string, error) {
	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, "preamble", nil); err != nil {
		return "", fmt.Errorf("render preamble: %w", err)
	}
	if err := tmpl.ExecuteTemplate(&b, "personal_info", doc.PersonalInfo); err != nil {
		return "", fmt.Errorf("render personal info: %w", err)
	}
	for _, s := range doc.Order() {
		data, ok := sectionData(doc, s)
		if !ok {
			continue
		}
		b.WriteString("\n")
		if err := tmpl.ExecuteTemplate(&b, s.Key(), data); err != nil {
			return "", fmt.Errorf("render %s: %w", s, err)
		}
	}
	if err := tmpl.ExecuteTemplate(&b, "footer", nil); err != nil {
		return "", fmt.Errorf("render footer: %w", err)
	}
	markup := b.String()
	if err := Validate(markup); err != nil {
		return "", err
	}
	return markup, nil
}

var urlUnescaper = strings.NewReplacer(`\%`, `%`, `\#`, `#`)

// handle shortens a stored profile URL to the link text shown on the page.
// The URL is stored escaped for \href only, so the text is re-escaped for
// text mode.
func handle(stored string) string {
	return Escape(shorten(urlUnescaper.Replace(stored)))
}

func shorten(url string) string {
	last := url
	if i := strings.LastIndex(strings.TrimRight(url, "/"), "/"); i >= 0 {
		last = strings.TrimRight(url, "/")[i+1:]
	}
	switch {
	case strings.Contains(url, "linkedin.com"):
		return "linkedin.com/in/" + last
	case strings.Contains(url, "github.com"):
		return "github.com/" + last
	default:
		return url
	}
}
