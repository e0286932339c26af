// Package edit mutates résumé sections. Every operation takes a document by
// value, asks what it needs through a prompt.Prompter and returns the new
// document together with a summary.Change describing what happened. The
// input document is never modified.
package edit

import (
	"fmt"

	"github.com/xrsl/rsm/pkg/prompt"
	"github.com/xrsl/rsm/pkg/resume"
	"github.com/xrsl/rsm/pkg/summary"
)

// Op is a kind of section mutation.
type Op int

const (
	Add Op = iota
	Remove
	Update
	Reorder
)

func (o Op) String() string {
	switch o {
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Update:
		return "update"
	case Reorder:
		return "reorder"
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Func is one section mutation.
type Func func(doc resume.Document, p prompt.Prompter) (resume.Document, summary.Change, error)

// Handler holds the mutations a section supports. A nil field means the
// section does not support that operation.
type Handler struct {
	Add     Func
	Remove  Func
	Update  Func
	Reorder Func
}

func (h Handler) op(o Op) Func {
	switch o {
	case Add:
		return h.Add
	case Remove:
		return h.Remove
	case Update:
		return h.Update
	case Reorder:
		return h.Reorder
	}
	return nil
}

// handlers is indexed by section.
var handlers = [resume.SectionCount]Handler{
	resume.PersonalInfoSection:    {Update: UpdatePersonalInfo},
	resume.EducationSection:       education.handler(),
	resume.ExperienceSection:      experience.handler(),
	resume.ProjectsSection:        projects.handler(),
	resume.TechnicalSkillsSection: {Add: AddSkills, Remove: RemoveSkills, Update: UpdateSkills, Reorder: ReorderSkills},
	resume.CertificationsSection:  certifications.handler(),
}

// For returns the mutation for a section, or a *resume.ValidationError when
// the section does not support the operation.
func For(section resume.Section, o Op) (Func, error) {
	if !section.Valid() {
		return nil, &resume.ValidationError{Problems: []string{fmt.Sprintf("unknown section %s", section.Key())}}
	}
	f := handlers[section].op(o)
	if f == nil {
		return nil, &resume.ValidationError{Problems: []string{fmt.Sprintf("cannot %s %s", o, section)}}
	}
	return f, nil
}

// Supports lists the sections that accept an operation, in declaration order.
func Supports(o Op) []resume.Section {
	var out []resume.Section
	for _, s := range resume.Sections() {
		if handlers[s].op(o) != nil {
			out = append(out, s)
		}
	}
	return out
}
