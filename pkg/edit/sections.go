package edit

import "github.com/xrsl/rsm/pkg/resume"

var education = list[resume.Education]{
	singular: "education",
	added:    "Added new education",
	removed:  "Removed education",
	updated:  "Updated education",
	ordered:  "Reordered education",
	get:      func(d resume.Document) []resume.Education { return d.Education },
	set:      func(d *resume.Document, v []resume.Education) { d.Education = v },
	id:       func(e *resume.Education) *string { return &e.ID },
	fields: []field[resume.Education]{
		{name: "Institution", ptr: func(e *resume.Education) *string { return &e.Institution }},
		{name: "Degree", ptr: func(e *resume.Education) *string { return &e.Degree }},
		{name: "Location", ptr: func(e *resume.Education) *string { return &e.Location }},
		{name: "Graduation Date", ptr: func(e *resume.Education) *string { return &e.GraduationDate }},
		{name: "GPA", optional: true, ptr: func(e *resume.Education) *string { return &e.GPA }},
	},
}

var experience = list[resume.Experience]{
	singular: "experience",
	added:    "Added new experiences",
	removed:  "Removed experience",
	updated:  "Updated experience",
	ordered:  "Reordered experience",
	get:      func(d resume.Document) []resume.Experience { return d.Experience },
	set:      func(d *resume.Document, v []resume.Experience) { d.Experience = v },
	id:       func(e *resume.Experience) *string { return &e.ID },
	fields: []field[resume.Experience]{
		{name: "Company", ptr: func(e *resume.Experience) *string { return &e.Company }},
		{name: "Position", ptr: func(e *resume.Experience) *string { return &e.Position }},
		{name: "Location", ptr: func(e *resume.Experience) *string { return &e.Location }},
		{name: "Date", ptr: func(e *resume.Experience) *string { return &e.Date }},
	},
	bullets: func(e *resume.Experience) *[]string { return &e.Bullets },
}

var projects = list[resume.Project]{
	singular: "project",
	added:    "Added new projects",
	removed:  "Removed projects",
	updated:  "Updated projects",
	ordered:  "Reordered projects",
	get:      func(d resume.Document) []resume.Project { return d.Projects },
	set:      func(d *resume.Document, v []resume.Project) { d.Projects = v },
	id:       func(p *resume.Project) *string { return &p.ID },
	fields: []field[resume.Project]{
		{name: "Project Name", ptr: func(p *resume.Project) *string { return &p.Name }},
		{name: "Technologies", ptr: func(p *resume.Project) *string { return &p.Technologies }},
		{name: "Date", ptr: func(p *resume.Project) *string { return &p.Date }},
	},
	bullets: func(p *resume.Project) *[]string { return &p.Bullets },
}

var certifications = list[resume.Certification]{
	singular: "certification",
	added:    "Added new certifications",
	removed:  "Removed certifications",
	updated:  "Updated certifications",
	ordered:  "Reordered certifications",
	get:      func(d resume.Document) []resume.Certification { return d.Certifications },
	set:      func(d *resume.Document, v []resume.Certification) { d.Certifications = v },
	id:       func(c *resume.Certification) *string { return &c.ID },
	fields: []field[resume.Certification]{
		{name: "Certification Name", ptr: func(c *resume.Certification) *string { return &c.Name }},
		{name: "Issuing Organization", ptr: func(c *resume.Certification) *string { return &c.Organization }},
		{name: "Issue Date", ptr: func(c *resume.Certification) *string { return &c.IssueDate }},
	},
	after: resume.Reorganize,
}
