package resume

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sample() Document {
	return Document{
		PersonalInfo: PersonalInfo{
			Name:     "Ada Lovelace",
			Phone:    "555-0100",
			Email:    "ada@example.com",
			LinkedIn: "https://linkedin.com/in/ada",
			GitHub:   "https://github.com/ada",
		},
		OrderedSections: []Section{ExperienceSection, EducationSection, ProjectsSection, TechnicalSkillsSection, CertificationsSection},
		Education: []Education{
			{ID: "e1", Institution: "MIT", Degree: "BS", Location: "Cambridge", GraduationDate: "2020", GPA: "3.9"},
		},
		Experience: []Experience{
			{ID: "x1", Company: "Acme", Position: "Engineer", Location: "Remote", Date: "2021", Bullets: []string{"Built things", "Fixed things"}},
		},
		Projects: []Project{
			{ID: "p1", Name: "rsm", Technologies: "Go", Date: "2024", Bullets: []string{"Wrote it"}},
		},
		TechnicalSkills: Skills(
			SkillCategory{Name: "Languages", Skills: []string{"Go", "Kotlin"}},
			SkillCategory{Name: "Tools", Skills: []string{"Git"}},
		),
		Certifications: []Certification{
			{ID: "c1", Name: "CKA", Organization: "CNCF", IssueDate: "2022"},
		},
	}
}

func encode(t *testing.T, d Document) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	require.NoError(t, enc.Encode(d))
	return buf.Bytes()
}

func TestYAMLRoundTrip(t *testing.T) {
	d := sample()
	var got Document
	require.NoError(t, yaml.Unmarshal(encode(t, d), &got))
	assert.True(t, d.Equal(got), "round trip changed the document:\n%s", encode(t, got))
}

func TestYAMLKeepsSkillCategoryOrder(t *testing.T) {
	d := sample()
	d.TechnicalSkills = Skills(
		SkillCategory{Name: "Zeta", Skills: []string{"z"}},
		SkillCategory{Name: "Alpha", Skills: []string{"a"}},
		SkillCategory{Name: "Mid", Skills: []string{"m"}},
	)
	var got Document
	require.NoError(t, yaml.Unmarshal(encode(t, d), &got))
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, got.TechnicalSkills.Names())
}

func TestJSONKeepsSkillCategoryOrder(t *testing.T) {
	skills := Skills(
		SkillCategory{Name: "B", Skills: []string{"x"}},
		SkillCategory{Name: "A"},
	)
	out, err := json.Marshal(skills)
	require.NoError(t, err)
	assert.Equal(t, `{"B":["x"],"A":[]}`, string(out))
}

func TestUnknownFieldsIgnoredAndMissingDefaulted(t *testing.T) {
	src := `
personal_info:
  name: Ada
  phone: "1"
  email: a@b.c
  twitter: ignored
education:
  - institution: MIT
    degree: BS
`
	var d Document
	require.NoError(t, yaml.Unmarshal([]byte(src), &d))
	require.Len(t, d.Education, 1)
	assert.Equal(t, "", d.Education[0].GPA)
	assert.Empty(t, d.Experience)
	assert.Equal(t, Editable(), d.Order())
}

func TestOrderFallsBackToCanonical(t *testing.T) {
	var d Document
	assert.Equal(t, []Section{EducationSection, ExperienceSection, ProjectsSection, TechnicalSkillsSection, CertificationsSection}, d.Order())
}

func TestNormalizeOrder(t *testing.T) {
	tests := []struct {
		name string
		in   []Section
		want []Section
	}{
		{"empty", nil, Editable()},
		{"drops personal info", []Section{PersonalInfoSection, ProjectsSection}, []Section{ProjectsSection, EducationSection, ExperienceSection, TechnicalSkillsSection, CertificationsSection}},
		{"drops duplicates", []Section{CertificationsSection, CertificationsSection, EducationSection}, []Section{CertificationsSection, EducationSection, ExperienceSection, ProjectsSection, TechnicalSkillsSection}},
		{"drops unknown", []Section{Section(42), ExperienceSection}, []Section{ExperienceSection, EducationSection, ProjectsSection, TechnicalSkillsSection, CertificationsSection}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeOrder(tt.in)
			assert.Equal(t, tt.want, got)
			assert.ElementsMatch(t, Editable(), got)
		})
	}
}

func TestParseSection(t *testing.T) {
	for _, in := range []string{"technical_skills", "Technical Skills", "TECHNICAL_SKILLS"} {
		s, err := ParseSection(in)
		require.NoError(t, err, in)
		assert.Equal(t, TechnicalSkillsSection, s)
	}
	_, err := ParseSection("hobbies")
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestDropBlank(t *testing.T) {
	d := sample()
	d.Education = append(d.Education, Education{ID: "blank"})
	d.Experience = append(d.Experience, Experience{ID: "blank", Bullets: []string{" "}})
	d.Certifications = append([]Certification{{}}, d.Certifications...)

	got := d.DropBlank()
	assert.Len(t, got.Education, 1)
	assert.Len(t, got.Experience, 1)
	assert.Len(t, got.Certifications, 1)
	assert.Len(t, d.Education, 2, "input must not be modified")
}

func TestDropBlankOnSanitizedDocumentIsIdentity(t *testing.T) {
	d := sample().DropBlank()
	assert.True(t, d.Equal(d.DropBlank()))
}

func TestEnsureIDs(t *testing.T) {
	d := sample()
	d.Education = append(d.Education, Education{Institution: "CMU", Degree: "MS"})
	d.Projects = append(d.Projects, Project{ID: "p1", Name: "dup"})

	got := d.EnsureIDs()
	assert.Equal(t, "e1", got.Education[0].ID)
	assert.NotEmpty(t, got.Education[1].ID)
	assert.Equal(t, "p1", got.Projects[0].ID)
	assert.NotEqual(t, "p1", got.Projects[1].ID)
	assert.Empty(t, d.Education[1].ID, "input must not be modified")
}

func TestCloneSharesNothing(t *testing.T) {
	d := sample()
	c := d.Clone()
	c.Experience[0].Bullets[0] = "changed"
	c.TechnicalSkills.Categories[0].Skills[0] = "Rust"
	assert.Equal(t, "Built things", d.Experience[0].Bullets[0])
	assert.Equal(t, "Go", d.TechnicalSkills.Categories[0].Skills[0])
}

func TestLabels(t *testing.T) {
	d := sample()
	assert.Equal(t, "BS at MIT", d.Education[0].Label())
	assert.Equal(t, "Engineer at Acme (2021)", d.Experience[0].Label())
	assert.Equal(t, "rsm (2024)", d.Projects[0].Label())
	assert.Equal(t, "CKA by CNCF (2022)", d.Certifications[0].Label())
	assert.Equal(t, "", Education{ID: "x"}.Label())
}

func TestReorganizeKeepsOrganizationsContiguous(t *testing.T) {
	certs := []Certification{
		{ID: "1", Name: "A", Organization: "AWS"},
		{ID: "2", Name: "B", Organization: "GCP"},
		{ID: "3", Name: "C", Organization: "AWS"},
		{ID: "4", Name: "D", Organization: "Azure"},
		{ID: "5", Name: "E", Organization: "GCP"},
	}
	got := Reorganize(certs)
	var ids []string
	for _, c := range got {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"1", "3", "2", "5", "4"}, ids)

	again := Reorganize(got)
	assert.Equal(t, got, again)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(sample()))

	d := sample()
	d.PersonalInfo.Email = ""
	d.OrderedSections = []Section{EducationSection, EducationSection}
	err := Validate(d)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.GreaterOrEqual(t, len(verr.Problems), 2)
}

func TestValidateRejectsPersonalInfoInOrder(t *testing.T) {
	d := sample()
	d.OrderedSections = []Section{PersonalInfoSection}
	var verr *ValidationError
	assert.True(t, errors.As(Validate(d), &verr))
}

func TestPermutation(t *testing.T) {
	assert.True(t, IsPermutation([]int{2, 0, 1}, 3))
	assert.False(t, IsPermutation([]int{0, 0, 1}, 3))
	assert.False(t, IsPermutation([]int{0, 1}, 3))
	assert.Equal(t, []string{"c", "a", "b"}, Permute([]string{"a", "b", "c"}, []int{2, 0, 1}))
}
