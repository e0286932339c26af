package store

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrsl/rsm/pkg/resume"
)

func doc() resume.Document {
	return resume.Document{
		PersonalInfo:    resume.PersonalInfo{Name: "Ada", Phone: "1", Email: "a@b.c"},
		OrderedSections: []resume.Section{resume.ProjectsSection, resume.EducationSection},
		Education:       []resume.Education{{ID: "e1", Institution: "MIT", Degree: "BS"}},
		Projects: []resume.Project{
			{ID: "p2", Name: "second", Date: "2024", Bullets: []string{"b", "a"}},
			{ID: "p1", Name: "first", Date: "2023"},
		},
		TechnicalSkills: resume.Skills(
			resume.SkillCategory{Name: "Tools", Skills: []string{"Git"}},
			resume.SkillCategory{Name: "Languages", Skills: []string{"Go"}},
		),
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(memfs.New(), "resume.yaml", ".gitignore")
	require.NoError(t, s.Save(doc()))
	assert.True(t, s.Exists())

	got, err := s.Load()
	require.NoError(t, err)
	assert.True(t, doc().Equal(got), "got %+v", got)
}

func TestLoadMissing(t *testing.T) {
	s := New(memfs.New(), "resume.yaml", ".gitignore")
	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, s.Exists())
}

func TestLoadDropsBlankAndAssignsIDs(t *testing.T) {
	fs := memfs.New()
	src := `personal_info:
  name: Ada
  phone: "1"
  email: a@b.c
experience:
  - company: ""
    position: ""
  - company: Acme
    position: Engineer
    date: "2021"
`
	require.NoError(t, util.WriteFile(fs, "resume.yaml", []byte(src), 0o644))

	got, err := New(fs, "resume.yaml", ".gitignore").Load()
	require.NoError(t, err)
	require.Len(t, got.Experience, 1)
	assert.Equal(t, "Acme", got.Experience[0].Company)
	assert.NotEmpty(t, got.Experience[0].ID)
}

func TestEncodeUsesTwoSpaceIndent(t *testing.T) {
	data, err := Encode(doc())
	require.NoError(t, err)
	assert.Contains(t, string(data), "personal_info:\n  name: Ada\n")
	assert.Contains(t, string(data), "technical_skills:\n  Tools:\n    - Git\n  Languages:\n    - Go\n")
}

func TestEnsureIgnore(t *testing.T) {
	fs := memfs.New()
	s := New(fs, "resume.yaml", ".gitignore")
	require.NoError(t, s.EnsureIgnore())
	data, err := util.ReadFile(fs, ".gitignore")
	require.NoError(t, err)
	assert.Equal(t, "*\n!.gitignore\n!resume.yaml\n", string(data))

	require.NoError(t, util.WriteFile(fs, ".gitignore", []byte("custom\n"), 0o644))
	require.NoError(t, s.EnsureIgnore())
	data, err = util.ReadFile(fs, ".gitignore")
	require.NoError(t, err)
	assert.Equal(t, "custom\n", string(data))
}
