package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeExtendsAndDedupes(t *testing.T) {
	cur := Skills(SkillCategory{Name: "Languages", Skills: []string{"Go"}})
	add := Skills(
		SkillCategory{Name: "Languages", Skills: []string{"Go", "Rust"}},
		SkillCategory{Name: "Tools", Skills: []string{"Git", "Git"}},
	)
	got := cur.Merge(add)

	want := Skills(
		SkillCategory{Name: "Languages", Skills: []string{"Go", "Rust"}},
		SkillCategory{Name: "Tools", Skills: []string{"Git"}},
	)
	assert.True(t, want.Equal(got), "got %+v", got)
	assert.Equal(t, []string{"Go"}, cur.Categories[0].Skills, "receiver must not change")
}

func TestMergeIsIdempotent(t *testing.T) {
	cur := Skills(SkillCategory{Name: "Languages", Skills: []string{"Go", "Rust"}})
	add := Skills(SkillCategory{Name: "Languages", Skills: []string{"Rust"}})
	once := cur.Merge(add)
	assert.True(t, once.Equal(once.Merge(add)))
}

func TestFlatten(t *testing.T) {
	cur := Skills(
		SkillCategory{Name: "A", Skills: []string{"x", "y"}},
		SkillCategory{Name: "B", Skills: []string{"y", "z"}},
	)
	got := cur.Flatten()
	assert.True(t, got.Flattened())
	assert.Equal(t, []string{FlatCategory}, got.Names())
	skills, _ := got.Get(FlatCategory)
	assert.Equal(t, []string{"x", "y", "z"}, skills)
	assert.True(t, got.Equal(got.Flatten()))
}

func TestFlattened(t *testing.T) {
	assert.True(t, TechnicalSkills{}.Flattened())
	assert.True(t, Skills(SkillCategory{Name: FlatCategory}).Flattened())
	assert.False(t, Skills(SkillCategory{Name: "Languages"}).Flattened())
}

func TestWithoutDropsEmptiedCategory(t *testing.T) {
	cur := Skills(
		SkillCategory{Name: "A", Skills: []string{"x"}},
		SkillCategory{Name: "B", Skills: []string{"y", "z"}},
	)
	got := cur.Without("A", []string{"x"}).Without("B", []string{"z"})
	assert.Equal(t, []string{"B"}, got.Names())
	skills, _ := got.Get("B")
	assert.Equal(t, []string{"y"}, skills)
}

func TestRenameAndPermute(t *testing.T) {
	cur := Skills(
		SkillCategory{Name: "A", Skills: []string{"x"}},
		SkillCategory{Name: "B", Skills: []string{"y"}},
	)
	got := cur.Rename("A", "Languages").Permute([]int{1, 0})
	assert.Equal(t, []string{"B", "Languages"}, got.Names())
	assert.Equal(t, []string{"A", "B"}, cur.Names())
}

func TestEmpty(t *testing.T) {
	assert.True(t, TechnicalSkills{}.Empty())
	assert.True(t, Skills(SkillCategory{Name: "A"}).Empty())
	assert.False(t, Skills(SkillCategory{Name: "A", Skills: []string{"x"}}).Empty())
}
