package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupSkillsByCategory(t *testing.T) {
	skills := []Skill{
		{ID: 1, Name: "React", Category: CategoryFrontend},
		{ID: 2, Name: "Go", Category: CategoryBackend},
		{ID: 3, Name: "PostgreSQL", Category: CategoryDatabase},
		{ID: 4, Name: "TypeScript", Category: CategoryFrontend},
	}

	groups := GroupSkillsByCategory(skills)

	// Only categories with members are present.
	assert.Len(t, groups, 3)
	assert.Equal(t, CategoryFrontend, groups[0].Category)
	assert.Equal(t, CategoryBackend, groups[1].Category)
	assert.Equal(t, CategoryDatabase, groups[2].Category)

	// Every skill appears in exactly one bucket matching its category.
	seen := make(map[uint64]int)

	for _, g := range groups {
		for _, s := range g.Skills {
			seen[s.ID]++
			assert.Equal(t, g.Category, s.Category)
		}
	}

	assert.Len(t, seen, len(skills))

	for id, count := range seen {
		assert.Equalf(t, 1, count, "skill %d appears %d times", id, count)
	}
}

func TestGroupSkillsByCategoryUnknownLandsInOther(t *testing.T) {
	skills := []Skill{
		{ID: 1, Name: "Go", Category: CategoryBackend},
		{ID: 2, Name: "Figma", Category: SkillCategory("Design")},
		{ID: 3, Name: "Sketch", Category: SkillCategory("")},
	}

	groups := GroupSkillsByCategory(skills)

	// Unknown categories are kept visible in a trailing Other bucket.
	assert.Len(t, groups, 2)
	assert.Equal(t, CategoryBackend, groups[0].Category)
	assert.Equal(t, CategoryOther, groups[1].Category)
	assert.Len(t, groups[1].Skills, 2)
	assert.Equal(t, "Figma", groups[1].Skills[0].Name)
	assert.Equal(t, "Sketch", groups[1].Skills[1].Name)
}

func TestGroupSkillsByCategoryEmpty(t *testing.T) {
	assert.Empty(t, GroupSkillsByCategory(nil))
}

func TestSkillCategoryDisplayName(t *testing.T) {
	assert.Equal(t, "Front End", CategoryFrontend.DisplayName())
	assert.Equal(t, "Back end", CategoryBackend.DisplayName())
	assert.Equal(t, "Tools", CategoryTools.DisplayName())
}
