package models

import "time"

// SkillCategory is the fixed category set a skill belongs to.
// The values keep the deployed schema's spelling; display names are derived
// at render time.
type SkillCategory string

const (
	// CategoryFrontend groups UI-side skills.
	CategoryFrontend SkillCategory = "Front_End"
	// CategoryBackend groups server-side skills.
	CategoryBackend SkillCategory = "Back_end"
	// CategoryDatabase groups database skills.
	CategoryDatabase SkillCategory = "Database"
	// CategoryTools groups tooling skills.
	CategoryTools SkillCategory = "Tools"
	// CategoryCRM groups CRM platform skills.
	CategoryCRM SkillCategory = "Crm"
	// CategoryAutomation groups automation skills.
	CategoryAutomation SkillCategory = "Automation"
	// CategoryLanguage groups programming languages.
	CategoryLanguage SkillCategory = "Language"
	// CategoryOther collects rows whose stored category is not in the fixed
	// set, e.g. legacy data imported before the form started validating it.
	CategoryOther SkillCategory = "Other"
)

// Categories lists all skill categories in display order.
var Categories = []SkillCategory{
	CategoryFrontend,
	CategoryBackend,
	CategoryDatabase,
	CategoryTools,
	CategoryCRM,
	CategoryAutomation,
	CategoryLanguage,
}

// Skill is one entry on the skills page.
type Skill struct {
	ID        uint64        `gorm:"primaryKey"`
	Name      string        `gorm:"column:skill_name;size:200;not null"`
	IconURL   string        `gorm:"column:icon_url;size:500"`
	Category  SkillCategory `gorm:"column:skill_category;type:varchar(20);not null;default:'Front_End'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the deployed collection name.
func (Skill) TableName() string { return "skill" }

// GroupSkillsByCategory buckets skills by their category, preserving the
// fixed category order. Categories with zero members are absent from the
// result, so templates never render an empty group. Rows carrying a category
// outside the fixed set go into a trailing "Other" bucket so every skill
// stays visible.
func GroupSkillsByCategory(skills []Skill) []SkillGroup {
	known := make(map[SkillCategory]bool, len(Categories))
	for _, cat := range Categories {
		known[cat] = true
	}

	byCategory := make(map[SkillCategory][]Skill)
	for _, s := range skills {
		cat := s.Category
		if !known[cat] {
			cat = CategoryOther
		}

		byCategory[cat] = append(byCategory[cat], s)
	}

	groups := make([]SkillGroup, 0, len(byCategory))

	for _, cat := range Categories {
		if members, ok := byCategory[cat]; ok {
			groups = append(groups, SkillGroup{Category: cat, Skills: members})
		}
	}

	if members, ok := byCategory[CategoryOther]; ok {
		groups = append(groups, SkillGroup{Category: CategoryOther, Skills: members})
	}

	return groups
}

// SkillGroup is one rendered category bucket.
type SkillGroup struct {
	Category SkillCategory
	Skills   []Skill
}

// DisplayName renders the category for humans ("Front_End" -> "Front End").
func (c SkillCategory) DisplayName() string {
	out := make([]rune, 0, len(c))
	for _, r := range string(c) {
		if r == '_' {
			r = ' '
		}

		out = append(out, r)
	}

	return string(out)
}
