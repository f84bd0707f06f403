package models

import "time"

// Project is one portfolio project card.
type Project struct {
	ID          uint64 `gorm:"primaryKey"`
	Title       string `gorm:"column:project_title;size:200;not null"`
	Description string `gorm:"type:text"`
	// TechnologyUsed is a free-text comma-separated list; splitting and
	// trimming happens at render time.
	TechnologyUsed string `gorm:"column:technology_used;size:500"`
	ImageURL       string `gorm:"column:projectimg_url;size:500"`
	LiveDemoURL    string `gorm:"column:livedemo_url;size:500"`
	GithubRepoURL  string `gorm:"column:githubrepo_url;size:500"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName keeps the deployed collection name.
func (Project) TableName() string { return "projects" }
