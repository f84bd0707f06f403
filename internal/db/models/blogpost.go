package models

import "time"

// BlogPost is one blog entry.
type BlogPost struct {
	ID      uint64 `gorm:"primaryKey"`
	Title   string `gorm:"column:post_title;size:200;not null"`
	Excerpt string `gorm:"type:text"`
	Content string `gorm:"type:text"`
	Date    string `gorm:"column:blog_date;size:50"`
	// Tags is a free-text comma-separated list, split at render time.
	Tags      string `gorm:"size:500"`
	ImageURL  string `gorm:"column:blogimage_url;size:500"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the deployed collection name.
func (BlogPost) TableName() string { return "blogs" }
