package models

import "time"

// Profile is the portfolio owner's profile. One row per admin user, keyed by
// email; login upserts the derived username onto it.
type Profile struct {
	ID                uint64 `gorm:"primaryKey"`
	Username          string `gorm:"size:100"`
	FullName          string `gorm:"column:fullname;size:200"`
	ProfessionalTitle string `gorm:"column:professional_title;size:200"`
	Bio               string `gorm:"type:text"`
	Email             string `gorm:"size:255"`
	Phone             string `gorm:"size:50"`
	Location          string `gorm:"size:200"`
	GithubURL         string `gorm:"column:github_url;size:500"`
	LinkedinURL       string `gorm:"column:linkedin_url;size:500"`
	TwitterURL        string `gorm:"column:twitter_url;size:500"`
	WebsiteURL        string `gorm:"column:website_url;size:500"`
	ProfileImageURL   string `gorm:"column:profileimage_url;size:500"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName keeps the deployed collection name.
func (Profile) TableName() string { return "profile" }
