package models

import "time"

// Certificate is one certification entry.
type Certificate struct {
	ID                  uint64 `gorm:"primaryKey"`
	Title               string `gorm:"column:certificate_title;size:200;not null"`
	IssuingOrganization string `gorm:"column:issuing_organization;size:200"`
	IssueDate           string `gorm:"column:issue_date;size:50"`
	ImageURL            string `gorm:"column:certificateimage_url;size:500"`
	CredentialURL       string `gorm:"column:credential_url;size:500"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName keeps the deployed collection name, misspelling included.
// The deployment's existing data lives under this name; renaming the table
// would orphan it.
func (Certificate) TableName() string { return "cerificates" }
