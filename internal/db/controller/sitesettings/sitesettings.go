// Package sitesettings provides the typed site-wide settings stored as one
// settings row (resume links and the destructive clear-all marker).
package sitesettings

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/db/controller/setting"
)

const (
	// SettingKeySite is the key used to store site settings in the database.
	SettingKeySite = "site"
)

type (
	// Settings holds the resume file references shown on the resume page.
	// ResumeURL points at an uploaded file served from the local bucket,
	// OnlineResumeURL at an externally hosted copy; either may be empty.
	Settings struct {
		ResumeURL       string `form:"resume_url"       json:"resumeUrl"`
		OnlineResumeURL string `form:"onlineresume_url" json:"onlineResumeUrl" validate:"omitempty,url"`
	}
)

// Load loads the site settings from the database.
func (p *Settings) Load(db *gorm.DB) error {
	s, err := setting.Get(db, SettingKeySite)
	if err != nil {
		return err
	}

	return json.Unmarshal(s.Value, p)
}

// Save saves the site settings to the database.
func (p *Settings) Save(db *gorm.DB) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	_, err = setting.Set(db, SettingKeySite, data)

	return err
}
