// Package resume serves the resume page backed by the site settings row.
package resume

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/controller/setting"
	"github.com/gofolio/gofolio/internal/db/controller/sitesettings"
	"github.com/gofolio/gofolio/internal/web/handler"
	"github.com/gofolio/gofolio/internal/web/navigation"
)

const (
	// Path is the path to the resume page.
	Path = "/resume"

	// TemplateName is the resume template.
	TemplateName = "resume"
)

// Service is the resume handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the resume handler.
var Handler = Service{}

// Init initializes the resume handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)

	return nil
}

// Get renders the resume page. The online copy wins when both links are
// set; with neither set the page shows a placeholder.
func (s *Service) Get(c *fiber.Ctx) error {
	var site sitesettings.Settings

	err := site.Load(s.db.WithContext(c.Context()))
	if err != nil && !errors.Is(err, setting.ErrSettingNotFound) {
		log.Error().Err(err).Msg("resume settings fetch failed")
	}

	url := site.OnlineResumeURL
	if url == "" {
		url = site.ResumeURL
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation": navigation.NewContext("Resume", "public", "resume"),
		"Title":      s.cfg.Title,
		"ResumeURL":  url,
	}, handler.BaseLayout)
}
