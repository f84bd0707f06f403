// Package skills serves the public skills page, grouped by category.
package skills

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/web/handler"
	"github.com/gofolio/gofolio/internal/web/navigation"
)

const (
	// Path is the path to the skills page.
	Path = "/skills"

	// TemplateName is the skills template.
	TemplateName = "skills"

	// maxSkills caps the skills query.
	maxSkills = 100
)

// Service is the skills handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the skills handler.
var Handler = Service{}

// Init initializes the skills handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)

	return nil
}

// Get renders the skills page.
func (s *Service) Get(c *fiber.Ctx) error {
	var skills []models.Skill

	err := s.db.WithContext(c.Context()).
		Order("skill_name").
		Limit(maxSkills).
		Find(&skills).Error
	if err != nil {
		log.Error().Err(err).Msg("skills fetch failed")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Navigation": nav(),
			"Title":      s.cfg.Title,
			"Error":      "Failed to load skills",
		}, handler.BaseLayout)
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav(),
		"Title":      s.cfg.Title,
		"Groups":     models.GroupSkillsByCategory(skills),
	}, handler.BaseLayout)
}

func nav() *navigation.Context {
	return navigation.NewContext("Skills", "public", "skills")
}
