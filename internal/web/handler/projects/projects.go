// Package projects serves the public projects page.
package projects

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
	// Path is the path to the projects page.
	Path = "/projects"

	// TemplateName is the projects template.
	TemplateName = "projects"
)

// Service is the projects handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the projects handler.
var Handler = Service{}

// Init initializes the projects handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)

	return nil
}

// Get renders the projects page, newest first.
func (s *Service) Get(c *fiber.Ctx) error {
	var list []models.Project

	err := s.db.WithContext(c.Context()).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		log.Error().Err(err).Msg("projects fetch failed")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Navigation": nav(),
			"Title":      s.cfg.Title,
			"Error":      "Failed to load projects",
		}, handler.BaseLayout)
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav(),
		"Title":      s.cfg.Title,
		"Projects":   list,
	}, handler.BaseLayout)
}

func nav() *navigation.Context {
	return navigation.NewContext("Projects", "public", "projects")
}
