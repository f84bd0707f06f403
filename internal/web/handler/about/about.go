// Package about serves the about page: profile bio, the image carousel,
// core values and the journey timeline.
package about

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/web/handler"
	"github.com/gofolio/gofolio/internal/web/navigation"
)

const (
	// Path is the path to the about page.
	Path = "/about"

	// TemplateName is the about template.
	TemplateName = "about"

	// CarouselIntervalMS is the auto-advance interval handed to the
	// client-side carousel script.
	CarouselIntervalMS = 5000
)

// Service is the about handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the about handler.
var Handler = Service{}

// Init initializes the about handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)

	return nil
}

// Get renders the about page.
func (s *Service) Get(c *fiber.Ctx) error {
	var (
		profile  models.Profile
		carousel []models.CarouselImage
		values   []models.CoreValue
		journey  []models.JourneyEntry
	)

	g, ctx := errgroup.WithContext(c.Context())

	g.Go(func() error {
		err := s.db.WithContext(ctx).First(&profile).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}

		return err
	})
	g.Go(func() error {
		return s.db.WithContext(ctx).Order("id").Find(&carousel).Error
	})
	g.Go(func() error {
		return s.db.WithContext(ctx).Order("id").Find(&values).Error
	})
	g.Go(func() error {
		return s.db.WithContext(ctx).Order("id").Find(&journey).Error
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("about page fetch failed")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Navigation": nav(),
			"Title":      s.cfg.Title,
			"Error":      "Failed to load content",
		}, handler.BaseLayout)
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation":       nav(),
		"Title":            s.cfg.Title,
		"Profile":          profile,
		"Carousel":         carousel,
		"CarouselInterval": CarouselIntervalMS,
		"Values":           values,
		"Journey":          journey,
	}, handler.BaseLayout)
}

func nav() *navigation.Context {
	return navigation.NewContext("About", "public", "about")
}
