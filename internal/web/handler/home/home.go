// Package home serves the landing page. Profile, featured projects, recent
// posts and the site settings are independent queries, so they run as one
// batched fetch bound to the request context.
package home

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/controller/setting"
	"github.com/gofolio/gofolio/internal/db/controller/sitesettings"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/web/handler"
	"github.com/gofolio/gofolio/internal/web/navigation"
)

const (
	// Path is the path to the home page.
	Path = "/"

	// TemplateName is the home template.
	TemplateName = "home"

	// featuredProjects caps how many projects the landing page shows.
	featuredProjects = 6

	// recentPosts caps how many blog posts the landing page shows.
	recentPosts = 3
)

// Service is the home handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the home handler.
var Handler = Service{}

// Init initializes the home handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)

	return nil
}

// Get renders the landing page. The section queries run concurrently and
// a missing settings row is not an error; the resume button just hides.
func (s *Service) Get(c *fiber.Ctx) error {
	var (
		profile  models.Profile
		projects []models.Project
		posts    []models.BlogPost
		site     sitesettings.Settings
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
		return s.db.WithContext(ctx).
			Order("created_at DESC").
			Limit(featuredProjects).
			Find(&projects).Error
	})
	g.Go(func() error {
		return s.db.WithContext(ctx).
			Order("created_at DESC").
			Limit(recentPosts).
			Find(&posts).Error
	})
	g.Go(func() error {
		err := site.Load(s.db.WithContext(ctx))
		if errors.Is(err, setting.ErrSettingNotFound) {
			return nil
		}

		return err
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("home page fetch failed")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Navigation": nav(),
			"Title":      s.cfg.Title,
			"Error":      "Failed to load content",
		}, handler.BaseLayout)
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav(),
		"Title":      s.cfg.Title,
		"Profile":    profile,
		"Projects":   projects,
		"Posts":      posts,
		"Site":       site,
	}, handler.BaseLayout)
}

func nav() *navigation.Context {
	return navigation.NewContext("Home", "public", "home")
}
