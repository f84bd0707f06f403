// Package dashboard serves the admin landing page with content counts.
package dashboard

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/content"
	"github.com/gofolio/gofolio/internal/web/handler"
	"github.com/gofolio/gofolio/internal/web/navigation"
)

const (
	// Path is the path to the admin dashboard.
	Path = handler.AdminRootPath + "/dashboard"

	// TemplateName is the dashboard template.
	TemplateName = "admin/dashboard"
)

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	store *content.Store
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, store *content.Store) error {
	if app == nil || cfg == nil || store == nil {
		return errors.New("app, cfg or store is nil")
	}

	s.cfg = cfg
	s.store = store

	app.Get(Path, s.Get)

	return nil
}

// Get renders the dashboard from the current content snapshot.
func (s *Service) Get(c *fiber.Ctx) error {
	snap := s.store.Current()

	return c.Render(TemplateName, fiber.Map{
		"Navigation": navigation.NewContext("Dashboard", "admin", "dashboard").
			AddBreadcrumb("Dashboard", Path, true),
		"Title":        s.cfg.Title,
		"Profile":      snap.Profile,
		"Skills":       len(snap.Skills),
		"Projects":     len(snap.Projects),
		"Certificates": len(snap.Certificates),
		"Blogs":        len(snap.Blogs),
	}, handler.AdminLayout)
}
