// Package settings manages the site settings: the resume links and the
// destructive clear-all action.
package settings

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/controller/setting"
	"github.com/gofolio/gofolio/internal/db/controller/sitesettings"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/storage"
	"github.com/gofolio/gofolio/internal/web/handler"
	"github.com/gofolio/gofolio/internal/web/handler/admin/crud"
	"github.com/gofolio/gofolio/internal/web/navigation"
)

const (
	// Path is the management route for site settings.
	Path = handler.AdminRootPath + "/settings"

	// ClearPath is the clear-all action route.
	ClearPath = Path + "/clear"

	// TemplateName is the settings template.
	TemplateName = "admin/settings"

	// ClearConfirmPhrase must be typed verbatim before clear-all runs.
	ClearConfirmPhrase = "DELETE"
)

// Service is the admin settings handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	db       *gorm.DB
	bucket   *storage.Bucket
	validate *validator.Validate
	onChange func()
}

// Handler is the admin settings handler.
var Handler = Service{}

// Init initializes the admin settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, bucket *storage.Bucket, onChange func()) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.bucket = bucket
	s.validate = validator.New()
	s.onChange = onChange

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)
	app.Post(ClearPath, s.Clear)

	return nil
}

// Get renders the settings form.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, s.load(c), fiber.Map{})
}

// Post saves the resume links. An uploaded file replaces the stored resume;
// the online link is kept as submitted, including empty to unset it.
func (s *Service) Post(c *fiber.Ctx) error {
	site := s.load(c)

	var in sitesettings.Settings
	if err := c.BodyParser(&in); err != nil {
		return s.render(c, fiber.StatusBadRequest, site, fiber.Map{"Error": "Invalid form data"})
	}

	if err := s.validate.Struct(&in); err != nil {
		return s.render(c, fiber.StatusBadRequest, site, fiber.Map{"Error": "The online resume link must be a valid URL"})
	}

	fileURL, err := crud.FormFile(c, s.bucket, "resume")
	if err != nil {
		return s.render(c, fiber.StatusBadRequest, site, fiber.Map{"Error": err.Error()})
	}

	site.OnlineResumeURL = in.OnlineResumeURL
	if fileURL != "" {
		site.ResumeURL = fileURL
	}

	if err := site.Save(s.db); err != nil {
		log.Error().Err(err).Msg("settings save failed")

		return s.render(c, fiber.StatusInternalServerError, site, fiber.Map{"Error": "Failed to save settings"})
	}

	return s.render(c, fiber.StatusOK, site, fiber.Map{"Success": "Settings saved"})
}

// Clear wipes every content collection. The profile row and the login
// account survive; this resets the published content, not the identity.
// The confirm phrase gates the whole action.
func (s *Service) Clear(c *fiber.Ctx) error {
	site := s.load(c)

	if c.FormValue("confirm") != ClearConfirmPhrase {
		return s.render(c, fiber.StatusBadRequest, site, fiber.Map{
			"Error": "Type " + ClearConfirmPhrase + " to confirm clearing all content",
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, target := range []any{
			&models.Skill{}, &models.Project{}, &models.Certificate{},
			&models.BlogPost{}, &models.CarouselImage{}, &models.CoreValue{},
			&models.JourneyEntry{},
		} {
			if err := tx.Where("1 = 1").Delete(target).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("clear-all failed")

		return s.render(c, fiber.StatusInternalServerError, site, fiber.Map{"Error": "Failed to clear content"})
	}

	log.Warn().Msg("all portfolio content cleared by admin")

	if s.onChange != nil {
		s.onChange()
	}

	return s.render(c, fiber.StatusOK, site, fiber.Map{"Success": "All content cleared"})
}

func (s *Service) load(c *fiber.Ctx) sitesettings.Settings {
	var site sitesettings.Settings
	if err := site.Load(s.db.WithContext(c.Context())); err != nil &&
		!errors.Is(err, setting.ErrSettingNotFound) {
		log.Error().Err(err).Msg("settings fetch failed")
	}

	return site
}

func (s *Service) render(c *fiber.Ctx, status int, site sitesettings.Settings, extra fiber.Map) error {
	data := fiber.Map{
		"Navigation": navigation.NewContext("Settings", "admin", "settings").
			AddBreadcrumb("Dashboard", handler.AdminRootPath+"/dashboard", false).
			AddBreadcrumb("Settings", Path, true),
		"Title":         s.cfg.Title,
		"Site":          site,
		"ConfirmPhrase": ClearConfirmPhrase,
	}
	for k, v := range extra {
		data[k] = v
	}

	return c.Status(status).Render(TemplateName, data, handler.AdminLayout)
}
