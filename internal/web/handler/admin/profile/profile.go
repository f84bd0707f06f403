// Package profile manages the single profile row in the admin area: name,
// title, bio and the profile photo.
package profile

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/content"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/storage"
	"github.com/gofolio/gofolio/internal/web/handler"
	"github.com/gofolio/gofolio/internal/web/handler/admin/crud"
	"github.com/gofolio/gofolio/internal/web/navigation"
)

const (
	// Path is the management route for the profile.
	Path = handler.AdminRootPath + "/profile"

	// TemplateName is the profile form template.
	TemplateName = "admin/profile"
)

// Service is the admin profile handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	db       *gorm.DB
	store    *content.Store
	bucket   *storage.Bucket
	validate *validator.Validate
}

// Handler is the admin profile handler.
var Handler = Service{}

// Init initializes the admin profile handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, store *content.Store, bucket *storage.Bucket) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.store = store
	s.bucket = bucket
	s.validate = validator.New()

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)

	return nil
}

// Get renders the profile form.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, s.load(c), fiber.Map{})
}

// Post updates the profile. There is exactly one row; it is created on
// first save if the login upsert has not created it yet.
func (s *Service) Post(c *fiber.Ctx) error {
	var in struct {
		FullName          string `form:"fullname"           validate:"required,max=200"`
		ProfessionalTitle string `form:"professional_title" validate:"max=200"`
		Bio               string `form:"bio"                validate:"max=5000"`
	}

	profile := s.load(c)

	if err := c.BodyParser(&in); err != nil {
		return s.render(c, fiber.StatusBadRequest, profile, fiber.Map{"Error": "Invalid form data"})
	}

	if err := s.validate.Struct(&in); err != nil {
		return s.render(c, fiber.StatusBadRequest, profile, fiber.Map{"Error": "Your full name is required"})
	}

	imageURL, err := crud.FormImage(c, s.bucket, "image")
	if err != nil {
		return s.render(c, fiber.StatusBadRequest, profile, fiber.Map{"Error": err.Error()})
	}

	profile.FullName = in.FullName
	profile.ProfessionalTitle = in.ProfessionalTitle
	profile.Bio = in.Bio

	if imageURL != "" {
		profile.ProfileImageURL = imageURL
	}

	if err := s.db.Save(&profile).Error; err != nil {
		log.Error().Err(err).Msg("profile update failed")

		return s.render(c, fiber.StatusInternalServerError, profile, fiber.Map{"Error": "Failed to save profile"})
	}

	if s.store != nil {
		s.store.ReplaceProfile(profile)
	}

	return s.render(c, fiber.StatusOK, profile, fiber.Map{"Success": "Profile saved"})
}

func (s *Service) load(c *fiber.Ctx) models.Profile {
	var profile models.Profile
	if err := s.db.WithContext(c.Context()).First(&profile).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("profile fetch failed")
	}

	return profile
}

func (s *Service) render(c *fiber.Ctx, status int, profile models.Profile, extra fiber.Map) error {
	data := fiber.Map{
		"Navigation": navigation.NewContext("Profile", "admin", "profile").
			AddBreadcrumb("Dashboard", handler.AdminRootPath+"/dashboard", false).
			AddBreadcrumb("Profile", Path, true),
		"Title":   s.cfg.Title,
		"Profile": profile,
	}
	for k, v := range extra {
		data[k] = v
	}

	return c.Status(status).Render(TemplateName, data, handler.AdminLayout)
}
