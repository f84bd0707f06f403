// Package contactinfo manages the contact details and social links stored on
// the profile row.
package contactinfo

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/content"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/web/handler"
	"github.com/gofolio/gofolio/internal/web/navigation"
)

const (
	// Path is the management route for contact details.
	Path = handler.AdminRootPath + "/contact"

	// TemplateName is the contact details form template.
	TemplateName = "admin/contact"
)

// Service is the admin contact-details handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	db       *gorm.DB
	store    *content.Store
	validate *validator.Validate
}

// Handler is the admin contact-details handler.
var Handler = Service{}

// Init initializes the admin contact-details handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, store *content.Store) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.store = store
	s.validate = validator.New()

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)

	return nil
}

// Get renders the contact details form.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, s.load(c), fiber.Map{})
}

// Post updates the contact fields of the profile row.
func (s *Service) Post(c *fiber.Ctx) error {
	var in struct {
		Email       string `form:"email"        validate:"required,email"`
		Phone       string `form:"phone"        validate:"max=50"`
		Location    string `form:"location"     validate:"max=200"`
		GithubURL   string `form:"github_url"   validate:"omitempty,url"`
		LinkedinURL string `form:"linkedin_url" validate:"omitempty,url"`
		TwitterURL  string `form:"twitter_url"  validate:"omitempty,url"`
		WebsiteURL  string `form:"website_url"  validate:"omitempty,url"`
	}

	profile := s.load(c)

	if err := c.BodyParser(&in); err != nil {
		return s.render(c, fiber.StatusBadRequest, profile, fiber.Map{"Error": "Invalid form data"})
	}

	if err := s.validate.Struct(&in); err != nil {
		return s.render(c, fiber.StatusBadRequest, profile, fiber.Map{
			"Error": "A valid contact email is required and links must be valid URLs",
		})
	}

	profile.Email = in.Email
	profile.Phone = in.Phone
	profile.Location = in.Location
	profile.GithubURL = in.GithubURL
	profile.LinkedinURL = in.LinkedinURL
	profile.TwitterURL = in.TwitterURL
	profile.WebsiteURL = in.WebsiteURL

	if err := s.db.Save(&profile).Error; err != nil {
		log.Error().Err(err).Msg("contact details update failed")

		return s.render(c, fiber.StatusInternalServerError, profile, fiber.Map{"Error": "Failed to save contact details"})
	}

	if s.store != nil {
		s.store.ReplaceProfile(profile)
	}

	return s.render(c, fiber.StatusOK, profile, fiber.Map{"Success": "Contact details saved"})
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
		"Navigation": navigation.NewContext("Contact Details", "admin", "contact").
			AddBreadcrumb("Dashboard", handler.AdminRootPath+"/dashboard", false).
			AddBreadcrumb("Contact Details", Path, true),
		"Title":   s.cfg.Title,
		"Profile": profile,
	}
	for k, v := range extra {
		data[k] = v
	}

	return c.Status(status).Render(TemplateName, data, handler.AdminLayout)
}
