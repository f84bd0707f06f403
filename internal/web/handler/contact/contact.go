// Package contact serves the contact page and relays submissions through the
// outbound email provider. When no provider is configured the page degrades
// to showing the profile's direct contact details.
package contact

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/mailer"
	"github.com/gofolio/gofolio/internal/web/handler"
	"github.com/gofolio/gofolio/internal/web/limiter"
	"github.com/gofolio/gofolio/internal/web/navigation"
)

const (
	// Path is the path to the contact page.
	Path = "/contact"

	// TemplateName is the contact template.
	TemplateName = "contact"
)

// Service is the contact handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	db       *gorm.DB
	mail     *mailer.Client
	lim      *limiter.Limiter
	validate *validator.Validate
}

// Handler is the contact handler.
var Handler = Service{}

// Init initializes the contact handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, mail *mailer.Client, lim *limiter.Limiter) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.mail = mail
	s.lim = lim
	s.validate = validator.New()

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)

	return nil
}

// Get renders the contact page.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, fiber.Map{})
}

// Post validates the submission and relays it. Provider failures map to
// user-facing messages; the visitor always keeps the direct-email fallback.
func (s *Service) Post(c *fiber.Ctx) error {
	var in struct {
		Name    string `form:"name"    validate:"required,max=200"`
		Email   string `form:"email"   validate:"required,email"`
		Subject string `form:"subject" validate:"required,max=200"`
		Message string `form:"message" validate:"required,max=5000"`
	}

	if err := c.BodyParser(&in); err != nil {
		return s.render(c, fiber.StatusBadRequest, fiber.Map{"Error": "Invalid form data"})
	}

	if err := s.validate.Struct(&in); err != nil {
		return s.render(c, fiber.StatusBadRequest, fiber.Map{
			"Error": "Please fill in all fields with a valid email address",
			"Form":  in,
		})
	}

	if s.lim != nil && !s.lim.Check(c.IP()) {
		return s.render(c, fiber.StatusTooManyRequests, fiber.Map{
			"Error": "Too many messages, please try again later",
			"Form":  in,
		})
	}

	if s.mail == nil || !s.mail.Configured() {
		return s.render(c, fiber.StatusOK, fiber.Map{
			"Error":    "Direct messaging is unavailable right now, please use the email address below",
			"Fallback": true,
			"Form":     in,
		})
	}

	err := s.mail.Send(c.Context(), mailer.Message{
		FromName:  in.Name,
		FromEmail: in.Email,
		Subject:   in.Subject,
		Body:      in.Message,
	})
	if err != nil {
		log.Error().Err(err).Msg("contact message relay failed")

		return s.render(c, fiber.StatusBadGateway, fiber.Map{
			"Error":    sendErrorMessage(err),
			"Fallback": true,
			"Form":     in,
		})
	}

	if s.lim != nil {
		s.lim.Record(c.IP())
	}

	return s.render(c, fiber.StatusOK, fiber.Map{"Success": "Message sent, thank you!"})
}

// sendErrorMessage maps provider errors onto messages safe to show.
func sendErrorMessage(err error) string {
	switch {
	case errors.Is(err, mailer.ErrServiceNotFound),
		errors.Is(err, mailer.ErrTemplateNotFound),
		errors.Is(err, mailer.ErrAuthFailed):
		return "The messaging service is misconfigured, please use the email address below"
	case errors.Is(err, mailer.ErrProviderUnreachable):
		return "The messaging service is unreachable, please try again later"
	default:
		return "Your message could not be sent, please use the email address below"
	}
}

func (s *Service) render(c *fiber.Ctx, status int, extra fiber.Map) error {
	var profile models.Profile
	if err := s.db.WithContext(c.Context()).First(&profile).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("contact page profile fetch failed")
	}

	data := fiber.Map{
		"Navigation": navigation.NewContext("Contact", "public", "contact"),
		"Title":      s.cfg.Title,
		"Profile":    profile,
	}
	for k, v := range extra {
		data[k] = v
	}

	return c.Status(status).Render(TemplateName, data, handler.BaseLayout)
}
