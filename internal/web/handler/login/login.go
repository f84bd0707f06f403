package login

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/content"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/web/handler"
	"github.com/gofolio/gofolio/internal/web/limiter"
	"github.com/gofolio/gofolio/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = "/admin"

	// TemplateName is the login template.
	TemplateName = "admin/login"
)

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	db    *gorm.DB
	store *content.Store
	lim   *limiter.Limiter
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, store *content.Store, lim *limiter.Limiter) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.db = db
	s.cfg = cfg
	s.store = store
	s.lim = lim

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, fiber.Map{
		"Title": s.cfg.Title,
	})
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	var in struct {
		Email    string `form:"email"`
		Password string `form:"password"`
	}

	if err := c.BodyParser(&in); err != nil {
		return s.renderError(c, fiber.StatusBadRequest, ErrInvalidFormData.Error())
	}

	if s.lim != nil && !s.lim.Check(c.IP()) {
		return s.renderError(c, fiber.StatusTooManyRequests, ErrTooManyAttempts.Error())
	}

	// best-effort close of any session left behind by an earlier login
	if old := c.Cookies("session"); old != "" {
		_ = session.Store.Storage.Delete(old)
	}

	var dbUser models.User
	if err := s.db.Where("email = ?", in.Email).First(&dbUser).Error; err != nil {
		s.recordFailure(c.IP())
		return s.renderError(c, fiber.StatusUnauthorized, ErrInvalidCredentials.Error())
	}

	if !dbUser.Active {
		s.recordFailure(c.IP())
		return s.renderError(c, fiber.StatusUnauthorized, ErrAccountInactive.Error())
	}

	if !dbUser.VerifyPassword(in.Password) {
		s.recordFailure(c.IP())
		return s.renderError(c, fiber.StatusUnauthorized, ErrInvalidCredentials.Error())
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")
		return s.renderError(c, fiber.StatusInternalServerError, ErrInternalServerError.Error())
	}

	userSession := &session.Data{User: dbUser}
	if err = userSession.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return s.renderError(c, fiber.StatusInternalServerError, ErrInternalServerError.Error())
	}

	// Only the configured admin identity may pass. A mismatch deletes the
	// session that was just created, so nothing usable is left behind.
	if dbUser.ID != s.cfg.Admin.UserID {
		_ = session.Store.Storage.Delete(sessionID)

		log.Warn().Uint64("user_id", dbUser.ID).Msg("login rejected: not the configured admin user")

		s.recordFailure(c.IP())

		return s.renderError(c, fiber.StatusUnauthorized, ErrUnauthorizedUser.Error())
	}

	s.upsertProfileUsername(dbUser.Email)

	if s.store != nil {
		s.store.SetAuthenticated(true)
	}

	cookieSettings := &fiber.Cookie{
		Name:     "session",
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	return c.Redirect(handler.AdminRootPath + "/dashboard")
}

// upsertProfileUsername writes the email-derived username onto the profile
// row keyed by email, creating the row on first login.
func (s *Service) upsertProfileUsername(email string) {
	username := email
	if at := strings.Index(email, "@"); at > 0 {
		username = email[:at]
	}

	var profile models.Profile

	err := s.db.Where("email = ?", email).First(&profile).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = models.Profile{Username: username, Email: email}
		if err := s.db.Create(&profile).Error; err != nil {
			log.Error().Err(err).Msg("failed to create profile on login")
		}
	case err != nil:
		log.Error().Err(err).Msg("failed to load profile on login")
	default:
		profile.Username = username
		if err := s.db.Save(&profile).Error; err != nil {
			log.Error().Err(err).Msg("failed to update profile on login")
		}
	}
}

func (s *Service) recordFailure(ip string) {
	if s.lim != nil {
		s.lim.Record(ip)
	}
}

func (s *Service) renderError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).Render(TemplateName, fiber.Map{
		"Title": s.cfg.Title,
		"error": msg,
	})
}
