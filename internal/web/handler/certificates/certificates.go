// Package certificates serves the public certificates page with the summary
// stats (total count, distinct issuers, years of learning).
package certificates

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/web/handler"
	"github.com/gofolio/gofolio/internal/web/navigation"
)

const (
	// Path is the path to the certificates page.
	Path = "/certificates"

	// TemplateName is the certificates template.
	TemplateName = "certificates"
)

// Stats summarizes the certificate collection for the page header.
type Stats struct {
	Total         int
	Issuers       int
	LearningYears int
}

// Service is the certificates handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the certificates handler.
var Handler = Service{}

// Init initializes the certificates handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)

	return nil
}

// Get renders the certificates page.
func (s *Service) Get(c *fiber.Ctx) error {
	var list []models.Certificate

	err := s.db.WithContext(c.Context()).
		Order("issue_date DESC").
		Find(&list).Error
	if err != nil {
		log.Error().Err(err).Msg("certificates fetch failed")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Navigation": nav(),
			"Title":      s.cfg.Title,
			"Error":      "Failed to load certificates",
		}, handler.BaseLayout)
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation":   nav(),
		"Title":        s.cfg.Title,
		"Certificates": list,
		"Stats":        Summarize(list, time.Now().Year()),
	}, handler.BaseLayout)
}

// Summarize derives the header stats. LearningYears counts from the oldest
// parseable issue year up to currentYear, inclusive of the first year, and
// is zero when no date parses.
func Summarize(list []models.Certificate, currentYear int) Stats {
	issuers := make(map[string]struct{})
	minYear := 0

	for _, cert := range list {
		if cert.IssuingOrganization != "" {
			issuers[cert.IssuingOrganization] = struct{}{}
		}

		if y := issueYear(cert.IssueDate); y > 0 && (minYear == 0 || y < minYear) {
			minYear = y
		}
	}

	st := Stats{Total: len(list), Issuers: len(issuers)}
	if minYear > 0 && currentYear >= minYear {
		st.LearningYears = currentYear - minYear + 1
	}

	return st
}

// issueYear extracts the first plausible four-digit year from a free-form
// issue date string.
func issueYear(date string) int {
	run, year := 0, 0

	for i := 0; i <= len(date); i++ {
		if i < len(date) && date[i] >= '0' && date[i] <= '9' {
			run++
			year = year*10 + int(date[i]-'0')

			continue
		}

		if run == 4 && year >= 1900 && year <= 2200 {
			return year
		}

		run, year = 0, 0
	}

	return 0
}

func nav() *navigation.Context {
	return navigation.NewContext("Certificates", "public", "certificates")
}
