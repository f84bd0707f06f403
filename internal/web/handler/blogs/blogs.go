// Package blogs serves the public blog listing and single-post pages.
package blogs

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/web/handler"
	"github.com/gofolio/gofolio/internal/web/navigation"
)

const (
	// Path is the path to the blog listing.
	Path = "/blogs"

	// TemplateName is the listing template.
	TemplateName = "blogs"

	// PostTemplateName is the single-post template.
	PostTemplateName = "blog_post"
)

// Service is the blogs handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the blogs handler.
var Handler = Service{}

// Init initializes the blogs handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
	app.Get(Path+"/:id", s.GetPost)

	return nil
}

// Get renders the blog listing, newest first.
func (s *Service) Get(c *fiber.Ctx) error {
	var posts []models.BlogPost

	err := s.db.WithContext(c.Context()).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		log.Error().Err(err).Msg("blogs fetch failed")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Navigation": nav("Blog"),
			"Title":      s.cfg.Title,
			"Error":      "Failed to load posts",
		}, handler.BaseLayout)
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav("Blog"),
		"Title":      s.cfg.Title,
		"Posts":      posts,
	}, handler.BaseLayout)
}

// GetPost renders one post in full.
func (s *Service) GetPost(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return c.Redirect(Path)
	}

	var post models.BlogPost
	if err := s.db.WithContext(c.Context()).First(&post, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Uint64("post_id", id).Msg("blog post fetch failed")
		}

		return c.Redirect(Path)
	}

	return c.Render(PostTemplateName, fiber.Map{
		"Navigation": nav(post.Title),
		"Title":      s.cfg.Title,
		"Post":       post,
		"Tags":       models.SplitTags(post.Tags),
	}, handler.BaseLayout)
}

func nav(title string) *navigation.Context {
	return navigation.NewContext(title, "public", "blogs")
}
