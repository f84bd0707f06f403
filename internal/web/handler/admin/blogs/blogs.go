// Package blogs manages the blog posts in the admin area.
package blogs

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/storage"
	"github.com/gofolio/gofolio/internal/web/handler"
	"github.com/gofolio/gofolio/internal/web/handler/admin/crud"
)

// Path is the management route for blog posts.
const Path = handler.AdminRootPath + "/blogs"

// Service is the admin blogs handler service.
type Service struct {
	handler.Service
	pages    *crud.Pages[models.BlogPost]
	bucket   *storage.Bucket
	validate *validator.Validate
}

// Handler is the admin blogs handler.
var Handler = Service{}

// Init initializes the admin blogs handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, bucket *storage.Bucket, onChange func()) error {
	s.bucket = bucket
	s.validate = validator.New()

	s.pages = crud.New(crud.Resource[models.BlogPost]{
		Path:         Path,
		Singular:     "Post",
		Plural:       "Posts",
		NavPage:      "blogs",
		TemplateList: "admin/blogs",
		TemplateForm: "admin/blog_form",
		Order:        "created_at DESC",
		ParseForm:    s.parseForm,
		Apply:        apply,
	})
	s.pages.Init(app, cfg, db, onChange)

	return nil
}

func (s *Service) parseForm(c *fiber.Ctx) (models.BlogPost, error) {
	var in struct {
		Title   string `form:"post_title" validate:"required,max=200"`
		Excerpt string `form:"excerpt"    validate:"max=1000"`
		Content string `form:"content"    validate:"max=100000"`
		Date    string `form:"blog_date"  validate:"max=50"`
		Tags    string `form:"tags"       validate:"max=500"`
	}

	if err := c.BodyParser(&in); err != nil {
		return models.BlogPost{}, fmt.Errorf("%w: invalid form data", crud.ErrValidation)
	}

	if err := s.validate.Struct(&in); err != nil {
		return models.BlogPost{}, fmt.Errorf("%w: title is required", crud.ErrValidation)
	}

	imageURL, err := crud.FormImage(c, s.bucket, "image")
	if err != nil {
		return models.BlogPost{}, err
	}

	return models.BlogPost{
		Title:    in.Title,
		Excerpt:  in.Excerpt,
		Content:  in.Content,
		Date:     in.Date,
		Tags:     in.Tags,
		ImageURL: imageURL,
	}, nil
}

func apply(src models.BlogPost, dst *models.BlogPost) {
	dst.Title = src.Title
	dst.Excerpt = src.Excerpt
	dst.Content = src.Content
	dst.Date = src.Date
	dst.Tags = src.Tags

	if src.ImageURL != "" {
		dst.ImageURL = src.ImageURL
	}
}
