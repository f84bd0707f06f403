// Package projects manages the projects collection in the admin area.
package projects

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

// Path is the management route for projects.
const Path = handler.AdminRootPath + "/projects"

// Service is the admin projects handler service.
type Service struct {
	handler.Service
	pages    *crud.Pages[models.Project]
	bucket   *storage.Bucket
	validate *validator.Validate
}

// Handler is the admin projects handler.
var Handler = Service{}

// Init initializes the admin projects handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, bucket *storage.Bucket, onChange func()) error {
	s.bucket = bucket
	s.validate = validator.New()

	s.pages = crud.New(crud.Resource[models.Project]{
		Path:         Path,
		Singular:     "Project",
		Plural:       "Projects",
		NavPage:      "projects",
		TemplateList: "admin/projects",
		TemplateForm: "admin/project_form",
		Order:        "created_at DESC",
		ParseForm:    s.parseForm,
		Apply:        apply,
	})
	s.pages.Init(app, cfg, db, onChange)

	return nil
}

func (s *Service) parseForm(c *fiber.Ctx) (models.Project, error) {
	var in struct {
		Title          string `form:"project_title"   validate:"required,max=200"`
		Description    string `form:"description"     validate:"max=5000"`
		TechnologyUsed string `form:"technology_used" validate:"max=500"`
		LiveDemoURL    string `form:"livedemo_url"    validate:"omitempty,url"`
		GithubRepoURL  string `form:"githubrepo_url"  validate:"omitempty,url"`
	}

	if err := c.BodyParser(&in); err != nil {
		return models.Project{}, fmt.Errorf("%w: invalid form data", crud.ErrValidation)
	}

	if err := s.validate.Struct(&in); err != nil {
		return models.Project{}, fmt.Errorf("%w: title is required and links must be valid URLs", crud.ErrValidation)
	}

	imageURL, err := crud.FormImage(c, s.bucket, "image")
	if err != nil {
		return models.Project{}, err
	}

	return models.Project{
		Title:          in.Title,
		Description:    in.Description,
		TechnologyUsed: in.TechnologyUsed,
		LiveDemoURL:    in.LiveDemoURL,
		GithubRepoURL:  in.GithubRepoURL,
		ImageURL:       imageURL,
	}, nil
}

func apply(src models.Project, dst *models.Project) {
	dst.Title = src.Title
	dst.Description = src.Description
	dst.TechnologyUsed = src.TechnologyUsed
	dst.LiveDemoURL = src.LiveDemoURL
	dst.GithubRepoURL = src.GithubRepoURL

	if src.ImageURL != "" {
		dst.ImageURL = src.ImageURL
	}
}
