// Package skills manages the skills collection in the admin area.
package skills

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

// Path is the management route for skills.
const Path = handler.AdminRootPath + "/skills"

// Service is the admin skills handler service.
type Service struct {
	handler.Service
	pages    *crud.Pages[models.Skill]
	bucket   *storage.Bucket
	validate *validator.Validate
}

// Handler is the admin skills handler.
var Handler = Service{}

// Init initializes the admin skills handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, bucket *storage.Bucket, onChange func()) error {
	s.bucket = bucket
	s.validate = validator.New()

	s.pages = crud.New(crud.Resource[models.Skill]{
		Path:         Path,
		Singular:     "Skill",
		Plural:       "Skills",
		NavPage:      "skills",
		TemplateList: "admin/skills",
		TemplateForm: "admin/skill_form",
		Order:        "skill_category, skill_name",
		ParseForm:    s.parseForm,
		Apply:        apply,
	})
	s.pages.Init(app, cfg, db, onChange)

	return nil
}

func (s *Service) parseForm(c *fiber.Ctx) (models.Skill, error) {
	var in struct {
		Name     string `form:"skill_name"     validate:"required,max=200"`
		Category string `form:"skill_category" validate:"required"`
	}

	if err := c.BodyParser(&in); err != nil {
		return models.Skill{}, fmt.Errorf("%w: invalid form data", crud.ErrValidation)
	}

	if err := s.validate.Struct(&in); err != nil {
		return models.Skill{}, fmt.Errorf("%w: name and category are required", crud.ErrValidation)
	}

	cat := models.SkillCategory(in.Category)
	if !validCategory(cat) {
		return models.Skill{}, fmt.Errorf("%w: unknown category %q", crud.ErrValidation, in.Category)
	}

	iconURL, err := crud.FormImage(c, s.bucket, "icon")
	if err != nil {
		return models.Skill{}, err
	}

	return models.Skill{Name: in.Name, Category: cat, IconURL: iconURL}, nil
}

// apply keeps the stored icon when no new file was uploaded.
func apply(src models.Skill, dst *models.Skill) {
	dst.Name = src.Name
	dst.Category = src.Category

	if src.IconURL != "" {
		dst.IconURL = src.IconURL
	}
}

func validCategory(c models.SkillCategory) bool {
	for _, known := range models.Categories {
		if c == known {
			return true
		}
	}

	return false
}
