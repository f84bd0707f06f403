// Package certificates manages the certificates collection in the admin area.
package certificates

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

// Path is the management route for certificates.
const Path = handler.AdminRootPath + "/certificates"

// Service is the admin certificates handler service.
type Service struct {
	handler.Service
	pages    *crud.Pages[models.Certificate]
	bucket   *storage.Bucket
	validate *validator.Validate
}

// Handler is the admin certificates handler.
var Handler = Service{}

// Init initializes the admin certificates handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, bucket *storage.Bucket, onChange func()) error {
	s.bucket = bucket
	s.validate = validator.New()

	s.pages = crud.New(crud.Resource[models.Certificate]{
		Path:         Path,
		Singular:     "Certificate",
		Plural:       "Certificates",
		NavPage:      "certificates",
		TemplateList: "admin/certificates",
		TemplateForm: "admin/certificate_form",
		Order:        "issue_date DESC",
		ParseForm:    s.parseForm,
		Apply:        apply,
	})
	s.pages.Init(app, cfg, db, onChange)

	return nil
}

func (s *Service) parseForm(c *fiber.Ctx) (models.Certificate, error) {
	var in struct {
		Title               string `form:"certificate_title"    validate:"required,max=200"`
		IssuingOrganization string `form:"issuing_organization" validate:"max=200"`
		IssueDate           string `form:"issue_date"           validate:"max=50"`
		CredentialURL       string `form:"credential_url"       validate:"omitempty,url"`
	}

	if err := c.BodyParser(&in); err != nil {
		return models.Certificate{}, fmt.Errorf("%w: invalid form data", crud.ErrValidation)
	}

	if err := s.validate.Struct(&in); err != nil {
		return models.Certificate{}, fmt.Errorf("%w: title is required and the credential link must be a valid URL", crud.ErrValidation)
	}

	imageURL, err := crud.FormImage(c, s.bucket, "image")
	if err != nil {
		return models.Certificate{}, err
	}

	return models.Certificate{
		Title:               in.Title,
		IssuingOrganization: in.IssuingOrganization,
		IssueDate:           in.IssueDate,
		CredentialURL:       in.CredentialURL,
		ImageURL:            imageURL,
	}, nil
}

func apply(src models.Certificate, dst *models.Certificate) {
	dst.Title = src.Title
	dst.IssuingOrganization = src.IssuingOrganization
	dst.IssueDate = src.IssueDate
	dst.CredentialURL = src.CredentialURL

	if src.ImageURL != "" {
		dst.ImageURL = src.ImageURL
	}
}
