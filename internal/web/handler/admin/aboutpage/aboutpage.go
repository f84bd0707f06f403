// Package aboutpage manages the three about-page collections: the image
// carousel, the core values and the journey timeline.
package aboutpage

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

const (
	// CarouselPath is the management route for carousel images.
	CarouselPath = handler.AdminRootPath + "/about/carousel"

	// ValuesPath is the management route for core values.
	ValuesPath = handler.AdminRootPath + "/about/values"

	// JourneyPath is the management route for journey entries.
	JourneyPath = handler.AdminRootPath + "/about/journey"
)

// Service is the admin about-page handler service.
type Service struct {
	handler.Service
	carousel *crud.Pages[models.CarouselImage]
	values   *crud.Pages[models.CoreValue]
	journey  *crud.Pages[models.JourneyEntry]
	bucket   *storage.Bucket
	validate *validator.Validate
}

// Handler is the admin about-page handler.
var Handler = Service{}

// Init initializes the admin about-page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, bucket *storage.Bucket, onChange func()) error {
	s.bucket = bucket
	s.validate = validator.New()

	s.carousel = crud.New(crud.Resource[models.CarouselImage]{
		Path:         CarouselPath,
		Singular:     "Carousel Image",
		Plural:       "Carousel Images",
		NavPage:      "about",
		TemplateList: "admin/about_carousel",
		TemplateForm: "admin/about_carousel_form",
		Order:        "id",
		ParseForm:    s.parseCarousel,
		Apply:        applyCarousel,
	})
	s.carousel.Init(app, cfg, db, onChange)

	s.values = crud.New(crud.Resource[models.CoreValue]{
		Path:         ValuesPath,
		Singular:     "Core Value",
		Plural:       "Core Values",
		NavPage:      "about",
		TemplateList: "admin/about_values",
		TemplateForm: "admin/about_value_form",
		Order:        "id",
		ParseForm:    s.parseValue,
		Apply:        applyValue,
	})
	s.values.Init(app, cfg, db, onChange)

	s.journey = crud.New(crud.Resource[models.JourneyEntry]{
		Path:         JourneyPath,
		Singular:     "Journey Entry",
		Plural:       "Journey Entries",
		NavPage:      "about",
		TemplateList: "admin/about_journey",
		TemplateForm: "admin/about_journey_form",
		Order:        "id",
		ParseForm:    s.parseJourney,
		Apply:        applyJourney,
	})
	s.journey.Init(app, cfg, db, onChange)

	return nil
}

// parseCarousel requires a file on create; updates without a new upload keep
// the stored image via applyCarousel.
func (s *Service) parseCarousel(c *fiber.Ctx) (models.CarouselImage, error) {
	imageURL, err := crud.FormImage(c, s.bucket, "image")
	if err != nil {
		return models.CarouselImage{}, err
	}

	if imageURL == "" && c.FormValue("existing_image") == "" {
		return models.CarouselImage{}, fmt.Errorf("%w: an image file is required", crud.ErrValidation)
	}

	return models.CarouselImage{ImageURL: imageURL}, nil
}

func applyCarousel(src models.CarouselImage, dst *models.CarouselImage) {
	if src.ImageURL != "" {
		dst.ImageURL = src.ImageURL
	}
}

func (s *Service) parseValue(c *fiber.Ctx) (models.CoreValue, error) {
	var in struct {
		Title       string `form:"title"              validate:"required,max=200"`
		Description string `form:"values_description" validate:"max=2000"`
	}

	if err := c.BodyParser(&in); err != nil {
		return models.CoreValue{}, fmt.Errorf("%w: invalid form data", crud.ErrValidation)
	}

	if err := s.validate.Struct(&in); err != nil {
		return models.CoreValue{}, fmt.Errorf("%w: title is required", crud.ErrValidation)
	}

	return models.CoreValue{Title: in.Title, Description: in.Description}, nil
}

func applyValue(src models.CoreValue, dst *models.CoreValue) {
	dst.Title = src.Title
	dst.Description = src.Description
}

func (s *Service) parseJourney(c *fiber.Ctx) (models.JourneyEntry, error) {
	var in struct {
		Period      string `form:"experience_time"        validate:"required,max=100"`
		Description string `form:"experience_description" validate:"max=2000"`
	}

	if err := c.BodyParser(&in); err != nil {
		return models.JourneyEntry{}, fmt.Errorf("%w: invalid form data", crud.ErrValidation)
	}

	if err := s.validate.Struct(&in); err != nil {
		return models.JourneyEntry{}, fmt.Errorf("%w: the time period is required", crud.ErrValidation)
	}

	return models.JourneyEntry{Period: in.Period, Description: in.Description}, nil
}

func applyJourney(src models.JourneyEntry, dst *models.JourneyEntry) {
	dst.Period = src.Period
	dst.Description = src.Description
}
