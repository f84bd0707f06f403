package crud

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/models"
)

type noOpViews struct{}

func (noOpViews) Load() error { return nil }

func (noOpViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	if m, ok := data.(fiber.Map); ok {
		if v, exists := m["Error"]; exists && v != nil {
			_, _ = io.WriteString(w, v.(string))
			return nil
		}
	}

	_, _ = io.WriteString(w, name)

	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CoreValue{}))

	return db
}

// testResource manages core values without uploads, the simplest shape the
// editor serves.
func testResource() Resource[models.CoreValue] {
	return Resource[models.CoreValue]{
		Path:         "/admin/values",
		Singular:     "Core Value",
		Plural:       "Core Values",
		NavPage:      "about",
		TemplateList: "admin/about_values",
		TemplateForm: "admin/about_value_form",
		Order:        "id",
		ParseForm: func(c *fiber.Ctx) (models.CoreValue, error) {
			title := c.FormValue("title")
			if title == "" {
				return models.CoreValue{}, fmt.Errorf("%w: title is required", ErrValidation)
			}

			return models.CoreValue{Title: title, Description: c.FormValue("values_description")}, nil
		},
		Apply: func(src models.CoreValue, dst *models.CoreValue) {
			dst.Title = src.Title
			dst.Description = src.Description
		},
	}
}

func setup(t *testing.T) (*fiber.App, *gorm.DB, *int) {
	t.Helper()

	db := newTestDB(t)
	app := fiber.New(fiber.Config{Views: noOpViews{}})
	cfg := &config.Config{Title: "Test"}

	changed := 0
	pages := New(testResource())
	pages.Init(app, cfg, db, func() { changed++ })

	return app, db, &changed
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func TestCreate(t *testing.T) {
	app, db, changed := setup(t)

	resp := postForm(t, app, "/admin/values", url.Values{
		"title":              {"Curiosity"},
		"values_description": {"Always learning"},
	})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/values", resp.Header.Get("Location"))

	var rec models.CoreValue
	require.NoError(t, db.First(&rec).Error)
	assert.Equal(t, "Curiosity", rec.Title)
	assert.Equal(t, 1, *changed)
}

func TestCreateValidationError(t *testing.T) {
	app, db, changed := setup(t)

	resp := postForm(t, app, "/admin/values", url.Values{"values_description": {"no title"}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	db.Model(&models.CoreValue{}).Count(&count)
	assert.Zero(t, count)
	assert.Zero(t, *changed)
}

func TestUpdatePreservesIdentity(t *testing.T) {
	app, db, changed := setup(t)

	rec := models.CoreValue{Title: "Old", Description: "old text"}
	require.NoError(t, db.Create(&rec).Error)

	resp := postForm(t, app, fmt.Sprintf("/admin/values/%d", rec.ID), url.Values{
		"title": {"New"},
	})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	var got models.CoreValue
	require.NoError(t, db.First(&got, rec.ID).Error)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, 1, *changed)

	var count int64
	db.Model(&models.CoreValue{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpdateUnknownIDRedirects(t *testing.T) {
	app, _, changed := setup(t)

	resp := postForm(t, app, "/admin/values/999", url.Values{"title": {"X"}})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Zero(t, *changed)
}

func TestDelete(t *testing.T) {
	app, db, changed := setup(t)

	rec := models.CoreValue{Title: "Gone"}
	require.NoError(t, db.Create(&rec).Error)

	resp := postForm(t, app, fmt.Sprintf("/admin/values/%d/delete", rec.ID), url.Values{})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	var count int64
	db.Model(&models.CoreValue{}).Count(&count)
	assert.Zero(t, count)
	assert.Equal(t, 1, *changed)
}

// recordingViews keeps the data of the last render so tests can inspect
// what the form template would receive.
type recordingViews struct {
	last fiber.Map
}

func (*recordingViews) Load() error { return nil }

func (r *recordingViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	if m, ok := data.(fiber.Map); ok {
		r.last = m
	}

	_, _ = io.WriteString(w, name)

	return nil
}

func TestUpdateValidationErrorKeepsEditingID(t *testing.T) {
	db := newTestDB(t)
	views := &recordingViews{}
	app := fiber.New(fiber.Config{Views: views})
	cfg := &config.Config{Title: "Test"}

	changed := 0
	pages := New(testResource())
	pages.Init(app, cfg, db, func() { changed++ })

	rec := models.CoreValue{Title: "Old"}
	require.NoError(t, db.Create(&rec).Error)

	// Missing title fails validation; the edit form must come back still
	// targeting the update route, not the create route.
	resp := postForm(t, app, fmt.Sprintf("/admin/values/%d", rec.ID), url.Values{
		"values_description": {"text only"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	require.NotNil(t, views.last)
	assert.Equal(t, false, views.last["IsCreate"])
	assert.EqualValues(t, rec.ID, views.last["EditingID"])
	assert.Zero(t, changed)

	var count int64
	db.Model(&models.CoreValue{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestListRendersTemplate(t *testing.T) {
	app, db, _ := setup(t)

	require.NoError(t, db.Create(&models.CoreValue{Title: "One"}).Error)

	req, err := http.NewRequest(http.MethodGet, "/admin/values", nil)
	require.NoError(t, err)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "admin/about_values", string(body))
}
