// Package crud implements the shared admin entity editor. The admin area
// manages eight near-identical content sections; instead of eight copies of
// the same list/form/create/update/delete cycle, each section declares a
// Resource (path, templates, form parsing, field application) and crud serves
// the whole cycle for it.
package crud

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/web/handler"
	"github.com/gofolio/gofolio/internal/web/navigation"
)

// ErrValidation wraps a user-facing form validation message.
var ErrValidation = errors.New("validation failed")

// Resource describes one admin-managed entity collection.
type Resource[T any] struct {
	// Path is the management route, e.g. /admin/skills.
	Path string
	// Singular and Plural are the display names.
	Singular string
	Plural   string
	// NavPage is the navigation key marking the active sidebar entry.
	NavPage string
	// TemplateList and TemplateForm are the view templates.
	TemplateList string
	TemplateForm string
	// Order is the SQL order clause for the list view.
	Order string
	// ParseForm builds a record carrying the editable fields from the
	// submitted form, including any uploads. Validation failures are
	// reported by wrapping ErrValidation.
	ParseForm func(c *fiber.Ctx) (T, error)
	// Apply copies the editable fields of src onto dst, leaving identity
	// and timestamps alone. Used on update.
	Apply func(src T, dst *T)
}

// Pages serves the admin pages for one resource.
type Pages[T any] struct {
	cfg      *config.Config
	db       *gorm.DB
	res      Resource[T]
	onChange func()
}

// New creates the Pages for a resource.
func New[T any](res Resource[T]) *Pages[T] {
	return &Pages[T]{res: res}
}

// Init registers the routes. onChange runs after every successful mutation
// so the caller can refresh derived state (the content snapshot).
func (p *Pages[T]) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, onChange func()) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	p.cfg = cfg
	p.db = db
	p.onChange = onChange

	app.Get(p.res.Path, p.List)
	app.Get(p.res.Path+"/new", p.NewForm)
	app.Post(p.res.Path, p.Create)
	app.Get(p.res.Path+"/:id/edit", p.Edit)
	app.Post(p.res.Path+"/:id", p.Update)
	app.Post(p.res.Path+"/:id/delete", p.Delete)
}

func (p *Pages[T]) nav(title string) *navigation.Context {
	return navigation.NewContext(title, "admin", p.res.NavPage).
		AddBreadcrumb("Dashboard", handler.AdminRootPath+"/dashboard", false).
		AddBreadcrumb(p.res.Plural, p.res.Path, true)
}

// List shows all entities of the resource with edit/delete controls.
func (p *Pages[T]) List(c *fiber.Ctx) error {
	var items []T

	tx := p.db.WithContext(c.Context())
	if p.res.Order != "" {
		tx = tx.Order(p.res.Order)
	}

	if err := tx.Find(&items).Error; err != nil {
		log.Error().Err(err).Str("resource", p.res.Plural).Msg("list query failed")

		return c.Status(fiber.StatusInternalServerError).Render(p.res.TemplateList, fiber.Map{
			"Navigation": p.nav(p.res.Plural),
			"Title":      p.cfg.Title,
			"Error":      "Failed to load " + p.res.Plural,
		}, handler.AdminLayout)
	}

	return c.Render(p.res.TemplateList, fiber.Map{
		"Navigation": p.nav(p.res.Plural),
		"Title":      p.cfg.Title,
		"Items":      items,
		"BasePath":   p.res.Path,
	}, handler.AdminLayout)
}

// NewForm shows an empty creation form.
func (p *Pages[T]) NewForm(c *fiber.Ctx) error {
	var empty T

	return c.Render(p.res.TemplateForm, fiber.Map{
		"Navigation": p.nav("New " + p.res.Singular),
		"Title":      p.cfg.Title,
		"Item":       empty,
		"IsCreate":   true,
		"BasePath":   p.res.Path,
	}, handler.AdminLayout)
}

// Create inserts a new entity from the submitted form.
func (p *Pages[T]) Create(c *fiber.Ctx) error {
	rec, err := p.res.ParseForm(c)
	if err != nil {
		return p.renderFormError(c, rec, 0, err)
	}

	if err := p.db.WithContext(c.Context()).Create(&rec).Error; err != nil {
		log.Error().Err(err).Str("resource", p.res.Singular).Msg("create failed")

		return p.renderFormError(c, rec, 0, errors.New("failed to create "+p.res.Singular))
	}

	p.changed()

	return c.Redirect(p.res.Path)
}

// Edit shows the form seeded from the selected entity.
func (p *Pages[T]) Edit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return c.Redirect(p.res.Path)
	}

	var rec T
	if err := p.db.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Redirect(p.res.Path)
		}

		log.Error().Err(err).Str("resource", p.res.Singular).Msg("load for edit failed")

		return c.Redirect(p.res.Path)
	}

	return c.Render(p.res.TemplateForm, fiber.Map{
		"Navigation": p.nav("Edit " + p.res.Singular),
		"Title":      p.cfg.Title,
		"Item":       rec,
		"IsCreate":   false,
		"EditingID":  id,
		"BasePath":   p.res.Path,
	}, handler.AdminLayout)
}

// Update overwrites the editable fields of the entity with the submitted
// form and saves it. Last write wins; there is exactly one admin.
func (p *Pages[T]) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return c.Redirect(p.res.Path)
	}

	in, err := p.res.ParseForm(c)
	if err != nil {
		return p.renderFormError(c, in, id, err)
	}

	var rec T
	if err := p.db.WithContext(c.Context()).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Redirect(p.res.Path)
		}

		log.Error().Err(err).Str("resource", p.res.Singular).Msg("load for update failed")

		return c.Redirect(p.res.Path)
	}

	p.res.Apply(in, &rec)

	if err := p.db.WithContext(c.Context()).Save(&rec).Error; err != nil {
		log.Error().Err(err).Str("resource", p.res.Singular).Msg("update failed")

		return p.renderFormError(c, rec, id, errors.New("failed to update "+p.res.Singular))
	}

	p.changed()

	return c.Redirect(p.res.Path)
}

// Delete removes an entity outright. No confirmation step; the destructive
// settings clear-all is the only gated action in the admin area.
func (p *Pages[T]) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return c.Redirect(p.res.Path)
	}

	if err := p.db.WithContext(c.Context()).Delete(new(T), id).Error; err != nil {
		log.Error().Err(err).Str("resource", p.res.Singular).Msg("delete failed")
	} else {
		p.changed()
	}

	return c.Redirect(p.res.Path)
}

func (p *Pages[T]) changed() {
	if p.onChange != nil {
		p.onChange()
	}
}

// renderFormError re-renders the form with the submitted values and the
// error message. editingID is 0 on the create path; on the update path it
// must be carried through so the form still posts to the update route.
func (p *Pages[T]) renderFormError(c *fiber.Ctx, rec T, editingID uint64, err error) error {
	status := fiber.StatusBadRequest
	if !errors.Is(err, ErrValidation) {
		status = fiber.StatusInternalServerError
	}

	isCreate := editingID == 0

	title := "New " + p.res.Singular
	if !isCreate {
		title = "Edit " + p.res.Singular
	}

	data := fiber.Map{
		"Navigation": p.nav(title),
		"Title":      p.cfg.Title,
		"Item":       rec,
		"IsCreate":   isCreate,
		"BasePath":   p.res.Path,
		"Error":      err.Error(),
	}
	if !isCreate {
		data["EditingID"] = editingID
	}

	return c.Status(status).Render(p.res.TemplateForm, data, handler.AdminLayout)
}
