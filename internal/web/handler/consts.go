package handler

const (
	// BaseLayout is the layout for public pages.
	BaseLayout = "layouts/base"

	// AdminLayout is the layout for admin pages.
	AdminLayout = "layouts/admin"

	// RootPath is the root path the route group.
	RootPath = "/"

	// AdminRootPath is the base path for the admin area.
	AdminRootPath = "/admin"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
