package config

import (
	"time"

	"github.com/gofolio/gofolio/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Admin     Admin
	Storage   Storage
	Mail      Mail
}

// Webserver implement webserver settings.
type Webserver struct {
	CacheEnabled        bool    // true = enable cache, false = disable cache
	CleanPath           bool    // use clean path middleware to allow multi slash requests
	DisableRecover      bool    // disable recover middleware
	Domain              string  // domain name for the webserver
	Port                int     // listening port for the webserver
	ShutDownTime        int     // wait time for shutdown
	URL                 string  // base url for the webserver
	CookieEncryptionKey string  // encryption key for cookies
	Session             Session // session settings
}

// Admin holds the single authorized admin account.
// UserID is the only identity allowed past login; any other authenticated
// user has its freshly created session deleted again.
type Admin struct {
	UserID   uint64
	Email    string
	Password string // initial password, used only when seeding an empty database
}

// Storage holds the local file storage settings.
type Storage struct {
	Path    string // directory holding bucket subdirectories
	Bucket  string // bucket identifier used in public view URLs
	Project string // project identifier echoed in public view URLs
}

// Mail holds the EmailJS identifiers for the contact form.
type Mail struct {
	Endpoint   string // API endpoint, default https://api.emailjs.com
	ServiceID  string
	TemplateID string
	PublicKey  string
	ToEmail    string // recipient of contact form submissions
}
