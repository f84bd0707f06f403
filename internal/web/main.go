package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/content"
	"github.com/gofolio/gofolio/internal/db/models"
	fiberlogger "github.com/gofolio/gofolio/internal/logger/adapter/fiber"
	"github.com/gofolio/gofolio/internal/mailer"
	"github.com/gofolio/gofolio/internal/storage"
	"github.com/gofolio/gofolio/internal/web/handler"
	"github.com/gofolio/gofolio/internal/web/handler/about"
	adminaboutpage "github.com/gofolio/gofolio/internal/web/handler/admin/aboutpage"
	adminblogs "github.com/gofolio/gofolio/internal/web/handler/admin/blogs"
	admincertificates "github.com/gofolio/gofolio/internal/web/handler/admin/certificates"
	admincontactinfo "github.com/gofolio/gofolio/internal/web/handler/admin/contactinfo"
	"github.com/gofolio/gofolio/internal/web/handler/admin/dashboard"
	adminprofile "github.com/gofolio/gofolio/internal/web/handler/admin/profile"
	adminprojects "github.com/gofolio/gofolio/internal/web/handler/admin/projects"
	adminsettings "github.com/gofolio/gofolio/internal/web/handler/admin/settings"
	adminskills "github.com/gofolio/gofolio/internal/web/handler/admin/skills"
	"github.com/gofolio/gofolio/internal/web/handler/blogs"
	"github.com/gofolio/gofolio/internal/web/handler/certificates"
	"github.com/gofolio/gofolio/internal/web/handler/contact"
	"github.com/gofolio/gofolio/internal/web/handler/feed"
	"github.com/gofolio/gofolio/internal/web/handler/files"
	"github.com/gofolio/gofolio/internal/web/handler/home"
	"github.com/gofolio/gofolio/internal/web/handler/login"
	"github.com/gofolio/gofolio/internal/web/handler/logout"
	"github.com/gofolio/gofolio/internal/web/handler/projects"
	"github.com/gofolio/gofolio/internal/web/handler/resume"
	"github.com/gofolio/gofolio/internal/web/handler/skills"
	"github.com/gofolio/gofolio/internal/web/limiter"
	"github.com/gofolio/gofolio/internal/web/navigation"
)

const checkAlivePath = "/checkalive"

// login attempts per client IP within the window.
const (
	loginAttempts     = 5
	loginWindow       = 15 * time.Minute
	contactSubmission = 5
	contactWindow     = time.Hour
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	store        *content.Store
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	s.alive.Store(true)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB, store *content.Store, bucket *storage.Bucket, mail *mailer.Client) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	addTemplateFuncs(templateEngine)

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "Gofolio",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	// access logging
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: checkAlivePath,
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
			},
		),
	)

	app.Use(AuthMiddleware)

	service := &Service{
		cfg:   cfg,
		App:   app,
		db:    db,
		store: store,
	}

	app.Get(checkAlivePath, service.checkAlive)

	// reload pushes the database state into the content snapshot after an
	// admin mutation
	reload := func() {
		if err := store.Reload(db); err != nil {
			log.Error().Err(err).Msg("content snapshot reload failed")
		}
	}

	loginLim := limiter.New(loginAttempts, loginWindow)
	contactLim := limiter.New(contactSubmission, contactWindow)

	initHandlers(app, cfg, db, store, bucket, mail, reload, loginLim, contactLim)

	// everything unmatched renders the public 404 page
	app.Use(service.notFound)

	return service
}

func initHandlers(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	store *content.Store,
	bucket *storage.Bucket,
	mail *mailer.Client,
	reload func(),
	loginLim, contactLim *limiter.Limiter,
) {
	for name, err := range map[string]error{
		"home":         home.Handler.Init(app, cfg, db),
		"about":        about.Handler.Init(app, cfg, db),
		"skills":       skills.Handler.Init(app, cfg, db),
		"projects":     projects.Handler.Init(app, cfg, db),
		"certificates": certificates.Handler.Init(app, cfg, db),
		"blogs":        blogs.Handler.Init(app, cfg, db),
		"resume":       resume.Handler.Init(app, cfg, db),
		"contact":      contact.Handler.Init(app, cfg, db, mail, contactLim),
		"feed":         feed.Handler.Init(app, cfg, db),
		"files":        files.Handler.Init(app, cfg, bucket),

		"login":  login.Handler.Init(app, cfg, db, store, loginLim),
		"logout": logout.Handler.Init(app, cfg, store),

		"admin/dashboard":    dashboard.Handler.Init(app, cfg, store),
		"admin/profile":      adminprofile.Handler.Init(app, cfg, db, store, bucket),
		"admin/contact":      admincontactinfo.Handler.Init(app, cfg, db, store),
		"admin/about":        adminaboutpage.Handler.Init(app, cfg, db, bucket, reload),
		"admin/skills":       adminskills.Handler.Init(app, cfg, db, bucket, reload),
		"admin/projects":     adminprojects.Handler.Init(app, cfg, db, bucket, reload),
		"admin/certificates": admincertificates.Handler.Init(app, cfg, db, bucket, reload),
		"admin/blogs":        adminblogs.Handler.Init(app, cfg, db, bucket, reload),
		"admin/settings":     adminsettings.Handler.Init(app, cfg, db, bucket, reload),
	} {
		if err != nil {
			log.Fatal().Err(err).Str("handler", name).Msg("handler init failed")
		}
	}
}

func addTemplateFuncs(engine *html.Engine) {
	engine.AddFunc("iterate", func(count int) []int {
		result := make([]int, count)
		for i := range result {
			result[i] = i
		}

		return result
	})
	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	engine.AddFunc("sub", func(a, b int) int {
		return a - b
	})
	engine.AddFunc("splitTags", models.SplitTags)
	engine.AddFunc("year", func() int {
		return time.Now().Year()
	})
}

func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (s *Service) notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Navigation": navigation.NewContext("Not Found", "public", ""),
		"Title":      s.cfg.Title,
	}, handler.BaseLayout)
}
