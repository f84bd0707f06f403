// Package daemon assembles the application: database, session storage, file
// bucket, outbound mail and the web service.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	gofiberstorage "github.com/gofiber/storage"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionsqlite "github.com/gofiber/storage/sqlite3/v2"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/content"
	"github.com/gofolio/gofolio/internal/db/dsn"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/mailer"
	"github.com/gofolio/gofolio/internal/storage"
	"github.com/gofolio/gofolio/internal/web"
	"github.com/gofolio/gofolio/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db := openDatabase(cfg)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Setting{},
		&models.Profile{},
		&models.Skill{},
		&models.Project{},
		&models.Certificate{},
		&models.BlogPost{},
		&models.CarouselImage{},
		&models.CoreValue{},
		&models.JourneyEntry{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	seed(cfg, db)

	session.Init(newSessionStorage(cfg))

	store := content.NewStore()
	if err := store.Reload(db); err != nil {
		log.Fatal().Err(err).Msg("failed to load content snapshot")
	}

	bucket := storage.New(cfg.Storage)
	mail := mailer.New(cfg.Mail)

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db, store, bucket, mail),
	}
}

func openDatabase(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case "sqlite":
		dialector = sqlite.Open(cfg.DB.SQLitePath)
	case "mysql", "":
		dialector = gormmysql.Open(dsn.Create(cfg))
	default:
		log.Fatal().Str("engine", cfg.DB.GormEngine).Msg("unknown database engine")
		return nil
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
		return nil
	}

	return db
}

// newSessionStorage picks the session backend matching the database engine,
// so a single-binary sqlite deployment needs no extra service.
func newSessionStorage(cfg *config.Config) gofiberstorage.Storage {
	if cfg.DB.GormEngine == "sqlite" {
		return sessionsqlite.New(sessionsqlite.Config{
			Database: cfg.DB.SQLitePath,
			Table:    "sessions",
		})
	}

	return sessionmysql.New(sessionmysql.Config{
		ConnectionURI: dsn.Create(cfg),
		Table:         "sessions",
	})
}
