package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/db/models"
)

// seed creates the admin account on an empty database. The account id is
// pinned to the configured admin id so the login gate matches from the
// first start.
func seed(cfg *config.Config, db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)

	if count > 0 {
		return
	}

	password := cfg.Admin.Password
	if password == "" {
		password = "changeme"

		log.Warn().Msg("no admin password configured, seeding with default; change it")
	}

	user := models.User{
		ID:       cfg.Admin.UserID,
		Email:    cfg.Admin.Email,
		Password: models.HashPassword(password),
		Active:   true,
	}

	if err := db.Create(&user).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	var profiles int64
	db.Model(&models.Profile{}).Count(&profiles)

	if profiles == 0 {
		if err := db.Create(&models.Profile{Email: cfg.Admin.Email}).Error; err != nil {
			log.Error().Err(err).Msg("failed to seed profile row")
		}
	}

	log.Info().Str("email", user.Email).Msg("seeded admin account")
}
