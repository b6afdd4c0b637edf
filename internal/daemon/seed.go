package daemon

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gbunao/portfolio-cms/internal/auth"
	"github.com/gbunao/portfolio-cms/internal/config"
	"github.com/gbunao/portfolio-cms/internal/db/models"
	"github.com/gbunao/portfolio-cms/internal/uniuri"
)

const generatedPasswordLen = 20

func seed(cfg *config.Config, db *gorm.DB) {
	seedAdminUser(cfg, db)
	seedProfile(db)
}

// seedAdminUser creates the admin account on first start. Without a
// configured password a random one is generated and logged once.
func seedAdminUser(cfg *config.Config, db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)

	if count > 0 {
		return
	}

	username := cfg.Webserver.AdminUser
	if username == "" {
		username = "admin"
	}

	password := cfg.Webserver.AdminPassword
	if password == "" {
		password = uniuri.NewLen(generatedPasswordLen)
		log.Info().Msgf("generated admin password for %q: %s", username, password)
	}

	if _, err := auth.NewService(db).CreateUser(username, password); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}
}

// seedProfile makes sure the singleton profile row exists so the
// update_profile action always has its target.
func seedProfile(db *gorm.DB) {
	var count int64
	db.Model(&models.Profile{}).Count(&count)

	if count > 0 {
		return
	}

	profile := &models.Profile{
		ID:          models.ProfileID,
		Name:        "Your Name",
		Title:       "Software Developer",
		Bio:         "Edit this profile from the admin panel.",
		CareerStart: time.Now(),
	}

	if err := db.Create(profile).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed profile")
	}
}
