// Package daemon wires the configuration, database, session storage and
// web service into a running process.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/storage"
	"github.com/gofiber/storage/memory"
	sessionmysql "github.com/gofiber/storage/mysql"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/gbunao/portfolio-cms/internal/config"
	"github.com/gbunao/portfolio-cms/internal/db/dsn"
	"github.com/gbunao/portfolio-cms/internal/db/models"
	"github.com/gbunao/portfolio-cms/internal/web"
	"github.com/gbunao/portfolio-cms/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until a shutdown
// signal has drained it.
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

	db, err := gorm.Open(openDialector(cfg), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Skill{},
		&models.Project{},
		&models.Hobby{},
		&models.Message{},
	); err != nil {
		panic("failed to migrate database")
	}

	seed(cfg, db)

	sessions := session.New(sessionStorage(cfg), cfg.Webserver.Session.ExpiryTime)

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db, sessions),
	}
}

// openDialector picks the gorm driver for the configured engine.
// MySQL is the production engine; sqlite covers dev setups.
func openDialector(cfg *config.Config) gorm.Dialector {
	if cfg.DB.GormEngine == "sqlite" {
		path := cfg.DB.Path
		if path == "" {
			path = "portfolio.db"
		}

		return sqlite.Open(path)
	}

	return gormmysql.Open(dsn.Create(cfg))
}

// sessionStorage picks the session backend. Sessions live next to the
// content in MySQL; with the sqlite engine they are held in memory.
func sessionStorage(cfg *config.Config) storage.Storage {
	if cfg.DB.GormEngine == "sqlite" {
		return memory.New()
	}

	return sessionmysql.New(sessionmysql.Config{
		ConnectionURI: dsn.Create(cfg),
		Table:         "sessions",
	})
}
