// Package web assembles the fiber application: pages, static assets and
// the JSON API handlers.
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
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gbunao/portfolio-cms/internal/config"
	fiberlogger "github.com/gbunao/portfolio-cms/internal/logger/adapter/fiber"
	"github.com/gbunao/portfolio-cms/internal/mailer"
	contenthandler "github.com/gbunao/portfolio-cms/internal/web/handler/content"
	"github.com/gbunao/portfolio-cms/internal/web/handler/login"
	"github.com/gbunao/portfolio-cms/internal/web/handler/logout"
	"github.com/gbunao/portfolio-cms/internal/web/handler/manage"
	"github.com/gbunao/portfolio-cms/internal/web/handler/sessioncheck"
	"github.com/gbunao/portfolio-cms/internal/web/session"
)

// CheckAlivePath is probed by reverse proxies to decide whether to route
// traffic here; it flips to 503 during graceful shutdown.
const CheckAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	sessions     *session.Store
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

	// Wait interrupt or shutdown request
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
func New(cfg *config.Config, db *gorm.DB, sessions *session.Store) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	if sessions == nil {
		panic("sessions cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	// access logging
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// the front-end is served from the same origin; the explicit origin
	// keeps cross-origin dev setups working without opening up wildcard
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Webserver.CORSOrigin,
		AllowMethods:     "GET,POST",
		AllowCredentials: true,
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

	// init web service
	service := &Service{
		cfg:      cfg,
		App:      app,
		db:       db,
		sessions: sessions,
	}

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendStatus(fiber.StatusOK)
	})

	mail := mailer.New(cfg.Mail)

	// init handlers (they register their own routes)
	if err := contenthandler.Handler.Init(app, cfg, db, mail); err != nil {
		log.Fatal().Err(err).Msg("failed to init content handler")
	}

	if err := login.Handler.Init(app, cfg, db, sessions); err != nil {
		log.Fatal().Err(err).Msg("failed to init login handler")
	}

	if err := logout.Handler.Init(app, cfg, sessions); err != nil {
		log.Fatal().Err(err).Msg("failed to init logout handler")
	}

	if err := sessioncheck.Handler.Init(app, sessions); err != nil {
		log.Fatal().Err(err).Msg("failed to init sessioncheck handler")
	}

	if err := manage.Handler.Init(app, cfg, db, sessions); err != nil {
		log.Fatal().Err(err).Msg("failed to init manage handler")
	}

	// pages
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{"Title": cfg.Title})
	})
	app.Get("/login", func(c *fiber.Ctx) error {
		return c.Render("login", fiber.Map{"Title": cfg.Title})
	})
	app.Get("/admin", func(c *fiber.Ctx) error {
		return c.Render("admin", fiber.Map{"Title": cfg.Title})
	})

	return service
}
