package config

import (
	"time"

	"github.com/gbunao/portfolio-cms/internal/logger"
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
	Mail      Mail
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	AdminUser     string  // username for the seeded admin account
	AdminPassword string  // initial password for the seeded admin account (generated if empty)
	CORSOrigin    string  // allowed origin for cross-origin API calls, defaults to URL
	Domain        string  // domain name for the webserver
	Port          int     // listening port for the webserver
	ShutDownTime  int     // wait time for shutdown
	URL           string  // base url for the webserver
	Session       Session // session settings
}

// Mail holds the SMTP settings for contact form notifications.
type Mail struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}
