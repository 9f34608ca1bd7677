// Package config loads server configuration from the environment, with an
// optional .env file for development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable the server reads at startup.
type Config struct {
	Env  string `env:"CASA_ENV" envDefault:"development"`
	Port string `env:"PORT" envDefault:"8080"`

	DBPath string `env:"CASA_DB_PATH" envDefault:"casaromana.db"`

	// The CSRF secret (CASA_CSRF_KEY) is read by the http adapter itself.

	AdminEmail    string `env:"CASA_ADMIN_EMAIL" envDefault:"admin@casaromana.no"`
	AdminPassword string `env:"CASA_ADMIN_PASSWORD"`

	// Cloudinary credential URL; when empty, images are stored on disk
	// under UploadDir and served from /uploads/.
	CloudinaryURL    string `env:"CLOUDINARY_URL"`
	CloudinaryFolder string `env:"CASA_CLOUDINARY_FOLDER" envDefault:"product-images"`
	UploadDir        string `env:"CASA_UPLOAD_DIR" envDefault:"uploads"`

	// Resend API key; when empty, notifications are logged, not sent.
	ResendAPIKey string `env:"RESEND_API_KEY"`
	EmailFrom    string `env:"CASA_EMAIL_FROM" envDefault:"Casa Română <noreply@casaromana.no>"`
	NotifyTo     string `env:"CASA_NOTIFY_TO"`
}

// Load reads .env (when present) and parses the environment into a Config.
// POST: Returns a fully populated Config or an error
func Load() (Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether the server runs with production hardening.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
