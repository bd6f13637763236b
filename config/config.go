package config

import (
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all process configuration, parsed once at startup.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	MongoURI string `env:"MONGODB_URI"`
	MongoDB  string `env:"MONGODB_DB" envDefault:"inquiries"`

	// Comma-separated origin allow-list; empty allows all origins.
	CORSOrigin string `env:"CORS_ORIGIN"`

	SMTPHost   string `env:"SMTP_HOST"`
	SMTPPort   int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPSecure bool   `env:"SMTP_SECURE"`
	SMTPUser   string `env:"SMTP_USER"`
	SMTPPass   string `env:"SMTP_PASS"`
	ToEmail    string `env:"TO_EMAIL"`
	FromEmail  string `env:"FROM_EMAIL"`

	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`
	StaticDir string `env:"STATIC_DIR" envDefault:"public"`
}

// Load reads .env (if present) and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AllowedOrigins splits the CORS allow-list. Nil means allow all.
func (c *Config) AllowedOrigins() []string {
	if strings.TrimSpace(c.CORSOrigin) == "" {
		return nil
	}
	var out []string
	for _, o := range strings.Split(c.CORSOrigin, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// MailConfigured reports whether every SMTP credential needed to send is set.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != "" &&
		c.ToEmail != "" && c.FromEmail != ""
}
