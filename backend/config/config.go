package config

import (
	"time"

	"github.com/farmquest-india/farmquest/farmquest"
)

// WebAppConfig contains web-specific configuration on top of the core config.
type WebAppConfig struct {
	Config      *farmquest.Config
	Debug       bool
	Environment string
}

// NewWebAppConfig creates a new web app configuration
func NewWebAppConfig(cfg *farmquest.Config, debug bool) *WebAppConfig {
	environment := "production"
	if debug {
		environment = "development"
	}

	return &WebAppConfig{
		Config:      cfg,
		Debug:       debug,
		Environment: environment,
	}
}

// SessionSecret returns the cookie signing secret.
func (w *WebAppConfig) SessionSecret() string {
	return w.Config.Session.Secret
}

// SessionTTL returns the session cookie lifetime.
func (w *WebAppConfig) SessionTTL() time.Duration {
	return time.Duration(w.Config.Session.TTLHours) * time.Hour
}

// IsProduction reports whether secure cookie flags should be set.
func (w *WebAppConfig) IsProduction() bool {
	return w.Environment == "production"
}
