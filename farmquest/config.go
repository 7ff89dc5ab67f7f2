package farmquest

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

type Config struct {
	Log     LogConfig     `toml:"log"`
	Web     WebConfig     `toml:"web"`
	Session SessionConfig `toml:"session"`
	Storage StorageConfig `toml:"storage"`
	Spaces  SpacesConfig  `toml:"spaces"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type WebConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	AllowOrigins string `toml:"allow_origins"`
}

type SessionConfig struct {
	Secret          string `toml:"secret"`
	TTLHours        int    `toml:"ttl_hours"`
	LoginDelayMS    int    `toml:"login_delay_ms"`
	RegisterDelayMS int    `toml:"register_delay_ms"`
}

type StorageConfig struct {
	DataDir string `toml:"data_dir"`
}

// SpacesConfig points at an S3-compatible bucket for quest verification
// photos. Leave Key empty to keep photo upload disabled.
type SpacesConfig struct {
	Key       string `toml:"key"`
	Secret    string `toml:"secret"`
	Region    string `toml:"region"`
	Bucket    string `toml:"bucket"`
	PhotoRoot string `toml:"photoroot"`
}

func (c *Config) applyDefaults() {
	if c.Web.Host == "" {
		c.Web.Host = "0.0.0.0"
	}
	if c.Web.Port == 0 {
		c.Web.Port = 8080
	}
	if c.Web.AllowOrigins == "" {
		c.Web.AllowOrigins = "http://localhost:3000,http://localhost:5173"
	}
	if c.Session.TTLHours == 0 {
		c.Session.TTLHours = 24
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = "data"
	}
}
