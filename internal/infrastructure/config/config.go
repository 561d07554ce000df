package config

import (
	"context"
	"net"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Host     string `env:"HOST,      default=0.0.0.0"`
	Port     string `env:"PORT,      default=8002"`
	Debug    bool   `env:"DEBUG,     default=false"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	DataDir  string `env:"DATA_DIR,  default=data"`

	// ResetTokenSecret signs password-reset tokens. The default is fine
	// here: the server only ever hands out mock data.
	ResetTokenSecret string        `env:"RESET_TOKEN_SECRET, default=corpmock-dev-secret"`
	ResetTokenTTL    time.Duration `env:"RESET_TOKEN_TTL,    default=1h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
