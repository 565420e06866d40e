package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config is the server's environment-driven configuration.
type Config struct {
	Addr      string `envconfig:"ADDR" default:":8080" validate:"required"`
	StaticDir string `envconfig:"STATIC_DIR" default:"./static" validate:"required"`

	// ROSTER_DELAY is the grace period before the roster push to a joiner,
	// giving its connection plumbing time to settle. Zero pushes immediately.
	RosterDelay time.Duration `envconfig:"ROSTER_DELAY" default:"100ms" validate:"min=0"`

	// Websocket sizing and keepalive.
	ReadLimit int64         `envconfig:"READ_LIMIT" default:"65536" validate:"gt=0"`
	WriteWait time.Duration `envconfig:"WRITE_WAIT" default:"10s" validate:"gt=0"`
	PongWait  time.Duration `envconfig:"PONG_WAIT" default:"60s" validate:"gt=0"`

	// ALLOWED_ORIGINS restricts websocket upgrades; empty allows any origin.
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s" validate:"gt=0"`
}

// PingPeriod derives the ping interval from the pong deadline; pings must fire
// before the deadline expires.
func (c Config) PingPeriod() time.Duration {
	return c.PongWait * 9 / 10
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
