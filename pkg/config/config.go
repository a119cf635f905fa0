// Package config loads the client and server settings from CONNECTFOUR_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

const EnvPrefix = "CONNECTFOUR_"

const (
	TransportHTTP      = "http"
	TransportWebSocket = "ws"
)

// ClientConfig configures the graphical and terminal clients.
type ClientConfig struct {
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:5000" validate:"required,url"`
	Transport string `env:"TRANSPORT" envDefault:"http" validate:"oneof=http ws"`
	// MovePause is the pause between the human and the automated cell.
	MovePause time.Duration `env:"MOVE_PAUSE" envDefault:"300ms" validate:"gte=0"`
	// RequestTimeout bounds each service request. Zero disables it.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"0s" validate:"gte=0"`
	// Animate selects the animated drop strategy over instant updates.
	Animate  bool   `env:"ANIMATE" envDefault:"true"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=error warn info debug trace"`
}

// ServerConfig configures the reference game service.
type ServerConfig struct {
	Port int `env:"PORT" envDefault:"5000" validate:"min=1,max=65535"`
	// Mode is "computer" for games against the automated opponent or "human" for two local players.
	Mode      string        `env:"MODE" envDefault:"computer" validate:"oneof=computer human"`
	Opponent  string        `env:"OPPONENT" envDefault:"random" validate:"oneof=random first"`
	Seed      int64         `env:"SEED" envDefault:"0"`
	ThinkTime time.Duration `env:"THINK_TIME" envDefault:"0s" validate:"gte=0"`
	// RateLimit is the per-client request rate in requests per second. Zero disables it.
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"0" validate:"gte=0"`
	RateBurst int     `env:"RATE_BURST" envDefault:"20" validate:"gte=0"`
	CertFile  string  `env:"CERT_FILE" validate:"required_with=KeyFile"`
	KeyFile   string  `env:"KEY_FILE" validate:"required_with=CertFile"`
	LogLevel  string  `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=error warn info debug trace"`
}

// LoadClient reads the client configuration from the process environment.
func LoadClient() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := load(cfg, nil); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadServer reads the server configuration from the process environment.
func LoadServer() (*ServerConfig, error) {
	cfg := &ServerConfig{}
	if err := load(cfg, nil); err != nil {
		return nil, err
	}
	return cfg, nil
}

// load parses target from environ, or from the process environment when environ is nil.
func load(target any, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("failed to parse environment: %v", err)
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(target); err != nil {
		return fmt.Errorf("invalid configuration: %v", err)
	}
	return nil
}
