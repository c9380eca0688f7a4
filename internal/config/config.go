package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"SeatShuffler/internal/board"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// PathEnv names the environment variable holding the optional YAML config path.
const PathEnv = "SEATSHUFFLER_CONFIG"

var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything the server and the CLI need at startup.
type Config struct {
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`

	// JWTKey signs session tokens. When empty a random key is generated and
	// tokens do not survive a restart.
	JWTKey   string        `yaml:"jwt_key"`
	TokenTTL time.Duration `yaml:"token_ttl"`

	SessionTTL    time.Duration `yaml:"session_ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
	SwapCue       time.Duration `yaml:"swap_cue"`
	MaxSessions   int           `yaml:"max_sessions"`

	// Gesture endpoints are rate limited per session, or per client IP
	// when no session claims are present.
	GestureRate  float64 `yaml:"gesture_rate"`
	GestureBurst int     `yaml:"gesture_burst"`

	LogLevel string         `yaml:"log_level"`
	Geometry board.Geometry `yaml:"geometry"`

	// GeneratedKey is set when JWTKey was not configured.
	GeneratedKey bool `yaml:"-"`
}

// Default returns a config that runs locally without any setup.
func Default() *Config {
	return &Config{
		Port:          "8080",
		CORSOrigins:   []string{"http://localhost:5173"},
		TokenTTL:      12 * time.Hour,
		SessionTTL:    2 * time.Hour,
		SweepInterval: time.Minute,
		SwapCue:       300 * time.Millisecond,
		MaxSessions:   500,
		GestureRate:   60,
		GestureBurst:  120,
		LogLevel:      "info",
		Geometry:      board.DefaultGeometry(),
	}
}

// Load builds the config from defaults, the YAML file at path (or the one
// named by SEATSHUFFLER_CONFIG) and finally the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if cfg.JWTKey == "" {
		cfg.JWTKey = uuid.NewString() + uuid.NewString()
		cfg.GeneratedKey = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("JWT_KEY"); v != "" {
		c.JWTKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}

	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{"TOKEN_TTL", &c.TokenTTL},
		{"SESSION_TTL", &c.SessionTTL},
		{"SWEEP_INTERVAL", &c.SweepInterval},
		{"SWAP_CUE", &c.SwapCue},
	}
	for _, d := range durations {
		v := os.Getenv(d.name)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, d.name, err)
		}
		*d.dst = parsed
	}

	if v := os.Getenv("GESTURE_RATE"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: GESTURE_RATE: %v", ErrInvalidConfig, err)
		}
		c.GestureRate = parsed
	}
	if v := os.Getenv("GESTURE_BURST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: GESTURE_BURST: %v", ErrInvalidConfig, err)
		}
		c.GestureBurst = parsed
	}
	return nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Port == "":
		return fmt.Errorf("%w: port is empty", ErrInvalidConfig)
	case c.TokenTTL <= 0:
		return fmt.Errorf("%w: token_ttl must be positive", ErrInvalidConfig)
	case c.SessionTTL <= 0:
		return fmt.Errorf("%w: session_ttl must be positive", ErrInvalidConfig)
	case c.SweepInterval <= 0:
		return fmt.Errorf("%w: sweep_interval must be positive", ErrInvalidConfig)
	case c.SwapCue <= 0:
		return fmt.Errorf("%w: swap_cue must be positive", ErrInvalidConfig)
	case c.MaxSessions < 0:
		return fmt.Errorf("%w: max_sessions must not be negative", ErrInvalidConfig)
	case c.GestureRate <= 0 || c.GestureBurst <= 0:
		return fmt.Errorf("%w: gesture rate and burst must be positive", ErrInvalidConfig)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
