package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config aggregates the settings of the API server and the terminal client.
type Config struct {
	Server    ServerConfig
	Triage    TriageConfig
	RateLimit RateLimitConfig
	Log       LogConfig
	Render    RenderConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	triage, err := loadTriageConfig()
	if err != nil {
		return nil, err
	}

	limit, err := loadRateLimitConfig()
	if err != nil {
		return nil, err
	}

	render, err := loadRenderConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:    server,
		Triage:    triage,
		RateLimit: limit,
		Log:       loadLogConfig(),
		Render:    render,
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// ":8080" and "127.0.0.1:8080" are taken as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// TriageConfig tunes the conversation sessions.
type TriageConfig struct {
	// ThinkingDelay is the pause between a submission and its reply.
	ThinkingDelay time.Duration
	// SessionIdleTTL is how long an idle session survives before the janitor
	// disposes it. Zero disables sweeping.
	SessionIdleTTL time.Duration
}

func loadTriageConfig() (TriageConfig, error) {
	cfg := TriageConfig{
		ThinkingDelay:  time.Second,
		SessionIdleTTL: 30 * time.Minute,
	}

	delay, err := parseOptionalIntEnv("TRIAGE_THINKING_DELAY_MS")
	if err != nil {
		return TriageConfig{}, err
	}
	if delay != nil {
		if *delay < 0 {
			return TriageConfig{}, fmt.Errorf("invalid TRIAGE_THINKING_DELAY_MS value %d: must not be negative", *delay)
		}
		cfg.ThinkingDelay = time.Duration(*delay) * time.Millisecond
	}

	ttl, err := parseOptionalIntEnv("SESSION_IDLE_TTL_MINUTES")
	if err != nil {
		return TriageConfig{}, err
	}
	if ttl != nil {
		if *ttl < 0 {
			return TriageConfig{}, fmt.Errorf("invalid SESSION_IDLE_TTL_MINUTES value %d: must not be negative", *ttl)
		}
		cfg.SessionIdleTTL = time.Duration(*ttl) * time.Minute
	}

	return cfg, nil
}

// RateLimitConfig bounds POST traffic per client address.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Enabled reports whether limiting is switched on.
func (c RateLimitConfig) Enabled() bool {
	return c.RPS > 0 && c.Burst > 0
}

func loadRateLimitConfig() (RateLimitConfig, error) {
	cfg := RateLimitConfig{RPS: 5, Burst: 10}

	rps, err := parseOptionalFloatEnv("RATE_LIMIT_RPS")
	if err != nil {
		return RateLimitConfig{}, err
	}
	if rps != nil {
		cfg.RPS = *rps
	}

	burst, err := parseOptionalIntEnv("RATE_LIMIT_BURST")
	if err != nil {
		return RateLimitConfig{}, err
	}
	if burst != nil {
		cfg.Burst = *burst
	}

	return cfg, nil
}

// LogConfig selects the log level, format and optional rotating file.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

func loadLogConfig() LogConfig {
	return LogConfig{
		Level:  getEnvOrDefault("LOG_LEVEL", "info"),
		Format: getEnvOrDefault("LOG_FORMAT", "text"),
		File:   strings.TrimSpace(os.Getenv("LOG_FILE")),
	}
}

// RenderConfig controls terminal rendering of replies.
type RenderConfig struct {
	Style string
	Width int
}

func loadRenderConfig() (RenderConfig, error) {
	cfg := RenderConfig{
		Style: getEnvOrDefault("RENDER_STYLE", "dark"),
		Width: 80,
	}

	width, err := parseOptionalIntEnv("RENDER_WIDTH")
	if err != nil {
		return RenderConfig{}, err
	}
	if width != nil {
		if *width <= 0 {
			return RenderConfig{}, fmt.Errorf("invalid RENDER_WIDTH value %d: must be positive", *width)
		}
		cfg.Width = *width
	}

	return cfg, nil
}

// fileConfig mirrors the keys accepted in a TOML file. Absent keys leave the
// environment values untouched.
type fileConfig struct {
	Triage struct {
		ThinkingDelayMS *int `toml:"thinking_delay_ms"`
	} `toml:"triage"`
	Log struct {
		Level  *string `toml:"level"`
		Format *string `toml:"format"`
		File   *string `toml:"file"`
	} `toml:"log"`
	Render struct {
		Style *string `toml:"style"`
		Width *int    `toml:"width"`
	} `toml:"render"`
}

// LoadFile overlays the TOML file at path onto cfg.
func LoadFile(cfg *Config, path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	if v := fc.Triage.ThinkingDelayMS; v != nil {
		if *v < 0 {
			return fmt.Errorf("invalid triage.thinking_delay_ms value %d: must not be negative", *v)
		}
		cfg.Triage.ThinkingDelay = time.Duration(*v) * time.Millisecond
	}
	if v := fc.Log.Level; v != nil {
		cfg.Log.Level = *v
	}
	if v := fc.Log.Format; v != nil {
		cfg.Log.Format = *v
	}
	if v := fc.Log.File; v != nil {
		cfg.Log.File = *v
	}
	if v := fc.Render.Style; v != nil {
		cfg.Render.Style = *v
	}
	if v := fc.Render.Width; v != nil {
		if *v <= 0 {
			return fmt.Errorf("invalid render.width value %d: must be positive", *v)
		}
		cfg.Render.Width = *v
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
