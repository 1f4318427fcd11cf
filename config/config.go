package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/Annany2002/servo-panel/internal/logger"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultSessionSecret is used when SESSION_SECRET is unset. It is not safe
// outside local development.
const DefaultSessionSecret = "default_secret_key"

var (
	customLog = logger.NewLogger()
	validate  = validator.New()
)

// Config holds application configuration values
type Config struct {
	AppEnv             string
	SessionSecret      string   `validate:"required"`
	Host               string   `validate:"omitempty,ip|hostname"`
	Port               int      `validate:"min=1,max=65535"`
	Debug              bool
	LogLevel           string   `validate:"oneof=trace debug info warn warning error fatal panic"`
	TemplateDir        string
	RateLimitPerMinute int      `validate:"gte=0"`
	CORSAllowedOrigins []string `validate:"min=1,dive,eq=*|http_url"`
	MetricsAddr        string   `validate:"omitempty,hostname_port"`
}

// Addr is the listen address of the page server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// IsProduction reports whether APP_ENV is "production".
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// UsingDefaultSecret reports whether the insecure fallback secret is in use.
func (c *Config) UsingDefaultSecret() bool {
	return c.SessionSecret == DefaultSessionSecret
}

// LoadConfig loads configuration from environment variables.
// It uses a .env file for local development if present (ignores it for production).
func LoadConfig() (*Config, error) {
	customLog.Println("Loading configuration from environment variables...")

	appEnv := getEnv("APP_ENV", "")
	if appEnv != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			customLog.Warnf("Warning: Error loading .env file: %v", err)
		}
	}

	portStr := getEnv("PORT", "5000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
	}

	debugStr := getEnv("DEBUG", "true")
	debug, err := strconv.ParseBool(debugStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DEBUG %q: %w", debugStr, err)
	}

	limitStr := getEnv("RATE_LIMIT_PER_MINUTE", "0")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE %q: %w", limitStr, err)
	}

	cfg := &Config{
		AppEnv:             appEnv,
		SessionSecret:      getEnv("SESSION_SECRET", DefaultSessionSecret),
		Host:               getEnv("HOST", "0.0.0.0"),
		Port:               port,
		Debug:              debug,
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "debug")),
		TemplateDir:        getEnv("TEMPLATE_DIR", ""),
		RateLimitPerMinute: limit,
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		MetricsAddr:        getEnv("METRICS_ADDR", ""),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.UsingDefaultSecret() {
		customLog.Warnln("WARNING: SESSION_SECRET is not set, using the insecure default secret!")
	}

	customLog.Printf("Configuration loaded successfully. Addr: %s, Debug: %v", cfg.Addr(), cfg.Debug)
	return cfg, nil
}

// getEnv reads an environment variable or returns a default value.
// A variable set to the empty string counts as unset.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
