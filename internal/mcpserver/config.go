package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"golang.org/x/text/language"

	"github.com/nagaozen/schematools/loader"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Lang is the default localization language for compose/fetch.
	Lang string

	// BaseDir roots the file provider; references cannot escape it.
	BaseDir string

	// HTTPEnabled registers http/https providers when true.
	HTTPEnabled bool
	HTTPTimeout time.Duration

	// Composition limits.
	MaxDocuments int
	MaxDepth     int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from SCHEMATOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Lang:         envLang("SCHEMATOOLS_LANG", loader.DefaultLang),
		BaseDir:      envString("SCHEMATOOLS_BASE_DIR", "."),
		HTTPEnabled:  envBool("SCHEMATOOLS_HTTP_ENABLED", true),
		HTTPTimeout:  envDuration("SCHEMATOOLS_HTTP_TIMEOUT", 30*time.Second),
		MaxDocuments: envInt("SCHEMATOOLS_MAX_DOCUMENTS", loader.DefaultMaxDocuments),
		MaxDepth:     envInt("SCHEMATOOLS_MAX_DEPTH", 0),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func envLang(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	tag, err := language.Parse(v)
	if err != nil {
		slog.Warn("invalid language env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return tag.String()
}
