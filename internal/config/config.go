package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	CORS     CORSConfig
	App      AppConfig
	Upstream UpstreamConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AppConfig holds extraction request settings.
type AppConfig struct {
	// MaxUploadBytes caps the size of a report document accepted for
	// extraction. Oversized uploads get a 413.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes"`
}

// UpstreamConfig holds settings for fetching result documents from the
// regional verification APIs.
type UpstreamConfig struct {
	TimeoutSecs int `mapstructure:"timeout_secs"`
	// BaseURL overrides token-derived endpoint routing when set. Useful for
	// pointing at a proxy or a test server.
	BaseURL string `mapstructure:"base_url"`
	// ResultPathTemplate is the request path for a result document; %s is
	// replaced with the request id.
	ResultPathTemplate string `mapstructure:"result_path_template"`
}

// Load reads configuration from environment variables with the IDVEX_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("IDVEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:3001,http://127.0.0.1:3001")

	// App defaults (5 MiB upload cap)
	v.SetDefault("app.max_upload_bytes", 5242880)

	// Upstream defaults
	v.SetDefault("upstream.timeout_secs", 30)
	v.SetDefault("upstream.base_url", "")
	v.SetDefault("upstream.result_path_template", "/result/v2/results/person/%s")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                   "IDVEX_SERVER_PORT",
		"server.read_timeout":           "IDVEX_SERVER_READ_TIMEOUT",
		"server.write_timeout":          "IDVEX_SERVER_WRITE_TIMEOUT",
		"server.environment":            "IDVEX_SERVER_ENVIRONMENT",
		"log.level":                     "IDVEX_LOG_LEVEL",
		"log.format":                    "IDVEX_LOG_FORMAT",
		"cors.allowed_origins":          "IDVEX_CORS_ALLOWED_ORIGINS",
		"app.max_upload_bytes":          "IDVEX_APP_MAX_UPLOAD_BYTES",
		"upstream.timeout_secs":         "IDVEX_UPSTREAM_TIMEOUT_SECS",
		"upstream.base_url":             "IDVEX_UPSTREAM_BASE_URL",
		"upstream.result_path_template": "IDVEX_UPSTREAM_RESULT_PATH_TEMPLATE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if IDVEX_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("IDVEX_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.App = AppConfig{
		MaxUploadBytes: v.GetInt64("app.max_upload_bytes"),
	}
	cfg.Upstream = UpstreamConfig{
		TimeoutSecs:        v.GetInt("upstream.timeout_secs"),
		BaseURL:            v.GetString("upstream.base_url"),
		ResultPathTemplate: v.GetString("upstream.result_path_template"),
	}

	return cfg, nil
}
