package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/terraincognita07/wellnest/internal/security"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	minSecretLength       = 32
	generatedSecretLength = 48
)

var insecureSecretPlaceholders = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
	"secret":     {},
	"changeme":   {},
	"dev-secret": {},
}

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Log      LogConfig
	Metrics  MetricsConfig
}

type AppConfig struct {
	Name        string
	Environment string
}

func (a AppConfig) IsDevelopment() bool {
	return a.Environment == EnvDevelopment
}

type ServerConfig struct {
	Port            string
	TimeZone        string
	Location        *time.Location
	CookieSecure    bool
	TemplatesDir    string
	StaticDir       string
	ShutdownTimeout time.Duration
}

func (s ServerConfig) Address() string {
	return ":" + s.Port
}

type DatabaseConfig struct {
	Path string
}

type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
	// SecretGenerated is set when development mode replaced an empty secret.
	SecretGenerated bool
}

type LogConfig struct {
	Level      string
	Format     string
	OutputPath string
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

// Load reads configuration from the environment and, when CONFIG_FILE is
// set, from that file. Environment variables win over file values.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configFile := strings.TrimSpace(v.GetString("CONFIG_FILE")); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Name:        v.GetString("APP_NAME"),
			Environment: strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV"))),
		},
		Server: ServerConfig{
			Port:            strings.TrimSpace(v.GetString("PORT")),
			TimeZone:        strings.TrimSpace(v.GetString("TZ")),
			CookieSecure:    v.GetBool("COOKIE_SECURE"),
			TemplatesDir:    v.GetString("TEMPLATES_DIR"),
			StaticDir:       v.GetString("STATIC_DIR"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("DB_PATH"),
		},
		Auth: AuthConfig{
			Secret:   strings.TrimSpace(v.GetString("SECRET_KEY")),
			TokenTTL: v.GetDuration("TOKEN_TTL"),
		},
		Log: LogConfig{
			Level:      strings.ToLower(v.GetString("LOG_LEVEL")),
			Format:     strings.ToLower(v.GetString("LOG_FORMAT")),
			OutputPath: v.GetString("LOG_OUTPUT"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
			Path:    v.GetString("METRICS_PATH"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "wellnest")
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("PORT", "8080")
	v.SetDefault("TZ", "UTC")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("TEMPLATES_DIR", filepath.Join("internal", "templates"))
	v.SetDefault("STATIC_DIR", filepath.Join("web", "static"))
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("DB_PATH", filepath.Join("data", "wellnest.db"))
	v.SetDefault("TOKEN_TTL", 24*time.Hour)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_PATH", "/metrics")
}

// validate collects every problem so a misconfigured deployment fails once
// with the full list.
func validate(cfg *Config) error {
	var errs []string

	if err := validatePort(cfg.Server.Port); err != nil {
		errs = append(errs, err.Error())
	}

	location, err := time.LoadLocation(cfg.Server.TimeZone)
	if err != nil {
		errs = append(errs, fmt.Sprintf("TZ %q is not a valid time zone", cfg.Server.TimeZone))
	} else {
		cfg.Server.Location = location
	}

	secret, generated, err := resolveSecret(cfg.Auth.Secret, cfg.App.IsDevelopment())
	if err != nil {
		errs = append(errs, err.Error())
	} else {
		cfg.Auth.Secret = secret
		cfg.Auth.SecretGenerated = generated
	}

	if cfg.Auth.TokenTTL <= 0 {
		errs = append(errs, "TOKEN_TTL must be positive")
	}

	switch cfg.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Sprintf("LOG_FORMAT %q must be console or json", cfg.Log.Format))
	}

	if strings.TrimSpace(cfg.Database.Path) == "" {
		errs = append(errs, "DB_PATH is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func validatePort(raw string) error {
	port, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("PORT %q must be numeric", raw)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	return nil
}

func resolveSecret(secret string, development bool) (string, bool, error) {
	if secret == "" {
		if !development {
			return "", false, fmt.Errorf("SECRET_KEY is required")
		}
		generated, err := security.RandomString(generatedSecretLength, security.AlphanumericAlphabet)
		if err != nil {
			return "", false, fmt.Errorf("generate development secret: %w", err)
		}
		return generated, true, nil
	}

	if _, insecure := insecureSecretPlaceholders[strings.ToLower(secret)]; insecure {
		return "", false, fmt.Errorf("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < minSecretLength && !development {
		return "", false, fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretLength)
	}
	return secret, false, nil
}
