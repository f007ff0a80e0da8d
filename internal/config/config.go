package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env               string   `mapstructure:"env"`                 // current application environment (local, dev, production etc)
	TelegramAPIToken  string   `mapstructure:"-"`                   // Telegram API token loaded from environment
	CountriesJSONPath string   `mapstructure:"countries_json_path"` // path to JSON file with the country catalog
	Quiz              Quiz     `mapstructure:"quiz"`                // game rules
	Sessions          Sessions `mapstructure:"sessions"`            // in-memory session housekeeping
	UI                UI       `mapstructure:"ui"`                  // rendering options
	DB                DB       `mapstructure:"database"`            // database configuration section
}

// Quiz contains game rule parameters.
type Quiz struct {
	RoundSize int `mapstructure:"round_size"` // flags offered per round
}

// Sessions controls eviction of idle games from memory.
type Sessions struct {
	IdleTTL         time.Duration `mapstructure:"idle_ttl"`         // drop sessions untouched for this long
	CleanupSchedule string        `mapstructure:"cleanup_schedule"` // cron spec for the janitor
}

// UI contains hex colors of the message badges.
type UI struct {
	BadgeColor string `mapstructure:"badge_color"` // score and remaining badges
	WrongColor string `mapstructure:"wrong_color"` // wrong answer banner
}

// DB contains database-related configuration parameters.
// The database is optional: without a URL the catalog is read from CountriesJSONPath.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Enabled reports whether a database URL is configured.
func (db DB) Enabled() bool {
	return db.URL != ""
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Values already present in the environment win over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("countries_json_path", "assets/data/countries.json")
	v.SetDefault("quiz.round_size", 3)
	v.SetDefault("sessions.idle_ttl", "24h")
	v.SetDefault("sessions.cleanup_schedule", "@every 10m")
	v.SetDefault("ui.badge_color", "#88e319")
	v.SetDefault("ui.wrong_color", "034dad")
	v.SetDefault("database.max_connections", 5)
	v.SetDefault("database.max_conn_lifetime", "30m")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")

	if cfg.Quiz.RoundSize < 2 {
		return nil, fmt.Errorf("quiz.round_size must be at least 2, got %d", cfg.Quiz.RoundSize)
	}

	return &cfg, nil
}
