package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// ESS chatbot specifics
	Data           DataConfig
	Matcher        MatcherConfig
	Chat           ChatConfig
	Voyage         VoyageConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DataConfig points at the static seed files loaded at startup.
type DataConfig struct {
	EmployeesPath string
	IntentsPath   string
}

// MatcherConfig tunes the intent classifier.
type MatcherConfig struct {
	Threshold      float64
	QueryCacheSize int
}

// ChatConfig covers the conversational surface.
type ChatConfig struct {
	Timezone        string
	RateLimitPerMin int
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Seed data
	cfg.Data.EmployeesPath = viper.GetString("data.employees_path")
	cfg.Data.IntentsPath = viper.GetString("data.intents_path")

	// Matcher
	cfg.Matcher.Threshold = viper.GetFloat64("matcher.threshold")
	cfg.Matcher.QueryCacheSize = viper.GetInt("matcher.query_cache_size")

	// Chat
	cfg.Chat.Timezone = viper.GetString("chat.timezone")
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	// Voyage AI
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	cfg.Voyage.Model = viper.GetString("voyage.model")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	// Google Calendar (optional: leave requests degrade gracefully without it)
	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if cfg.Voyage.APIKey == "" {
		return nil, fmt.Errorf("voyage.api_key is required - the intent matcher cannot run without an embedding provider")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("data.employees_path", "data/employees.json")
	viper.SetDefault("data.intents_path", "config/intents.json")

	viper.SetDefault("matcher.threshold", 0.5)
	viper.SetDefault("matcher.query_cache_size", 256)

	viper.SetDefault("chat.timezone", "Asia/Kolkata")
	viper.SetDefault("chat.rate_limit_per_min", 60)

	viper.SetDefault("voyage.model", "voyage-3-lite")
	viper.SetDefault("google_calendar.enabled", false)
	viper.SetDefault("google_calendar.calendar_id", "primary")
}
