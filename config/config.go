package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"temporal-intent-engine/pkg/datemath"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Temporal parsing and conflict detection
	Temporal       TemporalConfig
	Conflict       ConflictConfig
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

type RateLimitConfig struct {
	RequestsPerMin int
}

// TemporalConfig is the default user context applied when a request leaves it out.
type TemporalConfig struct {
	Timezone    string
	WorkStart   string
	WorkEnd     string
	WorkingDays []int // 0=Sunday .. 6=Saturday
	MaxTextLen  int
	CacheSize   int
	CacheTTL    time.Duration
}

type ConflictConfig struct {
	GranularityMinutes int
	MaxConcurrency     int
	FetchTimeout       time.Duration
	RateLimitPerSec    float64
	RateBurst          int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	UseEvents       bool // Events.List instead of FreeBusy, to get event titles
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Temporal
	cfg.Temporal.Timezone = viper.GetString("temporal.timezone")
	cfg.Temporal.WorkStart = viper.GetString("temporal.working_hours.start")
	cfg.Temporal.WorkEnd = viper.GetString("temporal.working_hours.end")
	days, err := intList("temporal.working_days")
	if err != nil {
		return nil, err
	}
	cfg.Temporal.WorkingDays = days
	cfg.Temporal.MaxTextLen = viper.GetInt("temporal.max_text_length")
	cfg.Temporal.CacheSize = viper.GetInt("temporal.cache_size")
	cfg.Temporal.CacheTTL = viper.GetDuration("temporal.cache_ttl")

	// Conflict detection
	cfg.Conflict.GranularityMinutes = viper.GetInt("conflict.granularity_minutes")
	cfg.Conflict.MaxConcurrency = viper.GetInt("conflict.max_concurrency")
	cfg.Conflict.FetchTimeout = viper.GetDuration("conflict.fetch_timeout")
	cfg.Conflict.RateLimitPerSec = viper.GetFloat64("conflict.rate_limit_per_sec")
	cfg.Conflict.RateBurst = viper.GetInt("conflict.rate_burst")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = expandEnvVar(viper.GetString("google_calendar.credentials_path"))
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.UseEvents = viper.GetBool("google_calendar.use_events")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the service cannot start with.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port: invalid port %d", c.HTTPServer.Port)
	}
	if _, err := time.LoadLocation(c.Temporal.Timezone); err != nil {
		return fmt.Errorf("temporal.timezone: %w", err)
	}

	start, err := datemath.ParseClock(c.Temporal.WorkStart)
	if err != nil {
		return fmt.Errorf("temporal.working_hours.start: %w", err)
	}
	end, err := datemath.ParseClock(c.Temporal.WorkEnd)
	if err != nil {
		return fmt.Errorf("temporal.working_hours.end: %w", err)
	}
	if !start.Before(end) {
		return errors.New("temporal.working_hours: start must be before end")
	}

	for _, d := range c.Temporal.WorkingDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("temporal.working_days: %d is not a weekday (0-6)", d)
		}
	}
	if c.Conflict.GranularityMinutes <= 0 || c.Conflict.GranularityMinutes > 24*60 {
		return fmt.Errorf("conflict.granularity_minutes: %d out of range", c.Conflict.GranularityMinutes)
	}
	if c.Conflict.RateLimitPerSec < 0 {
		return errors.New("conflict.rate_limit_per_sec must not be negative")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("temporal.timezone", "Europe/Paris")
	viper.SetDefault("temporal.working_hours.start", "09:00")
	viper.SetDefault("temporal.working_hours.end", "18:00")
	viper.SetDefault("temporal.working_days", []int{1, 2, 3, 4, 5})
	viper.SetDefault("temporal.max_text_length", 1000)
	viper.SetDefault("temporal.cache_size", 512)
	viper.SetDefault("temporal.cache_ttl", "10m")

	viper.SetDefault("conflict.granularity_minutes", 30)
	viper.SetDefault("conflict.max_concurrency", 4)
	viper.SetDefault("conflict.fetch_timeout", "5s")
	viper.SetDefault("conflict.rate_limit_per_sec", 5)
	viper.SetDefault("conflict.rate_burst", 5)

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.use_events", false)
}

// intList reads a list of ints that may come from YAML or from a
// comma-separated environment variable.
func intList(key string) ([]int, error) {
	raw, ok := viper.Get(key).(string)
	if !ok {
		return viper.GetIntSlice(key), nil
	}

	var out []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", key, part)
		}
		out = append(out, n)
	}
	return out, nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}
