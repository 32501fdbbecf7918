package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	DatabaseLogLevel string `mapstructure:"DB_LOG_LEVEL"`
	AutoMigrate      bool   `mapstructure:"DB_AUTO_MIGRATE"`
	MaxOpenConns     int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns     int    `mapstructure:"DB_MAX_IDLE_CONNS"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Metrics configuration
	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`

	// Reporting configuration
	Reports ReportConfig `mapstructure:",squash"`
}

// ReportConfig holds the defaults applied by the reporting services when a
// request leaves a parameter unset.
type ReportConfig struct {
	FirstYear               int  `mapstructure:"REPORT_FIRST_YEAR"`
	LastYear                int  `mapstructure:"REPORT_LAST_YEAR"`
	DefaultSeason           int  `mapstructure:"DEFAULT_SEASON"`
	LeaderboardPageSize     int  `mapstructure:"LEADERBOARD_PAGE_SIZE"`
	PitchingMinBattersFaced int  `mapstructure:"PITCHING_MIN_BATTERS_FACED"`
	BattingMinAtBats        int  `mapstructure:"BATTING_MIN_AT_BATS"`
	BattingLeadersRanked    bool `mapstructure:"BATTING_LEADERS_RANKED"`
}

// DefaultReportConfig returns the reporting window and thresholds used by the
// dashboard: seasons 2011-2015 with 2014 as the default season.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		FirstYear:               2011,
		LastYear:                2015,
		DefaultSeason:           2014,
		LeaderboardPageSize:     10,
		PitchingMinBattersFaced: 25,
		BattingMinAtBats:        0,
		BattingLeadersRanked:    false,
	}
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "baseball")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_LOG_LEVEL", "error")
	viper.SetDefault("DB_AUTO_MIGRATE", false)
	viper.SetDefault("DB_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 10)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	viper.SetDefault("METRICS_ENABLED", true)

	// Reporting defaults
	reports := DefaultReportConfig()
	viper.SetDefault("REPORT_FIRST_YEAR", reports.FirstYear)
	viper.SetDefault("REPORT_LAST_YEAR", reports.LastYear)
	viper.SetDefault("DEFAULT_SEASON", reports.DefaultSeason)
	viper.SetDefault("LEADERBOARD_PAGE_SIZE", reports.LeaderboardPageSize)
	viper.SetDefault("PITCHING_MIN_BATTERS_FACED", reports.PitchingMinBattersFaced)
	viper.SetDefault("BATTING_MIN_AT_BATS", reports.BattingMinAtBats)
	viper.SetDefault("BATTING_LEADERS_RANKED", reports.BattingLeadersRanked)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	r := config.Reports
	if r.FirstYear > r.LastYear {
		return fmt.Errorf("REPORT_FIRST_YEAR (%d) is after REPORT_LAST_YEAR (%d)", r.FirstYear, r.LastYear)
	}
	if r.DefaultSeason < r.FirstYear || r.DefaultSeason > r.LastYear {
		return fmt.Errorf("DEFAULT_SEASON (%d) must be within %d-%d", r.DefaultSeason, r.FirstYear, r.LastYear)
	}
	if r.LeaderboardPageSize < 1 {
		return fmt.Errorf("LEADERBOARD_PAGE_SIZE must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
