package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Gemini    GeminiConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Engine    EngineConfig
	Catalog   CatalogConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	// Entries match exactly, or by prefix when they end in "*"
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GeminiConfig holds generative AI configuration.
// An empty APIKey disables the AI path; analyses then come from the engine.
type GeminiConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	Model             string        `mapstructure:"model"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerMinute float64       `mapstructure:"requests_per_minute"`
	FailureThreshold  uint32        `mapstructure:"failure_threshold"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type       string        `mapstructure:"type"` // only "memory"
	TTL        time.Duration `mapstructure:"ttl"`
	MaxEntries int           `mapstructure:"max_entries"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute
}

// EngineConfig holds recommendation engine configuration
type EngineConfig struct {
	RecommendationLimit int    `mapstructure:"recommendation_limit"`
	RoutineMode         string `mapstructure:"routine_mode"`
	PremiumBudgetPolicy string `mapstructure:"premium_budget_policy"`
}

// CatalogConfig holds product catalog configuration
type CatalogConfig struct {
	Path string `mapstructure:"path"` // empty uses the built-in catalog
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from a .env file, environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/skinsage/")

	// Environment variable settings: SKINSAGE_GEMINI_API_KEY -> gemini.api_key
	v.SetEnvPrefix("SKINSAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads ./.env when present. Variables already set in the
// environment are not overridden.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(".env")
}

// setDefaults sets default configuration values.
// Every key gets a default so AutomaticEnv can resolve it during Unmarshal.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173", "http://localhost:3000"})

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.timeout", "30s")
	v.SetDefault("gemini.requests_per_minute", 60)
	v.SetDefault("gemini.failure_threshold", 5)

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "24h")
	v.SetDefault("cache.max_entries", 1000)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)

	// Engine defaults
	v.SetDefault("engine.recommendation_limit", 5)
	v.SetDefault("engine.routine_mode", "category")
	v.SetDefault("engine.premium_budget_policy", "unfiltered")

	// Catalog defaults
	v.SetDefault("catalog.path", "")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.Type != "memory" {
		return fmt.Errorf("cache type must be 'memory', got: %s", config.Cache.Type)
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache ttl must be positive, got: %s", config.Cache.TTL)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit per_ip must be positive, got: %d", config.RateLimit.PerIP)
	}

	if config.Engine.RecommendationLimit <= 0 {
		return fmt.Errorf("engine recommendation_limit must be positive, got: %d", config.Engine.RecommendationLimit)
	}

	switch config.Engine.RoutineMode {
	case "category", "global":
	default:
		return fmt.Errorf("engine routine_mode must be 'category' or 'global', got: %s", config.Engine.RoutineMode)
	}

	switch config.Engine.PremiumBudgetPolicy {
	case "unfiltered", "exact":
	default:
		return fmt.Errorf("engine premium_budget_policy must be 'unfiltered' or 'exact', got: %s", config.Engine.PremiumBudgetPolicy)
	}

	switch config.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log format must be 'console' or 'json', got: %s", config.Log.Format)
	}

	if config.Gemini.APIKey != "" && config.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini timeout must be positive, got: %s", config.Gemini.Timeout)
	}

	return nil
}

// AIEnabled reports whether a Gemini API key is configured
func (c *Config) AIEnabled() bool {
	return c.Gemini.APIKey != ""
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
