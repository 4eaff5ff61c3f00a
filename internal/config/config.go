package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
	Cache     CacheConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type DatabaseConfig struct {
	URL    string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	SQLite string // Path to a SQLite file; when set it replaces Postgres
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	Origins []string
}

type RateLimitConfig struct {
	Requests int
	Burst    int
}

type LoggingConfig struct {
	Level  string
	Format string
}

type CacheConfig struct {
	SolveTTLMin int // TTL of cached solve results in minutes
}

type SchedulerConfig struct {
	Enabled            bool
	WarmIntervalMin    int // How often the preset cache warm job runs
	PurgeRetentionDays int // Soft-deleted presets older than this are purged
}

// Load initializes and loads configuration using Viper
func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")

	// Environment variables override the config file
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("Warning: .env file not found, using environment variables and defaults")
		} else {
			log.Printf("Error reading config file: %v", err)
		}
	} else {
		log.Printf("Using config file: %s", viper.ConfigFileUsed())
	}

	config := &Config{
		Server: ServerConfig{
			Port: viper.GetString("PORT"),
			Host: viper.GetString("HOST"),
		},
		Database: DatabaseConfig{
			URL:    viper.GetString("DATABASE_URL"),
			Host:   viper.GetString("DB_HOST"),
			Port:   viper.GetInt("DB_PORT"),
			User:   viper.GetString("DB_USER"),
			Pass:   viper.GetString("DB_PASSWORD"),
			Name:   viper.GetString("DB_NAME"),
			SQLite: viper.GetString("DB_SQLITE_PATH"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		CORS: CORSConfig{
			Origins: viper.GetStringSlice("CORS_ORIGINS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Burst:    viper.GetInt("RATE_LIMIT_BURST"),
		},
		Logging: LoggingConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Cache: CacheConfig{
			SolveTTLMin: viper.GetInt("CACHE_SOLVE_TTL_MIN"),
		},
		Scheduler: SchedulerConfig{
			Enabled:            viper.GetBool("SCHEDULER_ENABLED"),
			WarmIntervalMin:    viper.GetInt("SCHEDULER_WARM_INTERVAL_MIN"),
			PurgeRetentionDays: viper.GetInt("SCHEDULER_PURGE_RETENTION_DAYS"),
		},
	}

	return config
}

// setDefaults sets default values for all configuration options
func setDefaults() {
	// Server Configuration
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("GIN_MODE", "debug")

	// Database Configuration
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "layout_user")
	viper.SetDefault("DB_PASSWORD", "layout_password")
	viper.SetDefault("DB_NAME", "layout_dss")
	viper.SetDefault("DB_SQLITE_PATH", "")

	// Redis Configuration
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", 6379)
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	// CORS Configuration
	viper.SetDefault("CORS_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000"})

	// Rate Limiting
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_BURST", 200)

	// Logging
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")

	// Solve result cache
	viper.SetDefault("CACHE_SOLVE_TTL_MIN", 30)

	// Preset scheduler
	viper.SetDefault("SCHEDULER_ENABLED", true)
	viper.SetDefault("SCHEDULER_WARM_INTERVAL_MIN", 60)
	viper.SetDefault("SCHEDULER_PURGE_RETENTION_DAYS", 30)
}
