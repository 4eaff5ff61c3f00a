package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// GetStringConfig returns a string configuration value
func GetStringConfig(key string, defaultValue ...string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetIntConfig returns an integer configuration value
func GetIntConfig(key string, defaultValue ...int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBoolConfig returns a boolean configuration value
func GetBoolConfig(key string, defaultValue ...bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// ValidateConfig validates required configuration values. A SQLite path
// stands in for the Postgres connection settings.
func ValidateConfig() error {
	if GetStringConfig("DB_SQLITE_PATH") != "" || GetStringConfig("DATABASE_URL") != "" {
		return nil
	}

	requiredKeys := []string{
		"DB_HOST",
		"DB_USER",
		"DB_PASSWORD",
		"DB_NAME",
	}

	var missingKeys []string
	for _, key := range requiredKeys {
		if !viper.IsSet(key) || viper.GetString(key) == "" {
			missingKeys = append(missingKeys, key)
		}
	}

	if len(missingKeys) > 0 {
		return fmt.Errorf("missing required configuration keys: %s", strings.Join(missingKeys, ", "))
	}

	return nil
}

// PrintConfig prints current configuration (excluding sensitive data)
func PrintConfig() {
	log.Println("=== Configuration ===")

	log.Printf("Server: %s:%s", GetStringConfig("HOST"), GetStringConfig("PORT"))
	log.Printf("Gin Mode: %s", GetStringConfig("GIN_MODE"))

	if sqlite := GetStringConfig("DB_SQLITE_PATH"); sqlite != "" {
		log.Printf("Database: sqlite:%s", sqlite)
	} else {
		log.Printf("Database: %s:%d", GetStringConfig("DB_HOST"), GetIntConfig("DB_PORT"))
		log.Printf("Database Name: %s", GetStringConfig("DB_NAME"))
	}

	log.Printf("Redis: %s:%d", GetStringConfig("REDIS_HOST"), GetIntConfig("REDIS_PORT"))
	log.Printf("Solve Cache TTL: %dmin", GetIntConfig("CACHE_SOLVE_TTL_MIN"))
	log.Printf("Scheduler Enabled: %v", GetBoolConfig("SCHEDULER_ENABLED"))

	log.Printf("Log Level: %s", GetStringConfig("LOG_LEVEL"))
	log.Printf("Log Format: %s", GetStringConfig("LOG_FORMAT"))

	log.Println("=====================")
}

// IsDevelopment returns true if running in development mode
func IsDevelopment() bool {
	return GetStringConfig("GIN_MODE") == "debug"
}

// IsProduction returns true if running in production mode
func IsProduction() bool {
	return GetStringConfig("GIN_MODE") == "release"
}
