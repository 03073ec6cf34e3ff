package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	Env                string
	DBDriver           string
	DBDSN              string
	MaxPageSize        int
	QueryTimeout       time.Duration
	ExposeErrorDetails bool
	RateLimitMax       int
	RateLimitWindow    time.Duration
	CORSOrigin         string
	DataSource         string
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:               GetEnv("PORT", "3000"),
		Env:                GetEnv("ENV", "development"),
		DBDriver:           GetEnv("DB_DRIVER", "sqlite3"),
		DBDSN:              GetEnv("DB_DSN", "./data/exercises.db"),
		MaxPageSize:        GetEnvInt("MAX_PAGE_SIZE", 100),
		QueryTimeout:       GetEnvDuration("QUERY_TIMEOUT", 10*time.Second),
		ExposeErrorDetails: GetEnvBool("EXPOSE_ERROR_DETAILS", true),
		RateLimitMax:       GetEnvInt("RATE_LIMIT_MAX", 200),
		RateLimitWindow:    GetEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		CORSOrigin:         GetEnv("CORS_ORIGIN", "*"),
		DataSource:         GetEnv("DATA_SOURCE", "BetterFit Exercise Database"),
	}

	switch AppConfig.DBDriver {
	case "sqlite3", "mysql":
	default:
		log.Fatalf("unsupported DB_DRIVER %q (expected sqlite3 or mysql)", AppConfig.DBDriver)
	}
	if AppConfig.MaxPageSize < 1 {
		log.Fatal("MAX_PAGE_SIZE must be at least 1")
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid int for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func GetEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultValue
}

// GetEnvDuration parses Go duration strings ("10s", "1m"). "0" is a valid value.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
