package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis (refresh-token registry)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// JWT (shared across services so auth-issued tokens verify everywhere)
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Service ports
	GatewayPort  string
	AuthPort     string
	CategoryPort string
	ItemPort     string

	// Gateway upstreams
	AuthServiceURL     string
	CategoryServiceURL string
	ItemServiceURL     string

	CORSOrigins string
}

func Load() *Config {
	// Missing .env is fine; real deployments use plain environment variables.
	_ = godotenv.Load()

	authPort := getEnv("AUTH_SERVICE_PORT", "4003")
	categoryPort := getEnv("CATEGORY_SERVICE_PORT", "4001")
	itemPort := getEnv("ITEM_SERVICE_PORT", "4002")

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "storefront_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       parseInt(getEnv("REDIS_DB", "0")),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "1h")),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h")),

		GatewayPort:  getEnv("API_GATEWAY_PORT", "4000"),
		AuthPort:     authPort,
		CategoryPort: categoryPort,
		ItemPort:     itemPort,

		AuthServiceURL:     getEnv("AUTH_SERVICE_URL", "http://localhost:"+authPort),
		CategoryServiceURL: getEnv("CATEGORY_SERVICE_URL", "http://localhost:"+categoryPort),
		ItemServiceURL:     getEnv("ITEM_SERVICE_URL", "http://localhost:"+itemPort),

		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Hour
	}
	return d
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
