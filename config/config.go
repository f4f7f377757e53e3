package config

import (
	"errors"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Everything has a local-development default except the token signing
// secret, which must be present or startup fails.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Document store
	DBUser   string
	DBPass   string
	DBHost   string
	DBName   string
	MongoURI string // full override; when set, DBUser/DBPass/DBHost are ignored

	// Redis (rate limiter)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Tokens
	AccessTokenSecret string
	AccessTTL         time.Duration

	// CORS
	CORSAllowedOrigins string // comma-separated

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables. It fails when
// ACCESS_TOKEN_SECRET is absent so the process can never sign tokens
// with an empty key.
func Load() (*Config, error) {
	cfg := &Config{
		AppName: getenv("APP_NAME", "e-learning-server"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "5000"),
		GinMode: getenv("GIN_MODE", "release"),

		DBUser:   getenv("DB_USER", ""),
		DBPass:   getenv("DB_PASS", ""),
		DBHost:   getenv("DB_HOST", "localhost:27017"),
		DBName:   getenv("DB_NAME", "ElearningDB"),
		MongoURI: getenv("MONGO_URI", ""),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		AccessTTL:         getdur("JWT_ACCESS_TTL", time.Hour),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
	if cfg.AccessTokenSecret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET is not set")
	}
	return cfg, nil
}

// StoreURI returns the document store connection string.
func (c *Config) StoreURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	if c.DBUser != "" {
		return "mongodb://" + url.UserPassword(c.DBUser, c.DBPass).String() + "@" + c.DBHost
	}
	return "mongodb://" + c.DBHost
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
