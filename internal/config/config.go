package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port          string
	DBDSN         string
	LogFile       string // empty: log to stdout only
	RedisAddr     string // empty: in-process notifier only
	JWTSecret     string
	AutoApprove   bool   // publish reviews without moderation
	CategoryMatch string // legacy | exact
	PageSize      int
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "wecamp.db" // sqlite file in project root
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-only-secret"
		log.Printf("[config] JWT_SECRET not set; using insecure dev default")
	}
	match := os.Getenv("CATEGORY_MATCH")
	if match == "" {
		match = "legacy"
	}

	cfg := Config{
		Port:          port,
		DBDSN:         dsn,
		LogFile:       os.Getenv("LOG_FILE"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		JWTSecret:     secret,
		AutoApprove:   boolEnv("REVIEW_AUTO_APPROVE", true),
		CategoryMatch: match,
		PageSize:      intEnv("PAGE_SIZE", 12),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s REDIS_ADDR=%s CATEGORY_MATCH=%s AUTO_APPROVE=%v PAGE_SIZE=%d",
		cfg.Port, cfg.DBDSN, cfg.RedisAddr, cfg.CategoryMatch, cfg.AutoApprove, cfg.PageSize)
	return cfg
}

func boolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[config] bad %s=%q, using %v", key, v, def)
		return def
	}
	return b
}

func intEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] bad %s=%q, using %d", key, v, def)
		return def
	}
	return n
}
