package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBDSN             string
	LogFile           string
	AnalyticsCapacity int
	EthicalFloor      int
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "dealscope.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")

	capacity := envInt("ANALYTICS_CAPACITY", 1000)
	floor := envInt("ETHICAL_FLOOR", 30)

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, AnalyticsCapacity: capacity, EthicalFloor: floor}
	log.Printf("[config] PORT=%s DB_DSN=%s ANALYTICS_CAPACITY=%d ETHICAL_FLOOR=%d", cfg.Port, cfg.DBDSN, cfg.AnalyticsCapacity, cfg.EthicalFloor)
	return cfg
}

func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		log.Printf("[config] ignoring %s=%q: not a positive integer", key, s)
		return def
	}
	return n
}
