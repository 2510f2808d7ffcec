package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	StoreName      string
	Addr           string
	LogLevel       string
	ShopExclude    string
	RateLimitRPS   float64
	RateLimitBurst int
	TrustProxy     bool
	CORSOrigins    []string
	SeedFile       string
}

// LoadEnvFiles reads .env and .env.local from the working directory. Values
// already present in the environment win.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load reads the configuration from the environment, falling back to defaults
// for unset or malformed values.
func Load() Config {
	return Config{
		StoreName:      getEnv("BOOKSTORE_NAME", "Classic Novels Collection"),
		Addr:           getEnv("APP_ADDR", ":8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ShopExclude:    getEnv("SHOP_EXCLUDE", "the"),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 40),
		TrustProxy:     getEnvBool("TRUST_PROXY", false),
		CORSOrigins:    getEnvList("CORS_ALLOWED_ORIGINS"),
		SeedFile:       os.Getenv("SEED_FILE"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
