package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// 서버 설정, .env 파일과 환경 변수에서 로드
type Config struct {
	Port string

	ModelPath     string
	ModelEndpoint string
	ModelName     string
	ModelTimeout  time.Duration

	JWTSecret []byte

	RateLimitRPS   float64
	RateLimitBurst int

	AllowOrigins []string
}

// Load reads .env from the working directory when present, then the process environment.
// Variables already set in the environment win over .env values.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config.Load(): failed to read .env: %w", err)
	}

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		ModelPath:     getEnv("MODEL_PATH", "model.json"),
		ModelEndpoint: os.Getenv("MODEL_ENDPOINT"),
		ModelName:     getEnv("MODEL_NAME", "konkur-rank"),
		JWTSecret:     []byte(os.Getenv("AUTH_JWT_SECRET")),
		AllowOrigins:  splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}

	var err error
	if cfg.ModelTimeout, err = time.ParseDuration(getEnv("MODEL_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("config.Load(): invalid MODEL_TIMEOUT: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "0"), 64); err != nil {
		return Config{}, fmt.Errorf("config.Load(): invalid RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20")); err != nil {
		return Config{}, fmt.Errorf("config.Load(): invalid RATE_LIMIT_BURST: %w", err)
	}
	if cfg.RateLimitRPS < 0 || cfg.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("config.Load(): rate limit must be non-negative with a burst of at least 1")
	}

	if len(cfg.JWTSecret) == 0 {
		log.Println("config.Load(): AUTH_JWT_SECRET is not set, /predict is open to anonymous clients")
	}
	return cfg, nil
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c Config) AllowAllOrigins() bool {
	for _, o := range c.AllowOrigins {
		if o == "*" {
			return true
		}
	}
	return len(c.AllowOrigins) == 0
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
