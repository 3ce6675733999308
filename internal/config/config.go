package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env           string
	Port          int
	DBURL         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// notification transports
	SMTPHost      string
	SMTPPort      int
	SMTPFrom      string
	SMTPUser      string
	SMTPPassword  string
	SMSGatewayURL string
	SMSAPIKey     string
	SMSSender     string

	AllowedOrigins []string
	DefaultLocale  string
	OTLPEndpoint   string
}

func Load() Config {
	// .env is optional, real deployments inject the environment directly
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "dev")
	port := getEnvInt("PORT", 8080)
	dbURL := buildDBURL()

	return Config{
		Env:           env,
		Port:          port,
		DBURL:         dbURL,
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		SMTPHost:      getEnv("SMTP_HOST", "localhost"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		SMTPFrom:      getEnv("SMTP_FROM", "no-reply@seminarhub.local"),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMSGatewayURL: getEnv("SMS_GATEWAY_URL", ""),
		SMSAPIKey:     getEnv("SMS_API_KEY", ""),
		SMSSender:     getEnv("SMS_SENDER", "SEMINAR"),

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		DefaultLocale:  getEnv("DEFAULT_LOCALE", "th"),
		OTLPEndpoint:   getEnv("OTLP_ENDPOINT", ""),
	}
}

func buildDBURL() string {
	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "seminarhub")
	pass := getEnv("DB_PASSWORD", "seminarhub")
	name := getEnv("DB_NAME", "seminarhub")
	ssl := getEnv("DB_SSLMODE", "disable")

	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=" + ssl
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")

	out := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)

		if p != "" {
			out = append(out, p)
		}
	}

	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			fmt.Println(err)
			return fallback
		}

		return num
	}
	return fallback
}
