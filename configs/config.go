package configs

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPass         string
	DBName         string
	JWTSecret      string
	RedisAddr      string
	KafkaBrokerURL string
	KafkaTopic     string
	OTLPEndpoint   string
	Env            string
}

func LoadConfig() *Config {
	// Local development keeps settings in .env; containers inject real env.
	_ = godotenv.Load()

	return &Config{
		AppPort:        getEnv("APP_PORT", ":8080"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPass:         getEnv("DB_PASS", "postgres"),
		DBName:         getEnv("DB_NAME", "chitrashala"),
		JWTSecret:      getEnv("JWT_SECRET", "replace-this-with-a-strong-secret"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		KafkaBrokerURL: os.Getenv("KAFKA_BROKER_URL"),
		KafkaTopic:     getEnv("KAFKA_TOPIC", "posts"),
		OTLPEndpoint:   os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		Env:            getEnv("ENV", "dev"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName,
	)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
