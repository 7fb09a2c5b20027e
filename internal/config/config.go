package config

import (
	"os"
	"strings"
)

type Config struct {
	Port             string
	MongoURI         string
	MongoDB          string
	RabbitMQURI      string
	RabbitMQExchange string
	CORSOrigins      []string
}

func New() *Config {
	return &Config{
		Port:             getEnv("PORT", "8001"),
		MongoURI:         getEnv("MONGO_URI", ""),
		MongoDB:          getEnv("MONGO_DB", "prepquiz"),
		RabbitMQURI:      getEnv("RABBITMQ_URI", ""),
		RabbitMQExchange: getEnv("RABBITMQ_EXCHANGE", ""),
		CORSOrigins:      strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
