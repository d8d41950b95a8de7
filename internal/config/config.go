package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/spicekitchen/backend/internal/models"
)

type Config struct {
	DB_HOST             string
	DB_PORT             string
	DB_USER             string
	DB_PASSWORD         string
	DB_NAME             string
	ES_URL              string
	ES_USER             string
	ES_PASSWORD         string
	ES_INDEX            string
	KAFKA_ADDRESS       string
	JWT_SECRET          string
	ADMIN_PASSWORD_HASH string
	WHATSAPP_NUMBER     string
	LOG_LEVEL           string
	HTTP_ADDR           string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		DB_HOST:             getEnv("DB_HOST", "localhost"),
		DB_PORT:             getEnv("DB_PORT", "5432"),
		DB_USER:             getEnv("DB_USER", "postgres"),
		DB_PASSWORD:         os.Getenv("DB_PASSWORD"),
		DB_NAME:             getEnv("DB_NAME", "spicekitchen"),
		ES_URL:              os.Getenv("ES_URL"),
		ES_USER:             os.Getenv("ES_USER"),
		ES_PASSWORD:         os.Getenv("ES_PASSWORD"),
		ES_INDEX:            getEnv("ES_INDEX", "menu"),
		KAFKA_ADDRESS:       os.Getenv("KAFKA_ADDRESS"),
		JWT_SECRET:          os.Getenv("JWT_SECRET"),
		ADMIN_PASSWORD_HASH: os.Getenv("ADMIN_PASSWORD_HASH"),
		WHATSAPP_NUMBER:     getEnv("WHATSAPP_NUMBER", "919310153299"),
		LOG_LEVEL:           getEnv("LOG_LEVEL", "info"),
		HTTP_ADDR:           getEnv("HTTP_ADDR", ":8080"),
	}

	return config, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func InitDB(configuration *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		configuration.DB_USER,
		configuration.DB_PASSWORD,
		configuration.DB_HOST,
		configuration.DB_PORT,
		configuration.DB_NAME,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to db: %w", err)
	}
	if err := db.AutoMigrate(&models.MenuItem{}, &models.Review{}); err != nil {
		return nil, fmt.Errorf("cannot run migration: %w", err)
	}
	return db, nil
}
