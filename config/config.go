package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port            string
	DBName          string
	TmpDir          string // ingestion scratch space for uploaded assets
	OCRApiURL       string // remote OCR service; empty enables the offline fallback
	FeedbackLogPath string
	FeedbackCron    string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:            getEnv("PORT", "3000"),
		DBName:          getEnv("DB_NAME", "data/knowledge.sqlite"),
		TmpDir:          getEnv("TMP_DIR", ".tmp/ingestion"),
		OCRApiURL:       getEnv("OCR_API_URL", ""),
		FeedbackLogPath: getEnv("FEEDBACK_LOG_PATH", "data/feedback_log.json"),
		FeedbackCron:    getEnv("FEEDBACK_CRON", "@hourly"),
	}

	if AppConfig.OCRApiURL == "" {
		log.Println("Warning: OCR_API_URL not set. Image uploads fall back to plain-text reads.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
