package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port       string
	MongoURI   string
	DBName     string // main database: users, courses, modules, videos
	PassDBName string // credential database: password hashes and tokens
	JWTKey     string
	RefreshKey string
	SaltRound  int

	ResendAPIKey string
	EmailSender  string
	AppBaseURL   string // used to build verification and reset links
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:       getEnv("PORT", "8080"),
		MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:     getEnv("DB_NAME", "aeonaxy"),
		PassDBName: getEnv("PASS_DB_NAME", "aeonaxy-pass"),
		JWTKey:     getEnv("JWT_SECRET_KEY", "defaultSecret"),
		RefreshKey: getEnv("REFRESH_TOKEN_SECRET", "defaultSecret"),
		SaltRound:  getEnvInt("SALT_ROUND", 10),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		EmailSender:  getEnv("EMAIL_SENDER", "raj@updates.rajdwivedi.space"),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:8080"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.RefreshKey == "defaultSecret" {
		log.Println("Warning: Using default REFRESH_TOKEN_SECRET. Update it in your environment.")
	}
	if AppConfig.ResendAPIKey == "" {
		log.Println("Warning: RESEND_API_KEY is empty. Emails will not be delivered.")
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

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
