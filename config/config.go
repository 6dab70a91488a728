package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds the static settings the server needs at startup.
// Values are read from config/env/<GO_ENV>.env and the process environment.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":5000"`                // Listen address
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Secret for session tokens
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // MongoDB connection string
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"farmx"`         // Database name
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Allowed origins, comma separated (* = all)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Allow credentialed requests
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Max requests per window (0 = disabled)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"900"`        // Window size in seconds
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Toggle rate limiting

	// SMTP relay (OTP mail, purchase requests, moderation notices)
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`
	AdminEmail   string `env:"ADMIN_EMAIL"` // Fallback recipient for purchase requests

	// Object storage (S3-compatible)
	StorageEndpoint  string `env:"STORAGE_ENDPOINT"`
	StorageRegion    string `env:"STORAGE_REGION" envDefault:"us-east-1"`
	StorageBucket    string `env:"STORAGE_BUCKET"`
	StorageAccessKey string `env:"STORAGE_ACCESS_KEY"`
	StorageSecretKey string `env:"STORAGE_SECRET_KEY"`
	StoragePublicURL string `env:"STORAGE_PUBLIC_URL"` // Base URL for public object links
	StorageUsePath   bool   `env:"STORAGE_USE_PATH_STYLE" envDefault:"true"`

	// Optional default admin account created at first start
	DefaultAdminEmail    string `env:"DEFAULT_ADMIN_EMAIL"`
	DefaultAdminPassword string `env:"DEFAULT_ADMIN_PASSWORD"`
	DefaultAdminName     string `env:"DEFAULT_ADMIN_NAME" envDefault:"admin"`
}

// getEnvPath returns the env file path for the current environment.
// It walks up from the working directory until it finds config/env.
func getEnvPath() string {
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		fmt.Printf("cannot determine working directory: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", environment))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig loads the configuration from the env file and the environment.
// The env file is optional: in containers everything comes from the process
// environment. Missing required settings make parsing fail.
func NewConfig() *Configuration {
	if envPath := getEnvPath(); envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("no env file loaded from %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("failed to parse configuration: %+v\n", err)
		return nil
	}

	return &cfg
}
