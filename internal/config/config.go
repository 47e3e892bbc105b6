package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Upload   UploadConfig
	Device   DeviceConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type SessionConfig struct {
	// SecretKey is carried for parity with the client contract but the
	// session token itself is opaque and never signature-verified.
	SecretKey string
	Expiry    time.Duration

	// PasswordHash, when set, gates every login behind a single shared
	// bcrypt hash. Empty means any password is accepted.
	PasswordHash string
}

type UploadConfig struct {
	MaxUploadSize     int64
	AllowedImageTypes []string
}

type DeviceConfig struct {
	ConnectDelay time.Duration
	ScanDelay    time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5000,http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Session: SessionConfig{
			SecretKey: getEnv("SESSION_SECRET_KEY", "dev-secret-key-change-in-production"),
			Expiry:    time.Duration(getEnvAsInt("SESSION_EXPIRE_HOURS", 24)) * time.Hour,

			PasswordHash: getEnv("SESSION_PASSWORD_HASH", ""),
		},
		Upload: UploadConfig{
			MaxUploadSize:     int64(getEnvAsInt("MAX_UPLOAD_SIZE", 10*1024*1024)),
			AllowedImageTypes: getEnvAsSlice("ALLOWED_IMAGE_TYPES", []string{"image/jpeg", "image/png", "image/gif", "image/webp"}),
		},
		Device: DeviceConfig{
			ConnectDelay: getEnvAsDuration("DEVICE_CONNECT_DELAY", time.Second),
			ScanDelay:    getEnvAsDuration("DEVICE_SCAN_DELAY", 2*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsSlice(key string, fallback []string) []string {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	parts := strings.Split(strValue, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
