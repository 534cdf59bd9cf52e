package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Storage driver names
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	// Storage
	StorageDriver string // "memory" (reference) or "postgres"
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string

	// Security
	JWTSecret     string
	AdminUsername string
	AdminPassword string

	// Application
	AppEnv   string
	AppPort  string
	LogLevel string

	// Rate Limiting
	RateLimitPerUser int
	RateLimitPerIP   int

	// Market prices used for profit/loss calculations
	EggPrice      float64
	FeedCostPerKg float64

	// AI provider
	GeminiAPIKey           string
	GeminiModel            string
	ProviderTimeoutSeconds int

	// SMS provider
	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioFromNumber   string
	DefaultCountryCode string

	// Telegram alert channel
	TelegramBotToken string
	TelegramChatID   int64

	// Temperature alert thresholds (Celsius, adult birds)
	TempMinC   float64
	TempMaxC   float64
	VetHotline string

	// OTP policy
	OTPLength        int
	OTPExpiryMinutes int
	OTPMaxAttempts   int
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		StorageDriver: getEnv("STORAGE_DRIVER", "memory"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "digifarm"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "digifarm_db"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),

		JWTSecret:     getEnv("JWT_SECRET_KEY", ""),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		AppEnv:   getEnv("APP_ENV", "development"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		RateLimitPerUser: getEnvInt("RATE_LIMIT_PER_USER", 60),
		RateLimitPerIP:   getEnvInt("RATE_LIMIT_PER_IP", 200),

		EggPrice:      getEnvFloat("EGG_PRICE", 5.00),
		FeedCostPerKg: getEnvFloat("FEED_COST_PER_KG", 40.00),

		GeminiAPIKey:           getEnv("GEMINI_API_KEY", ""),
		GeminiModel:            getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		ProviderTimeoutSeconds: getEnvInt("PROVIDER_TIMEOUT_SECONDS", 20),

		TwilioAccountSID:   getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:    getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber:   getEnv("TWILIO_PHONE_NUMBER", ""),
		DefaultCountryCode: getEnv("DEFAULT_COUNTRY_CODE", "+91"),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),

		TempMinC:   getEnvFloat("TEMP_MIN_C", 22.0),
		TempMaxC:   getEnvFloat("TEMP_MAX_C", 28.0),
		VetHotline: getEnv("VET_HOTLINE", "1800-XXX-XXXX"),

		OTPLength:        getEnvInt("OTP_LENGTH", 6),
		OTPExpiryMinutes: getEnvInt("OTP_EXPIRY_MINUTES", 10),
		OTPMaxAttempts:   getEnvInt("OTP_MAX_ATTEMPTS", 3),
	}

	chatIDStr := getEnv("TELEGRAM_CHAT_ID", "")
	if chatIDStr != "" {
		id, err := strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET_KEY must be at least 32 characters")
	}
	if c.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	if c.StorageDriver != StorageDriverMemory && c.StorageDriver != StorageDriverPostgres {
		return fmt.Errorf("STORAGE_DRIVER must be 'memory' or 'postgres'")
	}
	if c.StorageDriver == StorageDriverPostgres && c.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required when STORAGE_DRIVER=postgres")
	}
	if c.EggPrice < 0 || c.FeedCostPerKg < 0 {
		return fmt.Errorf("EGG_PRICE and FEED_COST_PER_KG must be non-negative")
	}
	if c.TempMinC >= c.TempMaxC {
		return fmt.Errorf("TEMP_MIN_C must be below TEMP_MAX_C")
	}
	return nil
}

func (c *Config) ValidateProductionSecurity() error {
	if c.AppEnv != "production" {
		return nil
	}

	if c.DBSSLMode != "require" && c.StorageDriver == StorageDriverPostgres {
		return fmt.Errorf("DB_SSLMODE must be 'require' in production")
	}
	if c.AdminPassword == "password123" {
		return fmt.Errorf("ADMIN_PASSWORD must be changed from default in production")
	}
	if c.JWTSecret == "your_jwt_secret_minimum_32_chars_here_change_this" {
		return fmt.Errorf("JWT_SECRET_KEY must be changed from default in production")
	}

	return nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) ProviderTimeout() time.Duration {
	return time.Duration(c.ProviderTimeoutSeconds) * time.Second
}

func (c *Config) OTPExpiry() time.Duration {
	return time.Duration(c.OTPExpiryMinutes) * time.Minute
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
