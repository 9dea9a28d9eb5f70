package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Hotel platform API.
	BackendAPIURL  string `mapstructure:"BACKEND_API_URL"`
	BackendTimeout int    `mapstructure:"BACKEND_TIMEOUT_SECONDS"`
	Currency       string `mapstructure:"CURRENCY"`

	// Browser origin allowed to send credentialed requests.
	FrontendOrigin string `mapstructure:"FRONTEND_ORIGIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`

	// Session settings.
	SessionCookieName string `mapstructure:"SESSION_COOKIE_NAME"`
	SessionTTLHours   int    `mapstructure:"SESSION_TTL_HOURS"`
	// Access tokens expiring within this window are refreshed proactively.
	TokenRefreshSkewSeconds int `mapstructure:"TOKEN_REFRESH_SKEW_SECONDS"`

	// Bank-transfer details encoded into payment QR codes.
	TransferBankCode    string `mapstructure:"TRANSFER_BANK_CODE"`
	TransferAccountNo   string `mapstructure:"TRANSFER_ACCOUNT_NO"`
	TransferAccountName string `mapstructure:"TRANSFER_ACCOUNT_NAME"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "3000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("BACKEND_API_URL", "http://localhost:8000")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 15)
	viper.SetDefault("CURRENCY", "VND")
	viper.SetDefault("FRONTEND_ORIGIN", "http://localhost:3001")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_CACHE_DB", 1)
	viper.SetDefault("SESSION_COOKIE_NAME", "staybook_session")
	viper.SetDefault("SESSION_TTL_HOURS", 168)
	viper.SetDefault("TOKEN_REFRESH_SKEW_SECONDS", 30)
	viper.SetDefault("TRANSFER_BANK_CODE", "VCB")
	viper.SetDefault("TRANSFER_ACCOUNT_NO", "")
	viper.SetDefault("TRANSFER_ACCOUNT_NAME", "STAYBOOK HOTELS")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// BackendRequestTimeout returns the HTTP client timeout for platform calls.
func BackendRequestTimeout() time.Duration {
	return time.Duration(AppConfig.BackendTimeout) * time.Second
}

// SessionTTL returns the lifetime of a stored session.
func SessionTTL() time.Duration {
	return time.Duration(AppConfig.SessionTTLHours) * time.Hour
}

// TokenRefreshSkew returns the proactive-refresh window for access tokens.
func TokenRefreshSkew() time.Duration {
	return time.Duration(AppConfig.TokenRefreshSkewSeconds) * time.Second
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
