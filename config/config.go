package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Remote admin API endpoints. The auth and collection URLs are
	// environment injected; the services endpoint defaults to the fixed
	// production URL.
	LoginURL    string `mapstructure:"LOGIN_URL"`
	OTPURL      string `mapstructure:"OTP_URL"`
	UsersURL    string `mapstructure:"USERS_URL"`
	BookingsURL string `mapstructure:"BOOKINGS_URL"`
	ServicesURL string `mapstructure:"SERVICES_URL"`

	// SessionFile overrides where the persisted session entry lives.
	SessionFile string `mapstructure:"SESSION_FILE"`

	// Dev server configuration.
	DevPort           string `mapstructure:"DEV_PORT"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AdminEmail        string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword     string `mapstructure:"ADMIN_PASSWORD"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
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
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOGIN_URL", "http://localhost:8080/auth/login")
	viper.SetDefault("OTP_URL", "http://localhost:8080/auth/verify-otp")
	viper.SetDefault("USERS_URL", "http://localhost:8080/admin/users")
	viper.SetDefault("BOOKINGS_URL", "http://localhost:8080/admin/bookings")
	viper.SetDefault("SERVICES_URL", "https://spana-server-5bhu.onrender.com/admin/services")
	viper.SetDefault("SESSION_FILE", "")
	viper.SetDefault("DEV_PORT", "8080")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("ADMIN_EMAIL", "admin@spana.local")
	viper.SetDefault("ADMIN_PASSWORD", "spana-admin")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// SessionFilePath resolves where the persisted session entry is stored:
// the configured override if set, otherwise the user config directory.
func SessionFilePath() string {
	if AppConfig.SessionFile != "" {
		return AppConfig.SessionFile
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "auth-storage.json"
	}
	return filepath.Join(dir, "spana-admin", "auth-storage.json")
}
