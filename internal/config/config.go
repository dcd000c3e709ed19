package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Receipt   ReceiptConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
	// ConfigFile is the .env file that was read, empty when only the environment was used
	ConfigFile string
}

type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       string
	Name       string
	User       string
	Password   string
	SSLMode    string
	Timezone   string
	SQLitePath string
	Seed       bool
}

type JWTConfig struct {
	Enabled     bool
	Secret      string
	ExpiryHours time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// ReceiptConfig controls how receipts are labelled and exported
type ReceiptConfig struct {
	StoreName        string
	StoreAddress     string
	StorePhone       string
	FallbackCustomer string
	DocumentFormat   string
}

// Load reads configuration from an optional .env file and the environment.
// Environment variables win over the file.
func Load() *Config {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit env file path
func LoadFile(path string) *Config {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	configFile := ""
	if path != "" {
		if err := v.ReadInConfig(); err == nil {
			configFile = v.ConfigFileUsed()
		}
	}

	// Set defaults
	v.SetDefault("APP_NAME", "receipt-api")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "receipts")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_SEED", false)
	v.SetDefault("SQLITE_PATH", "./data/receipts.db")
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS")
	v.SetDefault("CORS_ALLOWED_HEADERS", "")
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_DURATION", 60)
	v.SetDefault("RECEIPT_STORE_NAME", "My Store")
	v.SetDefault("RECEIPT_STORE_ADDRESS", "")
	v.SetDefault("RECEIPT_STORE_PHONE", "")
	v.SetDefault("RECEIPT_FALLBACK_CUSTOMER", "Consumidor Final")
	v.SetDefault("RECEIPT_DOCUMENT_FORMAT", "pdf")

	return &Config{
		App: AppConfig{
			Name:       v.GetString("APP_NAME"),
			Env:        v.GetString("APP_ENV"),
			Port:       v.GetString("APP_PORT"),
			Debug:      v.GetBool("APP_DEBUG"),
			ConfigFile: configFile,
		},
		Database: DatabaseConfig{
			Driver:     strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
			Host:       v.GetString("DB_HOST"),
			Port:       v.GetString("DB_PORT"),
			Name:       v.GetString("DB_NAME"),
			User:       v.GetString("DB_USER"),
			Password:   v.GetString("DB_PASSWORD"),
			SSLMode:    v.GetString("DB_SSL_MODE"),
			Timezone:   v.GetString("DB_TIMEZONE"),
			SQLitePath: v.GetString("SQLITE_PATH"),
			Seed:       v.GetBool("DB_SEED"),
		},
		JWT: JWTConfig{
			Enabled:     v.GetBool("AUTH_ENABLED"),
			Secret:      v.GetString("JWT_SECRET"),
			ExpiryHours: time.Duration(v.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			AllowedMethods: splitList(v.GetString("CORS_ALLOWED_METHODS")),
			AllowedHeaders: splitList(v.GetString("CORS_ALLOWED_HEADERS")),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: v.GetInt("RATE_LIMIT_DURATION"),
		},
		Receipt: ReceiptConfig{
			StoreName:        v.GetString("RECEIPT_STORE_NAME"),
			StoreAddress:     v.GetString("RECEIPT_STORE_ADDRESS"),
			StorePhone:       v.GetString("RECEIPT_STORE_PHONE"),
			FallbackCustomer: v.GetString("RECEIPT_FALLBACK_CUSTOMER"),
			DocumentFormat:   strings.ToLower(strings.TrimSpace(v.GetString("RECEIPT_DOCUMENT_FORMAT"))),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}

// splitList splits a comma separated value, dropping blanks
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
