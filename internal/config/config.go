package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Shop      ShopConfig
	Owner     OwnerConfig
	Printer   PrinterConfig
	Store     StoreConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

// ShopConfig carries the shop identity and pricing constants printed on
// receipts and applied to every cut.
type ShopConfig struct {
	Name          string
	Address       string
	Phone         string
	ReceiptPrefix string
	ServiceFee    int64 // fixed per-cut fee in rupiah
}

// OwnerConfig gates destructive operations (delete, reprint) behind a single
// shared passcode. The passcode is bcrypt-hashed at startup and a successful
// login yields a short-lived token.
type OwnerConfig struct {
	Passcode    string
	TokenSecret string
	TokenExpiry time.Duration
}

type PrinterConfig struct {
	Type      string // "usb", "network", "spool", or "none"
	USBPath   string
	Address   string
	CharWidth int // characters per line, 32 for 58mm paper
}

// StoreConfig bounds ledger store calls: every load/save gets a deadline and
// a failed call is retried once after the backoff before giving up.
type StoreConfig struct {
	Timeout      time.Duration
	RetryBackoff time.Duration
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

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "kacapos")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "kacapos")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Jakarta")
	viper.SetDefault("SHOP_NAME", "Kaca Jaya Makmur")
	viper.SetDefault("SHOP_ADDRESS", "Jl. Raya Bogor KM 28 No. 12")
	viper.SetDefault("SHOP_PHONE", "0812-9000-1234")
	viper.SetDefault("SHOP_RECEIPT_PREFIX", "KJM")
	viper.SetDefault("SHOP_SERVICE_FEE", 500)
	viper.SetDefault("OWNER_PASSCODE", "change-this-passcode")
	viper.SetDefault("OWNER_TOKEN_SECRET", "change-this-secret-in-production")
	viper.SetDefault("OWNER_TOKEN_EXPIRY_MINUTES", 30)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_CHAR_WIDTH", 32)
	viper.SetDefault("STORE_TIMEOUT_SECONDS", 5)
	viper.SetDefault("STORE_RETRY_BACKOFF_MS", 300)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		Shop: ShopConfig{
			Name:          viper.GetString("SHOP_NAME"),
			Address:       viper.GetString("SHOP_ADDRESS"),
			Phone:         viper.GetString("SHOP_PHONE"),
			ReceiptPrefix: viper.GetString("SHOP_RECEIPT_PREFIX"),
			ServiceFee:    viper.GetInt64("SHOP_SERVICE_FEE"),
		},
		Owner: OwnerConfig{
			Passcode:    viper.GetString("OWNER_PASSCODE"),
			TokenSecret: viper.GetString("OWNER_TOKEN_SECRET"),
			TokenExpiry: time.Duration(viper.GetInt("OWNER_TOKEN_EXPIRY_MINUTES")) * time.Minute,
		},
		Printer: PrinterConfig{
			Type:      viper.GetString("PRINTER_TYPE"),
			USBPath:   viper.GetString("PRINTER_USB_PATH"),
			Address:   viper.GetString("PRINTER_ADDRESS"),
			CharWidth: viper.GetInt("PRINTER_CHAR_WIDTH"),
		},
		Store: StoreConfig{
			Timeout:      time.Duration(viper.GetInt("STORE_TIMEOUT_SECONDS")) * time.Second,
			RetryBackoff: time.Duration(viper.GetInt("STORE_RETRY_BACKOFF_MS")) * time.Millisecond,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
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
