// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront backend
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	Session  SessionConfig
	Checkout CheckoutConfig
	Security SecurityConfig
	Email    EmailConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration, including the store
// identity printed on receipts and invoices
type AppConfig struct {
	Name          string
	Version       string
	Environment   string
	Debug         bool
	StoreName     string
	StoreEmail    string
	StorePhone    string
	StoreWhatsApp string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// RedisConfig contains Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// SessionConfig contains shopper session configuration
type SessionConfig struct {
	Backend string        // "redis" or "memory"
	TTL     time.Duration // cart and order retention per session
}

// CheckoutConfig contains checkout behavior configuration
type CheckoutConfig struct {
	// PhonePrefix is prepended to customer phone numbers on order records.
	// The store ships within Kenya, hence the +254 default.
	PhonePrefix string
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	RateLimitPerMinute int
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
}

// EmailConfig contains order-confirmation email configuration.
// Email sending is disabled when SMTPHost is empty.
type EmailConfig struct {
	FromEmail string
	FromName  string
	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:          getEnv("APP_NAME", "Storefront Backend"),
			Version:       getEnv("APP_VERSION", "1.0.0"),
			Environment:   getEnv("APP_ENV", "development"),
			Debug:         getEnvAsBool("APP_DEBUG", true),
			StoreName:     getEnv("STORE_NAME", "Prestige Weddings Kenya"),
			StoreEmail:    getEnv("STORE_EMAIL", "info@prestigeweddingskenya.com"),
			StorePhone:    getEnv("STORE_PHONE", "+254 712 345 678"),
			StoreWhatsApp: getEnv("STORE_WHATSAPP", "+254 712 345 678"),
		},
		Server: ServerConfig{
			Port:         getEnv("APP_PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		Session: SessionConfig{
			Backend: getEnv("SESSION_BACKEND", "redis"),
			TTL:     getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		},
		Checkout: CheckoutConfig{
			PhonePrefix: getEnv("CHECKOUT_PHONE_PREFIX", "+254"),
		},
		Security: SecurityConfig{
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 100),
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept"}),
		},
		Email: EmailConfig{
			FromEmail: getEnv("FROM_EMAIL", "noreply@prestigeweddingskenya.com"),
			FromName:  getEnv("FROM_NAME", "Prestige Weddings Kenya"),
			SMTPHost:  getEnv("SMTP_HOST", ""),
			SMTPPort:  getEnvAsInt("SMTP_PORT", 587),
			SMTPUser:  getEnv("SMTP_USER", ""),
			SMTPPass:  getEnv("SMTP_PASS", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	switch c.Session.Backend {
	case "redis":
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is required when SESSION_BACKEND=redis")
		}
	case "memory":
	default:
		return fmt.Errorf("SESSION_BACKEND must be \"redis\" or \"memory\", got %q", c.Session.Backend)
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	if c.Checkout.PhonePrefix == "" {
		return fmt.Errorf("CHECKOUT_PHONE_PREFIX is required")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// UsesRedis returns true if any subsystem needs a Redis connection
func (c *Config) UsesRedis() bool {
	return c.Session.Backend == "redis"
}

// EmailEnabled returns true if order-confirmation email is configured
func (c *Config) EmailEnabled() bool {
	return c.Email.SMTPHost != ""
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
