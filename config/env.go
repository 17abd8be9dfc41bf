package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is built once at startup and handed to every constructor.
// Nothing mutates it afterwards.
type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	DBDriver      string
	DatabaseURL   string
	MigrationsDir string

	JWTSecret string
	JWTExpiry time.Duration

	PasswordHasher string

	BaseURL        string
	AllowedOrigins []string
	UploadDir      string

	RedisURL      string
	RedisAddr     string
	RedisPassword string

	CloudinaryURL       string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

func Load() (*Config, error) {
	if os.Getenv("VERCEL") == "" {
		if err := godotenv.Load(); err != nil {
			logrus.Debug(".env file not found, using system environment variables")
		}
	}

	var expiry time.Duration
	if raw := os.Getenv("JWT_EXPIRY"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRY %q: %w", raw, err)
		}
		expiry = d
	}

	port := getEnv("PORT", getEnv("APP_PORT", "4000"))

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		Port:     port,
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DBDriver:      getEnv("DB_DRIVER", "postgres"),
		DatabaseURL:   buildDSN(),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "database/migration"),

		JWTSecret: getEnv("JWT_SECRET", "secret_ecom"),
		JWTExpiry: expiry,

		PasswordHasher: getEnv("PASSWORD_HASHER", "bcrypt"),

		BaseURL:        strings.TrimRight(getEnv("BASE_URL", "http://localhost:"+port), "/"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		UploadDir:      getEnv("UPLOAD_DIR", "./upload/images"),

		RedisURL:      os.Getenv("REDIS_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		CloudinaryURL:       os.Getenv("CLOUDINARY_URL"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getEnv("SMTP_PORT", "587"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: os.Getenv("SMTP_FROM"),
	}

	if cfg.DBDriver != "postgres" && cfg.DBDriver != "memory" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.PasswordHasher != "bcrypt" && cfg.PasswordHasher != "argon2" {
		return nil, fmt.Errorf("unsupported PASSWORD_HASHER %q", cfg.PasswordHasher)
	}
	if len(cfg.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("ALLOWED_ORIGINS has no origins")
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisAddr != ""
}

func (c *Config) CloudinaryEnabled() bool {
	return c.CloudinaryURL != "" ||
		(c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != "")
}

func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

func buildDSN() string {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		return databaseURL
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "shopper"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
