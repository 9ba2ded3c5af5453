// Package config provides configuration loading and management for the Smileline application.
package config

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/roguepikachu/smileline/pkg/logger"
)

// Store kinds accepted by CONTACT_STORE and SCHEDULE_STORE.
const (
	StoreMemory   = "memory"
	StoreStatic   = "static"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config holds environment configuration for the Smileline application.
type Config struct {
	// Port is the port on which the HTTP server runs.
	Port string `env:"SMILELINE_PORT"`

	PostgresURL      string `env:"POSTGRES_URL"`
	PostgresHost     string `env:"POSTGRES_HOST"`
	PostgresPort     string `env:"POSTGRES_PORT"`
	PostgresUser     string `env:"POSTGRES_USER"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostgresDB       string `env:"POSTGRES_DB"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`

	ContactStore     string        `env:"CONTACT_STORE" envDefault:"memory"`
	ScheduleStore    string        `env:"SCHEDULE_STORE" envDefault:"static"`
	ScheduleCacheTTL time.Duration `env:"SCHEDULE_CACHE_TTL" envDefault:"5m"`

	// OfficeTimezone is an IANA name; empty means the host's local zone.
	OfficeTimezone string `env:"OFFICE_TIMEZONE"`

	PracticeName       string `env:"PRACTICE_NAME" envDefault:"Smileline Dental"`
	PracticePhone      string `env:"PRACTICE_PHONE"`
	PracticeEmail      string `env:"PRACTICE_EMAIL"`
	PracticeStreet     string `env:"PRACTICE_STREET"`
	PracticeCity       string `env:"PRACTICE_CITY"`
	PracticeRegion     string `env:"PRACTICE_REGION"`
	PracticePostalCode string `env:"PRACTICE_POSTAL_CODE"`
	PracticeCountry    string `env:"PRACTICE_COUNTRY"`
	SiteURL            string `env:"SITE_URL" envDefault:"http://localhost:8080"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	AdminJWTSecret string   `env:"ADMIN_JWT_SECRET"`

	KafkaBrokers      []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaContactTopic string   `env:"KAFKA_CONTACT_TOPIC" envDefault:"contact-submissions"`

	ContactRateLimit  int           `env:"CONTACT_RATE_LIMIT" envDefault:"5"`
	ContactRateWindow time.Duration `env:"CONTACT_RATE_WINDOW" envDefault:"10m"`
	SpamPatterns      []string      `env:"SPAM_PATTERNS" envSeparator:","`
}

// Conf holds the global configuration for the Smileline application.
var Conf Config

func loadDotEnv() {
	// Load .env files listed in DOTENV_PATHS into the environment.
	// Does not override existing environ variable
	path := os.Getenv("DOTENV_PATHS")
	if path != "" {
		err := godotenv.Load(strings.Split(path, ",")...)
		if err != nil {
			logger.Fatal(context.Background(), err.Error())
		}
	}
}

// InitConf initializes the global configuration by loading environment variables and .env files.
func InitConf() {
	loadDotEnv()

	if err := env.Parse(&Conf); err != nil {
		logger.Fatal(context.Background(), err.Error())
	}
}

// Location resolves OfficeTimezone, falling back to time.Local.
func (c Config) Location() *time.Location {
	if c.OfficeTimezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.OfficeTimezone)
	if err != nil {
		logger.Warn(context.Background(), "unknown OFFICE_TIMEZONE %q, using local time: %v", c.OfficeTimezone, err)
		return time.Local
	}
	return loc
}
