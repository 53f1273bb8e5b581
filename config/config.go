package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Comma-separated proxy IPs/CIDRs whose forwarded headers are believed.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`

	// Store selection: "mongo", "postgres" or "memory".
	StoreDriver   string        `mapstructure:"STORE_DRIVER"`
	StoreTimeout  time.Duration `mapstructure:"STORE_TIMEOUT"`
	BookingsTable string        `mapstructure:"BOOKINGS_TABLE"`

	// MongoDB configuration.
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// PostgreSQL configuration.
	PostgresDSN string `mapstructure:"POSTGRES_DSN"`

	// Redis configuration.
	RedisEnabled  bool   `mapstructure:"REDIS_ENABLED"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Booking rules and presentation.
	WindowStart      string        `mapstructure:"WINDOW_START"`
	WindowEnd        string        `mapstructure:"WINDOW_END"`
	PendingTTL       time.Duration `mapstructure:"PENDING_TTL"`
	MobileBreakpoint int           `mapstructure:"MOBILE_BREAKPOINT"`
	CalendarLocale   string        `mapstructure:"CALENDAR_LOCALE"`

	// Reminders.
	RemindersEnabled bool          `mapstructure:"REMINDERS_ENABLED"`
	ReminderLead     time.Duration `mapstructure:"REMINDER_LEAD"`

	HealthCron string `mapstructure:"HEALTH_CRON"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real deployments pass the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("TRUSTED_PROXIES", []string{})
	viper.SetDefault("STORE_DRIVER", "mongo")
	viper.SetDefault("STORE_TIMEOUT", 5*time.Second)
	viper.SetDefault("BOOKINGS_TABLE", "bookings")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "classbook")
	viper.SetDefault("POSTGRES_DSN", "")
	viper.SetDefault("REDIS_ENABLED", true)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("WINDOW_START", "07:00")
	viper.SetDefault("WINDOW_END", "18:00")
	viper.SetDefault("PENDING_TTL", 10*time.Minute)
	viper.SetDefault("MOBILE_BREAKPOINT", 768)
	viper.SetDefault("CALENDAR_LOCALE", "pt-br")
	viper.SetDefault("REMINDERS_ENABLED", false)
	viper.SetDefault("REMINDER_LEAD", 30*time.Minute)
	viper.SetDefault("HEALTH_CRON", "@every 60s")

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
