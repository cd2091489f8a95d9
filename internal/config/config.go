package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the server needs at startup.
type Config struct {
	AppPort          string
	DatabaseDriver   string
	DatabaseDSN      string
	DatabaseLogLevel string
	JWTSecret        string
	JWTTTL           time.Duration
	RabbitMQURL      string
	PublishTimeout   time.Duration
	CORSAllowOrigins string
	Strict           bool
	ShutdownTimeout  time.Duration
}

// Load reads an optional .env file and then the environment.
// Values set in the real environment win over the file.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	return FromViper(viper.New())
}

// FromViper applies defaults to v and reads the config from it.
func FromViper(v *viper.Viper) Config {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=toko port=5432 sslmode=disable")
	v.SetDefault("DATABASE_LOG_LEVEL", "warn")
	v.SetDefault("JWT_SECRET", "change_me_jwt_secret")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_PUBLISH_TIMEOUT", "2s")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("API_STRICT", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", "30s")
	v.AutomaticEnv()

	return Config{
		AppPort:          v.GetString("APP_PORT"),
		DatabaseDriver:   strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		DatabaseLogLevel: strings.ToLower(v.GetString("DATABASE_LOG_LEVEL")),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTTTL:           v.GetDuration("JWT_TTL"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		PublishTimeout:   v.GetDuration("RABBITMQ_PUBLISH_TIMEOUT"),
		CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		Strict:           v.GetBool("API_STRICT"),
		ShutdownTimeout:  v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
}
