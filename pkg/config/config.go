package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ServerConfiguration holds the HTTP server and token settings.
type ServerConfiguration struct {
	Port          string        `env:"PORT" envDefault:"8000"`
	TokenSecret   string        `env:"ACCESS_TOKEN_SECRET,required,notEmpty"`
	TokenTTL      time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`
	ProtectWrites bool          `env:"PROTECT_WRITES" envDefault:"false"`
	HealthAddr    string        `env:"HEALTH_ADDR" envDefault:":50051"`
}

// DatabaseConfiguration holds the postgres settings.
type DatabaseConfiguration struct {
	URL          string `env:"DATABASE_URL,required,notEmpty"`
	MaxOpenConns int    `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns int    `env:"DATABASE_MAX_IDLE_CONNS" envDefault:"5"`
}

// BucketConfiguration holds the object store settings.
type BucketConfiguration struct {
	Name         string `env:"AWS_BUCKET_NAME,required,notEmpty"`
	Region       string `env:"AWS_BUCKET_REGION,required,notEmpty"`
	AccessKey    string `env:"AWS_ACCESS_KEY,required,notEmpty"`
	AccessSecret string `env:"AWS_SECRET_ACCESS_KEY,required,notEmpty"`
	Endpoint     string `env:"AWS_ENDPOINT"`
	LogBucket    string `env:"AWS_LOG_BUCKET"`

	LogUploadInterval time.Duration `env:"LOG_UPLOAD_INTERVAL" envDefault:"1h"`
}

// RedisConfiguration configuration struct.
type RedisConfiguration struct {
	Host     string        `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string        `env:"REDIS_PORT" envDefault:"6379"`
	Password string        `env:"REDIS_PASSWORD"`
	LockTTL  time.Duration `env:"LOCK_TTL" envDefault:"30s"`
}

// Config is the full application configuration.
type Config struct {
	Environment string `env:"ENVIRONMENT"`

	Server   ServerConfiguration
	Database DatabaseConfiguration
	Bucket   BucketConfiguration
	Redis    RedisConfiguration
}

// Load reads the .env file (unless running on docker) and parses the environment.
func Load() (*Config, error) {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		// A missing .env is fine, the variables may already be exported.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("couldn't load the .env file: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("couldn't parse the environment: %w", err)
	}

	return &cfg, nil
}

// RedisAddr returns the host:port pair of the redis server.
func (c *Config) RedisAddr() string {
	return c.Redis.Host + ":" + c.Redis.Port
}
