// Package config builds runtime configuration from environment variables so
// main stays lean.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr       string `env:"TESSERA_ADDR" envDefault:":8080"`
	AdminToken string `env:"TESSERA_ADMIN_TOKEN" envDefault:"dev-admin-token"`
}

// Postgres captures the asset/record database settings. Empty URL means the
// in-memory stores are used (dev and tests).
type Postgres struct {
	URL string `env:"TESSERA_POSTGRES_URL"`
}

// Redis captures the risk assessment cache settings. Empty URL disables the
// cache.
type Redis struct {
	URL          string        `env:"TESSERA_REDIS_URL"`
	PoolSize     int           `env:"TESSERA_REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"TESSERA_REDIS_MIN_IDLE" envDefault:"2"`
	DialTimeout  time.Duration `env:"TESSERA_REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"TESSERA_REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"TESSERA_REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// Kafka captures the lifecycle event publisher settings. Empty broker list
// means events go to the in-memory publisher.
type Kafka struct {
	Brokers         []string `env:"TESSERA_KAFKA_BROKERS" envSeparator:","`
	Topic           string   `env:"TESSERA_KAFKA_TOPIC" envDefault:"tessera.lifecycle"`
	TopicPartitions int32    `env:"TESSERA_KAFKA_TOPIC_PARTITIONS" envDefault:"3"`
}

// Sources captures the external data collaborator endpoints. Empty URLs mean
// the static fallbacks are used.
type Sources struct {
	MarketDataURL string        `env:"TESSERA_MARKET_DATA_URL"`
	WeatherURL    string        `env:"TESSERA_WEATHER_URL"`
	RandomnessURL string        `env:"TESSERA_RANDOMNESS_URL"`
	Timeout       time.Duration `env:"TESSERA_SOURCE_TIMEOUT" envDefault:"5s"`
}

// Config is the full runtime configuration.
type Config struct {
	Server   Server
	Postgres Postgres
	Redis    Redis
	Kafka    Kafka
	Sources  Sources
}

// FromEnv parses the configuration from the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
