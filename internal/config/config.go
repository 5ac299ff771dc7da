package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Ayross-237/Connect4/internal/game"
)

type Config struct {
	BoardSize      int           `env:"CONNECT_BOARD_SIZE" envDefault:"8"`
	WinLength      int           `env:"CONNECT_WIN_LENGTH" envDefault:"4"`
	PostgresURL    string        `env:"POSTGRES_URL"`
	KafkaBrokers   []string      `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic     string        `env:"KAFKA_TOPIC" envDefault:"game-events"`
	KafkaGroupID   string        `env:"KAFKA_GROUP_ID" envDefault:"analytics-consumer"`
	Port           string        `env:"PORT"`
	Addr           string        `env:"ADDR" envDefault:":8080"`
	StatsInterval  time.Duration `env:"STATS_INTERVAL" envDefault:"30s"`
	StandingsLimit int           `env:"STANDINGS_LIMIT" envDefault:"10"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	return Parse()
}

// Parse reads configuration from the process environment only.
func Parse() (*Config, error) {
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Rules(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Rules returns the validated game rules.
func (c *Config) Rules() (game.Rules, error) {
	r := game.Rules{Size: c.BoardSize, RequiredLength: c.WinLength}
	if err := r.Validate(); err != nil {
		return game.Rules{}, err
	}
	return r, nil
}

// ListenAddr prefers PORT (set by most hosting platforms) over ADDR.
func (c *Config) ListenAddr() string {
	if c.Port != "" {
		return ":" + c.Port
	}
	return c.Addr
}
