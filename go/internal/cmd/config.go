package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/mcdev12/clubsite/go/internal/dbconfig"
)

// Config is the API server configuration read from the environment
type Config struct {
	DB dbconfig.Config

	Port        string `env:"PORT" envDefault:"8080"`
	MediaURL    string `env:"MEDIA_URL" envDefault:"/media"`
	TimeZone    string `env:"TIME_ZONE" envDefault:"Asia/Tashkent"`
	PageSize    int    `env:"PAGE_SIZE" envDefault:"10"`
	MaxPageSize int    `env:"MAX_PAGE_SIZE" envDefault:"100"`

	CacheBackend  string        `env:"CACHE_BACKEND" envDefault:"memory"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"120s"`
	CachePrefix   string        `env:"CACHE_PREFIX" envDefault:"clubsite"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`

	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	switch cfg.CacheBackend {
	case "memory", "redis":
	default:
		return Config{}, fmt.Errorf("unknown CACHE_BACKEND %q", cfg.CacheBackend)
	}
	if cfg.PageSize <= 0 {
		return Config{}, fmt.Errorf("PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}
	return cfg, nil
}

// location resolves TIME_ZONE, the zone dates are rendered in
func (c Config) location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}
