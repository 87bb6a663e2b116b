package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "chargecalc/backend/libs/config"
)

const (
	defaultPort            = "5001"
	defaultTariffCacheTTL  = 5 * time.Minute
	defaultUnitPrice       = 0.16428
	defaultBatterySizeKWh  = 26.8
	defaultStartPercentage = 20
	defaultEndPercentage   = 80
)

// Config defines calculator service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"CALCULATOR_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN string `yaml:"dsn" env:"CALCULATOR_POSTGRES_DSN"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr" env:"CALCULATOR_REDIS_ADDR"`
		Password string `yaml:"password" env:"CALCULATOR_REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"CALCULATOR_REDIS_DB"`
		TTL      int    `yaml:"ttlSeconds" env:"CALCULATOR_TARIFF_CACHE_TTL"`
	} `yaml:"redis"`
	Defaults Defaults `yaml:"defaults"`
}

// Defaults pre-fills the form and backs the tariff fallback.
type Defaults struct {
	BatterySizeKWh     float64 `yaml:"batterySizeKwh" env:"CALCULATOR_DEFAULT_BATTERY_KWH"`
	StartPercentage    float64 `yaml:"startPercentage" env:"CALCULATOR_DEFAULT_START_PCT"`
	EndPercentage      float64 `yaml:"endPercentage" env:"CALCULATOR_DEFAULT_END_PCT"`
	UnitPriceBeforeTax float64 `yaml:"unitPriceBeforeTax" env:"CALCULATOR_DEFAULT_UNIT_PRICE"`
}

// Load configuration from file/env. Database and redis are optional.
func Load() (*Config, error) {
	cfg := &Config{
		Defaults: Defaults{
			BatterySizeKWh:     defaultBatterySizeKWh,
			StartPercentage:    defaultStartPercentage,
			EndPercentage:      defaultEndPercentage,
			UnitPriceBeforeTax: defaultUnitPrice,
		},
	}
	cfg.HTTP.Port = defaultPort

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	d := c.Defaults
	if d.BatterySizeKWh <= 0 {
		return errors.New("config: default battery size must be positive")
	}
	if d.StartPercentage < 0 || d.EndPercentage > 100 || d.EndPercentage <= d.StartPercentage {
		return fmt.Errorf("config: default percentages %g-%g out of order", d.StartPercentage, d.EndPercentage)
	}
	if d.UnitPriceBeforeTax <= 0 {
		return errors.New("config: default unit price must be positive")
	}
	return nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = defaultPort
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// DatabaseEnabled reports whether tariffs should be read from postgres.
func (c *Config) DatabaseEnabled() bool {
	return strings.TrimSpace(c.Database.DSN) != ""
}

// CacheEnabled reports whether tariffs should be cached in redis.
func (c *Config) CacheEnabled() bool {
	return strings.TrimSpace(c.Redis.Addr) != ""
}

// TariffCacheTTL returns ttl as duration.
func (c *Config) TariffCacheTTL() time.Duration {
	if c.Redis.TTL <= 0 {
		return defaultTariffCacheTTL
	}
	return time.Duration(c.Redis.TTL) * time.Second
}
