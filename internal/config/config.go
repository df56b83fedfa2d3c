// Package config загружает конфигурацию сервиса из окружения и опционального .env через Viper.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config содержит конфигурацию приложения, прочитанную из окружения.
type Config struct {
	// HTTPAddr — адрес, который слушает HTTP-сервер (например, :8080).
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	// DatabaseURL — DSN PostgreSQL.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// SessionTTL — время жизни сессии в формате time.Duration (например, "24h").
	SessionTTL string `mapstructure:"SESSION_TTL"`
	// BcryptCost — стоимость bcrypt (4–31).
	BcryptCost int `mapstructure:"BCRYPT_COST"`
}

// Load читает .env (если есть), затем собирает и проверяет Config из окружения.
// Отсутствие .env не ошибка (например, в CI); переменные окружения важнее .env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // игнорируем отсутствие файла

	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("BCRYPT_COST", 12)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("config: HTTP_ADDR must be set")
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("config: DATABASE_URL must be set")
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, errors.New("config: BCRYPT_COST must be between 4 and 31")
	}

	return &cfg, nil
}

// SessionTTLDuration парсит SessionTTL как time.Duration. При пустом или
// некорректном значении возвращает 24 часа.
func (c *Config) SessionTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}
