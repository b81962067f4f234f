// Package config собирает конфигурацию сервиса из флагов командной строки и переменных окружения.
package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
)

// Значения по умолчанию
const (
	DefaultServerAddress   = ":8080"
	DefaultBaseURL         = "http://localhost:8080"
	DefaultFileStoragePath = "routes.json"
	DefaultArtifactDir     = "public/qrs"

	// DefaultAuthToken предназначен только для локальной разработки
	DefaultAuthToken = "dev-token"
)

// Режимы хранения QR-кодов
const (
	ArtifactModeDisk   = "disk"
	ArtifactModeInline = "inline"
)

// EnvProduction значение APP_ENV для публичного окружения
const EnvProduction = "production"

// ErrDefaultTokenInProduction возвращается, если в production не задан собственный токен
var ErrDefaultTokenInProduction = errors.New("default auth token must not be used in production")

// Config хранит конфигурацию приложения.
type Config struct {
	ServerAddress   string `env:"SERVER_ADDRESS"`    // Адрес для запуска HTTP-сервера
	BaseURL         string `env:"BASE_URL"`          // Базовый адрес для промежуточных URL в QR-кодах
	FileStoragePath string `env:"FILE_STORAGE_PATH"` // Путь к JSON-файлу с маршрутами
	DatabaseDSN     string `env:"DATABASE_DSN"`      // Строка подключения к PostgreSQL
	RedisURL        string `env:"REDIS_URL"`         // Адрес Redis для общего хранилища
	AuthToken       string `env:"AUTH_TOKEN"`        // Bearer-токен для изменяющих операций
	Environment     string `env:"APP_ENV"`           // Окружение: development или production
	ArtifactMode    string `env:"ARTIFACT_MODE"`     // disk или inline
	ArtifactDir     string `env:"ARTIFACT_DIR"`      // Каталог для SVG в режиме disk
}

// NewConfig инициализирует конфигурацию, читая флаги и переменные окружения.
func NewConfig() (*Config, error) {
	return Parse(os.Args[1:])
}

// Parse разбирает переданные аргументы, затем применяет переменные окружения
// (они имеют наивысший приоритет) и проверяет результат.
func Parse(args []string) (*Config, error) {
	cfg := &Config{
		ServerAddress:   DefaultServerAddress,
		BaseURL:         DefaultBaseURL,
		FileStoragePath: DefaultFileStoragePath,
		AuthToken:       DefaultAuthToken,
		Environment:     "development",
		ArtifactMode:    ArtifactModeDisk,
		ArtifactDir:     DefaultArtifactDir,
	}

	fs := flag.NewFlagSet("qrroute", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "Адрес запуска HTTP-сервера (env: SERVER_ADDRESS)")
	fs.StringVar(&cfg.BaseURL, "b", cfg.BaseURL, "Базовый адрес промежуточных URL (env: BASE_URL)")
	fs.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "Путь к файлу маршрутов (env: FILE_STORAGE_PATH)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "Строка подключения к PostgreSQL (env: DATABASE_DSN)")
	fs.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "Адрес Redis (env: REDIS_URL)")
	fs.StringVar(&cfg.AuthToken, "t", cfg.AuthToken, "Bearer-токен (env: AUTH_TOKEN)")
	fs.StringVar(&cfg.Environment, "e", cfg.Environment, "Окружение (env: APP_ENV)")
	fs.StringVar(&cfg.ArtifactMode, "m", cfg.ArtifactMode, "Режим QR-кодов: disk или inline (env: ARTIFACT_MODE)")
	fs.StringVar(&cfg.ArtifactDir, "q", cfg.ArtifactDir, "Каталог для QR-кодов (env: ARTIFACT_DIR)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base URL %q", c.BaseURL)
	}

	switch c.ArtifactMode {
	case ArtifactModeDisk:
		if c.ArtifactDir == "" {
			return errors.New("artifact dir is required in disk mode")
		}
	case ArtifactModeInline:
	default:
		return fmt.Errorf("unknown artifact mode %q", c.ArtifactMode)
	}

	if c.AuthToken == "" {
		return errors.New("auth token must not be empty")
	}
	if c.IsProduction() && c.UsesDefaultToken() {
		return ErrDefaultTokenInProduction
	}
	return nil
}

// IsProduction сообщает, работает ли сервис в публичном окружении
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}

// UsesDefaultToken сообщает, что токен не был переопределён
func (c *Config) UsesDefaultToken() bool {
	return c.AuthToken == DefaultAuthToken
}
