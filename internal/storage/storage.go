// Package storage хранит соответствие имён маршрутов адресам назначения.
// Хранилище является единственным источником истины: сервис не кеширует маршруты.
package storage

import (
	"context"
	"fmt"
	"sort"

	"github.com/InQaaaaGit/qr_route.git/internal/config"
	"github.com/InQaaaaGit/qr_route.git/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -source=storage.go -destination=mocks/storage_mock.go -package=mocks

// RouteStorage определяет интерфейс для хранения маршрутов
type RouteStorage interface {
	// Get возвращает адрес назначения по имени или ErrRouteNotFound
	Get(ctx context.Context, name string) (string, error)
	// Put сохраняет маршрут, перезаписывая существующий с тем же именем
	Put(ctx context.Context, name, destination string) error
	// Update меняет адрес существующего маршрута или возвращает ErrRouteNotFound.
	// Проверка существования и запись выполняются атомарно.
	Update(ctx context.Context, name, destination string) error
	// Delete удаляет маршрут или возвращает ErrRouteNotFound
	Delete(ctx context.Context, name string) error
	// List возвращает все маршруты
	List(ctx context.Context) ([]models.Route, error)
	// CheckConnection проверяет доступность хранилища
	CheckConnection(ctx context.Context) error
	// Close освобождает ресурсы и сбрасывает данные на носитель
	Close() error
}

// New выбирает реализацию хранилища по конфигурации.
// Приоритет: PostgreSQL, Redis, файл, память.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (RouteStorage, error) {
	switch {
	case cfg.DatabaseDSN != "":
		logger.Info("Using PostgreSQL storage")
		ps, err := NewPostgresStorage(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("postgres storage: %w", err)
		}
		return ps, nil
	case cfg.RedisURL != "":
		logger.Info("Using Redis storage")
		rs, err := NewRedisStorage(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis storage: %w", err)
		}
		return rs, nil
	case cfg.FileStoragePath != "":
		logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		fs, err := NewFileStorage(cfg.FileStoragePath, logger)
		if err != nil {
			return nil, fmt.Errorf("file storage: %w", err)
		}
		return fs, nil
	default:
		logger.Info("Using in-memory storage")
		return NewMemoryStorage(logger), nil
	}
}

// routesFromMap строит отсортированный по имени список маршрутов
func routesFromMap(m map[string]string) []models.Route {
	routes := make([]models.Route, 0, len(m))
	for name, destination := range m {
		routes = append(routes, models.Route{Name: name, Destination: destination})
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].Name < routes[j].Name })
	return routes
}
