package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/InQaaaaGit/qr_route.git/internal/models"
	"go.uber.org/zap"
)

// MemoryStorage реализует RouteStorage с использованием памяти
type MemoryStorage struct {
	mu     sync.RWMutex
	routes map[string]string
	logger *zap.Logger
}

// NewMemoryStorage создает новый экземпляр MemoryStorage
func NewMemoryStorage(logger *zap.Logger) *MemoryStorage {
	return &MemoryStorage{
		routes: make(map[string]string),
		logger: logger,
	}
}

// Get получает адрес назначения по имени
func (ms *MemoryStorage) Get(ctx context.Context, name string) (string, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	destination, exists := ms.routes[name]
	if !exists {
		return "", ErrRouteNotFound
	}
	return destination, nil
}

// Put сохраняет маршрут в памяти
func (ms *MemoryStorage) Put(ctx context.Context, name, destination string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.routes[name] = destination
	return nil
}

// Update меняет адрес существующего маршрута
func (ms *MemoryStorage) Update(ctx context.Context, name, destination string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, exists := ms.routes[name]; !exists {
		return ErrRouteNotFound
	}
	ms.routes[name] = destination
	return nil
}

// Delete удаляет маршрут из памяти
func (ms *MemoryStorage) Delete(ctx context.Context, name string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, exists := ms.routes[name]; !exists {
		return ErrRouteNotFound
	}
	delete(ms.routes, name)
	return nil
}

// List возвращает все маршруты, отсортированные по имени
func (ms *MemoryStorage) List(ctx context.Context) ([]models.Route, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	return routesFromMap(ms.routes), nil
}

// CheckConnection проверяет доступность хранилища
func (ms *MemoryStorage) CheckConnection(ctx context.Context) error {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	if ms.routes == nil {
		return fmt.Errorf("storage is not initialized")
	}
	return nil
}

// Close ничего не делает: данные в памяти не переживают процесс
func (ms *MemoryStorage) Close() error {
	return nil
}
