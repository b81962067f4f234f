package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/InQaaaaGit/qr_route.git/internal/models"
	"go.uber.org/zap"
)

// FileStorage реализует RouteStorage поверх JSON-файла.
// Файл содержит один объект {"имя": "адрес"} и перезаписывается целиком при каждом изменении.
type FileStorage struct {
	filePath string
	routes   map[string]string
	mutex    sync.RWMutex
	logger   *zap.Logger
}

// NewFileStorage создает FileStorage и загружает маршруты из файла.
// Отсутствующий или пустой файл означает пустое хранилище, повреждённый файл - ошибку.
func NewFileStorage(filePath string, logger *zap.Logger) (*FileStorage, error) {
	fs := &FileStorage{
		filePath: filePath,
		routes:   make(map[string]string),
		logger:   logger,
	}

	if err := fs.loadFromFile(); err != nil {
		return nil, err
	}

	logger.Info("Routes loaded from file",
		zap.String("path", filePath),
		zap.Int("count", len(fs.routes)))
	return fs, nil
}

// loadFromFile читает маршруты из файла
func (fs *FileStorage) loadFromFile() error {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading file: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &fs.routes); err != nil {
		return fmt.Errorf("error decoding routes file %s: %w", fs.filePath, err)
	}
	if fs.routes == nil {
		// файл содержал null
		fs.routes = make(map[string]string)
	}
	return nil
}

// Get получает адрес назначения по имени
func (fs *FileStorage) Get(ctx context.Context, name string) (string, error) {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	destination, exists := fs.routes[name]
	if !exists {
		return "", ErrRouteNotFound
	}
	return destination, nil
}

// Put сохраняет маршрут и перезаписывает файл.
// При ошибке записи состояние в памяти откатывается.
func (fs *FileStorage) Put(ctx context.Context, name, destination string) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	previous, existed := fs.routes[name]
	fs.routes[name] = destination

	if err := fs.rewriteFile(); err != nil {
		if existed {
			fs.routes[name] = previous
		} else {
			delete(fs.routes, name)
		}
		return fmt.Errorf("error saving route: %w", err)
	}
	return nil
}

// Update меняет адрес существующего маршрута и перезаписывает файл
func (fs *FileStorage) Update(ctx context.Context, name, destination string) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	previous, exists := fs.routes[name]
	if !exists {
		return ErrRouteNotFound
	}
	fs.routes[name] = destination

	if err := fs.rewriteFile(); err != nil {
		fs.routes[name] = previous
		return fmt.Errorf("error updating route: %w", err)
	}
	return nil
}

// Delete удаляет маршрут и перезаписывает файл
func (fs *FileStorage) Delete(ctx context.Context, name string) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	previous, exists := fs.routes[name]
	if !exists {
		return ErrRouteNotFound
	}
	delete(fs.routes, name)

	if err := fs.rewriteFile(); err != nil {
		fs.routes[name] = previous
		return fmt.Errorf("error deleting route: %w", err)
	}
	return nil
}

// List возвращает все маршруты, отсортированные по имени
func (fs *FileStorage) List(ctx context.Context) ([]models.Route, error) {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	return routesFromMap(fs.routes), nil
}

// rewriteFile атомарно заменяет файл текущим содержимым памяти:
// данные пишутся во временный файл рядом и затем переименовываются.
func (fs *FileStorage) rewriteFile() error {
	data, err := json.MarshalIndent(fs.routes, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling routes: %w", err)
	}

	dir := filepath.Dir(fs.filePath)
	tmp, err := os.CreateTemp(dir, filepath.Base(fs.filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, fs.filePath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error replacing routes file: %w", err)
	}
	return nil
}

// CheckConnection проверяет, что каталог файла доступен
func (fs *FileStorage) CheckConnection(ctx context.Context) error {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	if _, err := os.Stat(filepath.Dir(fs.filePath)); err != nil {
		return fmt.Errorf("storage directory is not accessible: %w", err)
	}
	return nil
}

// Close сбрасывает текущее состояние на диск
func (fs *FileStorage) Close() error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if err := fs.rewriteFile(); err != nil {
		fs.logger.Error("Error flushing routes before close", zap.Error(err))
		return err
	}
	return nil
}
