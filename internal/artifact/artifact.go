// Package artifact решает, что делать с отрисованным QR-кодом:
// сохранить на диск и вернуть ссылку или отдать байты в ответе.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/qr_route.git/internal/config"
)

// PublicPrefix путь, по которому раздаются сохранённые QR-коды
const PublicPrefix = "/qrs/"

// Sink сохраняет QR-код маршрута.
// Store возвращает ссылку на сохранённый файл или пустую строку,
// если код не сохраняется и должен быть передан клиенту напрямую.
type Sink interface {
	Store(ctx context.Context, name string, svg []byte) (string, error)
	Remove(ctx context.Context, name string) error
}

// New выбирает реализацию по режиму из конфигурации
func New(cfg *config.Config, logger *zap.Logger) (Sink, error) {
	switch cfg.ArtifactMode {
	case config.ArtifactModeInline:
		return InlineSink{}, nil
	case config.ArtifactModeDisk:
		sink, err := NewDiskSink(cfg.ArtifactDir, logger)
		if err != nil {
			return nil, err
		}
		return sink, nil
	default:
		return nil, fmt.Errorf("unknown artifact mode %q", cfg.ArtifactMode)
	}
}

// DiskSink пишет <dir>/<name>.svg
type DiskSink struct {
	dir    string
	logger *zap.Logger
}

// NewDiskSink создает каталог для QR-кодов, если его нет
func NewDiskSink(dir string, logger *zap.Logger) (*DiskSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating artifact dir: %w", err)
	}
	return &DiskSink{dir: dir, logger: logger}, nil
}

// Dir каталог, из которого раздаются файлы
func (s *DiskSink) Dir() string {
	return s.dir
}

// Store записывает SVG на диск и возвращает публичную ссылку.
// Файл подменяется переименованием, поэтому читатель видит либо старый, либо новый код целиком.
func (s *DiskSink) Store(ctx context.Context, name string, svg []byte) (string, error) {
	path := s.path(name)
	if err := writeFileAtomic(path, svg); err != nil {
		return "", err
	}
	s.logger.Debug("Artifact written", zap.String("path", path))
	return Ref(name), nil
}

// writeFileAtomic пишет data во временный файл рядом с path и переименовывает его
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp artifact: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error writing artifact: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error setting artifact mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error closing artifact: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error replacing artifact: %w", err)
	}
	return nil
}

// Remove удаляет файл; отсутствие файла ошибкой не считается
func (s *DiskSink) Remove(ctx context.Context, name string) error {
	if err := os.Remove(s.path(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing artifact: %w", err)
	}
	return nil
}

func (s *DiskSink) path(name string) string {
	return filepath.Join(s.dir, name+".svg")
}

// InlineSink ничего не сохраняет
type InlineSink struct{}

// Store всегда возвращает пустую ссылку
func (InlineSink) Store(ctx context.Context, name string, svg []byte) (string, error) {
	return "", nil
}

// Remove ничего не делает
func (InlineSink) Remove(ctx context.Context, name string) error {
	return nil
}

// Ref публичная ссылка на QR-код маршрута
func Ref(name string) string {
	return PublicPrefix + name + ".svg"
}
