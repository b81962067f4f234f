// Package service реализует реестр маршрутов: создание, разрешение,
// изменение, удаление и перечисление связок имя -> адрес назначения.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/qr_route.git/internal/artifact"
	"github.com/InQaaaaGit/qr_route.git/internal/models"
	"github.com/InQaaaaGit/qr_route.git/internal/render"
	"github.com/InQaaaaGit/qr_route.git/internal/storage"
)

// RedirectPrefix путь промежуточного URL, который кодируется в QR
const RedirectPrefix = "/r/"

// namePattern имя попадает в ключ хранилища, сегмент URL и имя файла
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Artifact результат отрисовки QR-кода при создании маршрута
type Artifact struct {
	Ref string // ссылка на сохранённый файл, пустая в режиме inline
	SVG []byte
}

// CreateResult результат создания маршрута
type CreateResult struct {
	Route    models.Route
	Payload  string // промежуточный URL, закодированный в QR
	Artifact Artifact
}

// RouteService определяет операции реестра маршрутов
type RouteService interface {
	Create(ctx context.Context, name, destination string) (*CreateResult, error)
	Resolve(ctx context.Context, name string) (string, error)
	Update(ctx context.Context, name, newDestination string) (models.Route, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]models.Route, error)
	CheckConnection(ctx context.Context) error
}

// RouteServiceImpl реализует RouteService
type RouteServiceImpl struct {
	storage  storage.RouteStorage
	renderer render.Renderer
	sink     artifact.Sink
	baseURL  string
	logger   *zap.Logger
}

// NewRouteService создает сервис поверх переданного хранилища.
// baseURL используется для построения промежуточных URL вида <baseURL>/r/<name>.
func NewRouteService(store storage.RouteStorage, renderer render.Renderer, sink artifact.Sink, baseURL string, logger *zap.Logger) *RouteServiceImpl {
	return &RouteServiceImpl{
		storage:  store,
		renderer: renderer,
		sink:     sink,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
	}
}

// PayloadFor возвращает промежуточный URL маршрута
func (s *RouteServiceImpl) PayloadFor(name string) string {
	return s.baseURL + RedirectPrefix + name
}

// Create создает или перезаписывает маршрут и рисует для него QR-код.
// QR-код сохраняется до записи маршрута, чтобы сбой отрисовки не оставлял маршрут без кода.
func (s *RouteServiceImpl) Create(ctx context.Context, name, destination string) (*CreateResult, error) {
	name = strings.TrimSpace(name)
	destination = strings.TrimSpace(destination)

	if name == "" || destination == "" {
		return nil, fmt.Errorf("%w: name and destination are required", ErrValidation)
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateDestination(destination); err != nil {
		return nil, err
	}

	payload := s.PayloadFor(name)
	svg, err := s.renderer.Render(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailure, err)
	}

	ref, err := s.sink.Store(ctx, name, svg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	if err := s.storage.Put(ctx, name, destination); err != nil {
		s.discardArtifact(ctx, name)
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	s.logger.Info("Route created",
		zap.String("name", name),
		zap.String("destination", destination),
		zap.String("artifact_ref", ref))

	return &CreateResult{
		Route:    models.Route{Name: name, Destination: destination},
		Payload:  payload,
		Artifact: Artifact{Ref: ref, SVG: svg},
	}, nil
}

// Resolve возвращает текущий адрес назначения
func (s *RouteServiceImpl) Resolve(ctx context.Context, name string) (string, error) {
	destination, err := s.storage.Get(ctx, name)
	if err != nil {
		return "", s.storageError(name, err)
	}
	return destination, nil
}

// Update меняет адрес назначения существующего маршрута.
// QR-код не перерисовывается: он кодирует промежуточный URL, а не адрес назначения.
func (s *RouteServiceImpl) Update(ctx context.Context, name, newDestination string) (models.Route, error) {
	newDestination = strings.TrimSpace(newDestination)
	if newDestination == "" {
		return models.Route{}, fmt.Errorf("%w: new destination is required", ErrValidation)
	}
	if err := validateDestination(newDestination); err != nil {
		return models.Route{}, err
	}

	if err := s.storage.Update(ctx, name, newDestination); err != nil {
		return models.Route{}, s.storageError(name, err)
	}

	s.logger.Info("Route updated",
		zap.String("name", name),
		zap.String("destination", newDestination))

	return models.Route{Name: name, Destination: newDestination}, nil
}

// Delete удаляет маршрут и его сохранённый QR-код.
// Ошибка удаления файла только логируется: маршрут к этому моменту уже удалён.
func (s *RouteServiceImpl) Delete(ctx context.Context, name string) error {
	if err := s.storage.Delete(ctx, name); err != nil {
		return s.storageError(name, err)
	}

	if err := s.sink.Remove(ctx, name); err != nil {
		s.logger.Error("Error removing artifact of deleted route",
			zap.String("name", name),
			zap.Error(err))
	}

	s.logger.Info("Route deleted", zap.String("name", name))
	return nil
}

// List возвращает все маршруты
func (s *RouteServiceImpl) List(ctx context.Context) ([]models.Route, error) {
	routes, err := s.storage.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	if routes == nil {
		routes = []models.Route{}
	}
	return routes, nil
}

// CheckConnection проверяет доступность хранилища
func (s *RouteServiceImpl) CheckConnection(ctx context.Context) error {
	if err := s.storage.CheckConnection(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
	return nil
}

// discardArtifact удаляет QR-код, записанный для маршрута, который так и не был сохранён.
// Код существующего маршрута не трогается: он кодирует тот же промежуточный URL.
func (s *RouteServiceImpl) discardArtifact(ctx context.Context, name string) {
	_, err := s.storage.Get(ctx, name)
	switch {
	case err == nil:
		return
	case !errors.Is(err, storage.ErrRouteNotFound):
		s.logger.Error("Error checking route after failed create, artifact kept",
			zap.String("name", name),
			zap.Error(err))
		return
	}

	if err := s.sink.Remove(ctx, name); err != nil {
		s.logger.Error("Error removing artifact of unsaved route",
			zap.String("name", name),
			zap.Error(err))
	}
}

// storageError переводит ошибку хранилища в вид ошибки сервиса
func (s *RouteServiceImpl) storageError(name string, err error) error {
	if errors.Is(err, storage.ErrRouteNotFound) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return fmt.Errorf("%w: %w", ErrStore, err)
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: name must be 1-64 characters of letters, digits, '-' or '_'", ErrValidation)
	}
	return nil
}

func validateDestination(destination string) error {
	u, err := url.ParseRequestURI(destination)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: destination must be an absolute http(s) URL", ErrValidation)
	}
	return nil
}
