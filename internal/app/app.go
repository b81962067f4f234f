// Package app собирает хранилище, отрисовку QR-кодов, реестр маршрутов и HTTP-слой
// в одно приложение и управляет его жизненным циклом.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/qr_route.git/internal/artifact"
	"github.com/InQaaaaGit/qr_route.git/internal/auth"
	"github.com/InQaaaaGit/qr_route.git/internal/config"
	"github.com/InQaaaaGit/qr_route.git/internal/handler"
	"github.com/InQaaaaGit/qr_route.git/internal/metrics"
	"github.com/InQaaaaGit/qr_route.git/internal/middleware"
	"github.com/InQaaaaGit/qr_route.git/internal/render"
	"github.com/InQaaaaGit/qr_route.git/internal/server"
	"github.com/InQaaaaGit/qr_route.git/internal/service"
	"github.com/InQaaaaGit/qr_route.git/internal/storage"
)

// App представляет сервис QR-маршрутов.
// Инкапсулирует конфигурацию, HTTP роутер, логгер и зависимости обработчиков.
type App struct {
	config  *config.Config       // Конфигурация приложения
	router  *chi.Mux             // HTTP роутер для обработки запросов
	logger  *zap.Logger          // Логгер для записи событий приложения
	handler *handler.Handler     // Обработчики HTTP запросов
	storage storage.RouteStorage // Хранилище маршрутов, закрывается в Close
	sink    artifact.Sink        // Хранилище QR-кодов
	guard   *auth.Guard          // Проверка bearer-токена
	metrics *metrics.Metrics     // Метрики Prometheus
}

// NewApp создает и инициализирует новый экземпляр приложения.
//
// Параметры:
//   - ctx: контекст для подключения к хранилищу
//   - cfg: проверенная конфигурация
//   - logger: логгер приложения
//
// Возвращает указатель на App или ошибку при неудачной инициализации зависимостей.
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	m := metrics.New()

	store, err := storage.New(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating storage: %w", err)
	}

	sink, err := artifact.New(cfg, logger)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("error creating artifact sink: %w", err), store.Close())
	}

	instrumented := storage.NewInstrumentedStorage(store, m)
	svc := service.NewRouteService(instrumented, render.NewQRRenderer(), sink, cfg.BaseURL, logger)

	a := &App{
		config:  cfg,
		router:  chi.NewRouter(),
		logger:  logger,
		handler: handler.NewHandler(svc, logger),
		storage: instrumented,
		sink:    sink,
		guard:   auth.NewGuard(cfg.AuthToken),
		metrics: m,
	}
	a.setupRoutes()

	return a, nil
}

// Router возвращает настроенный HTTP обработчик приложения
func (a *App) Router() http.Handler {
	return a.router
}

// setupRoutes регистрирует эндпоинты и middleware.
// Разрешение маршрутов публичное, все изменяющие операции и листинг требуют токен.
func (a *App) setupRoutes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.LoggerMiddleware(a.logger))
	a.router.Use(middleware.MetricsMiddleware(a.metrics))
	a.router.Use(middleware.GzipMiddleware)
	a.router.Use(chimiddleware.Recoverer)

	// Публичные маршруты
	a.router.Get(service.RedirectPrefix+"{name}", a.handler.HandleResolve)
	a.router.Get("/ping", a.handler.HandlePing)
	a.router.Method(http.MethodGet, "/metrics", a.metrics.Handler())

	if disk, ok := a.sink.(*artifact.DiskSink); ok {
		a.router.Get(artifact.PublicPrefix+"{file}", handler.ArtifactHandler(disk.Dir()))
	}

	// Защищённые маршруты
	a.router.Group(func(r chi.Router) {
		r.Use(middleware.RequireBearer(a.guard, a.logger))

		r.Post("/crear", a.handler.HandleCreate)
		r.Put("/actualizar/{name}", a.handler.HandleUpdate)
		r.Delete("/eliminar/{name}", a.handler.HandleDelete)
		r.Get("/listar", a.handler.HandleList)
	})

	// Профилирование только вне production
	if !a.config.IsProduction() {
		a.router.HandleFunc("/debug/pprof/*", pprof.Index)
		a.router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		a.router.HandleFunc("/debug/pprof/profile", pprof.Profile)
		a.router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		a.router.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
}

// Run запускает HTTP сервер и блокируется до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	return server.New(a.config.ServerAddress, a.router, a.logger).Run(ctx)
}

// Close освобождает хранилище маршрутов
func (a *App) Close() error {
	if err := a.storage.Close(); err != nil {
		return fmt.Errorf("error closing storage: %w", err)
	}
	return nil
}
