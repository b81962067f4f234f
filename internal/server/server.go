// Package server запускает HTTP-сервер и корректно останавливает его по отмене контекста.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout время на завершение активных запросов при остановке
const ShutdownTimeout = 10 * time.Second

// HTTPServer представляет HTTP сервер с общей логикой запуска и остановки
type HTTPServer struct {
	server *http.Server
	logger *zap.Logger
}

// New создает HTTP сервер с таймаутами для обработчика
func New(addr string, handler http.Handler, logger *zap.Logger) *HTTPServer {
	return NewHTTPServer(&http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}, logger)
}

// NewHTTPServer оборачивает готовый http.Server
func NewHTTPServer(server *http.Server, logger *zap.Logger) *HTTPServer {
	return &HTTPServer{
		server: server,
		logger: logger,
	}
}

// Addr адрес, на котором слушает сервер
func (s *HTTPServer) Addr() string {
	return s.server.Addr
}

// Run обслуживает запросы до отмены ctx, затем останавливает сервер.
// Штатная остановка ошибкой не считается.
func (s *HTTPServer) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Starting HTTP server", zap.String("address", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
