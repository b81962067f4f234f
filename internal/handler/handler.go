// Package handler переводит HTTP-запросы в вызовы реестра маршрутов
// и ошибки сервиса в структурированные JSON-ответы.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/qr_route.git/internal/middleware"
	"github.com/InQaaaaGit/qr_route.git/internal/models"
	"github.com/InQaaaaGit/qr_route.git/internal/service"
)

const (
	contentTypeJSON = "application/json"
	maxBodyBytes    = 1 << 16
)

// RouteService определяет операции реестра, которые нужны обработчикам
type RouteService interface {
	Create(ctx context.Context, name, destination string) (*service.CreateResult, error)
	Resolve(ctx context.Context, name string) (string, error)
	Update(ctx context.Context, name, newDestination string) (models.Route, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]models.Route, error)
	CheckConnection(ctx context.Context) error
}

// Handler содержит HTTP-обработчики сервиса
type Handler struct {
	service RouteService
	logger  *zap.Logger
}

// NewHandler создает обработчики поверх сервиса
func NewHandler(service RouteService, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate обрабатывает POST /crear
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRouteRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.Create(r.Context(), req.Name, req.Destination)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := models.CreateRouteResponse{
		Message:     "QR SVG created",
		Name:        result.Route.Name,
		Destination: result.Route.Destination,
		Payload:     result.Payload,
		ArtifactRef: result.Artifact.Ref,
	}
	if result.Artifact.Ref == "" {
		resp.SVG = string(result.Artifact.SVG)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// HandleResolve обрабатывает GET /r/{name}: перенаправляет на текущий адрес назначения
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	destination, err := h.service.Resolve(r.Context(), name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, destination, http.StatusFound)
}

// HandleUpdate обрабатывает PUT /actualizar/{name}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req models.UpdateRouteRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	route, err := h.service.Update(r.Context(), name, req.NewDestination)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, models.UpdateRouteResponse{
		Message:        "Destination updated",
		Name:           route.Name,
		NewDestination: route.Destination,
	})
}

// HandleDelete обрабатывает DELETE /eliminar/{name}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.service.Delete(r.Context(), name); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, models.DeleteRouteResponse{
		Message: "Route deleted",
		Name:    name,
	})
}

// HandleList обрабатывает GET /listar
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	routes, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, routes)
}

// HandlePing обрабатывает запрос на проверку соединения с хранилищем
func (h *Handler) HandlePing(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CheckConnection(r.Context()); err != nil {
		h.logger.Error("Storage connection error", zap.Error(err))
		http.Error(w, "Storage connection error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// decodeJSON читает тело запроса; при ошибке сам отвечает 400 и возвращает false
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer func() {
		if err := r.Body.Close(); err != nil {
			h.logger.Error("Error closing request body", zap.Error(err))
		}
	}()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:  "validation_error",
			Detail: "invalid JSON body: " + err.Error(),
		})
		return false
	}
	return true
}

// writeError переводит ошибку сервиса в статус и тело ответа
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, kind := classify(err)

	fields := []zap.Field{
		zap.String("path", r.URL.Path),
		zap.String("kind", kind),
		zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", fields...)
	} else {
		h.logger.Info("Request rejected", fields...)
	}

	h.writeJSON(w, status, models.ErrorResponse{Error: kind, Detail: err.Error()})
}

// classify сопоставляет виду ошибки HTTP-статус и имя вида
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest, "validation_error"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrRenderFailure):
		return http.StatusInternalServerError, "render_failure"
	default:
		return http.StatusInternalServerError, "store_error"
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Error writing JSON response", zap.Error(err))
	}
}
