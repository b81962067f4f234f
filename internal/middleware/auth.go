package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/qr_route.git/internal/auth"
	"github.com/InQaaaaGit/qr_route.git/internal/models"
)

const bearerPrefix = "Bearer "

// Authorizer проверяет предъявленный токен
type Authorizer interface {
	Authorize(presented string) error
}

var errMalformedHeader = errors.New("authorization header must be 'Bearer <token>'")

// RequireBearer пропускает запрос дальше только с верным заголовком
// Authorization: Bearer <token>. В остальных случаях отвечает 403
// и не вызывает следующий обработчик.
func RequireBearer(authorizer Authorizer, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r.Header.Get("Authorization"))
			if err == nil {
				err = authorizer.Authorize(token)
			}
			if err != nil {
				logger.Info("Request rejected by access guard",
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
					zap.String("request_id", RequestIDFromContext(r.Context())),
					zap.Error(err))
				writeForbidden(w, logger)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken извлекает токен из значения заголовка Authorization
func bearerToken(header string) (string, error) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", errMalformedHeader
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", errMalformedHeader
	}
	return token, nil
}

func writeForbidden(w http.ResponseWriter, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	resp := models.ErrorResponse{
		Error:  "forbidden",
		Detail: auth.ErrForbidden.Error() + ": missing or invalid bearer token",
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("Error writing JSON response", zap.Error(err))
	}
}
