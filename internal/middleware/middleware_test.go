package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/qr_route.git/internal/auth"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireBearer(t *testing.T) {
	guard := auth.NewGuard("s3cr3t")

	tests := []struct {
		name         string
		header       string
		wantStatus   int
		wantNextCall bool
	}{
		{name: "valid token", header: "Bearer s3cr3t", wantStatus: http.StatusOK, wantNextCall: true},
		{name: "scheme is case insensitive", header: "bearer s3cr3t", wantStatus: http.StatusOK, wantNextCall: true},
		{name: "missing header", header: "", wantStatus: http.StatusForbidden},
		{name: "wrong token", header: "Bearer nope", wantStatus: http.StatusForbidden},
		{name: "basic scheme", header: "Basic czNjcjN0", wantStatus: http.StatusForbidden},
		{name: "bare token", header: "s3cr3t", wantStatus: http.StatusForbidden},
		{name: "empty bearer", header: "Bearer   ", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			h := RequireBearer(guard, zap.NewNop())(okHandler(&called))

			req := httptest.NewRequest(http.MethodPost, "/crear", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantNextCall, called)
			if tt.wantStatus == http.StatusForbidden {
				assert.JSONEq(t, `{"error":"forbidden","detail":"forbidden: missing or invalid bearer token"}`, w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	// Без заголовка генерируется новый идентификатор
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/r/promo1", nil))
	require.NotEmpty(t, seen)
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	// Присланный идентификатор сохраняется
	req := httptest.NewRequest(http.MethodGet, "/r/promo1", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

type observedRequest struct {
	method, route, status string
}

type fakeRequestObserver struct {
	mu   sync.Mutex
	seen []observedRequest
}

func (f *fakeRequestObserver) ObserveRequest(method, route, status string, elapsed time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, observedRequest{method: method, route: route, status: status})
}

func TestMetricsMiddlewareUsesRoutePattern(t *testing.T) {
	observer := &fakeRequestObserver{}
	r := chi.NewRouter()
	r.Use(MetricsMiddleware(observer))
	r.Get("/r/{name}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://example.com", http.StatusFound)
	})

	for _, path := range []string{"/r/a", "/r/b", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, []observedRequest{
		{method: http.MethodGet, route: "/r/{name}", status: "302"},
		{method: http.MethodGet, route: "/r/{name}", status: "302"},
		{method: http.MethodGet, route: "unmatched", status: "404"},
	}, observer.seen)
}

func TestLoggerMiddleware(t *testing.T) {
	called := false
	h := LoggerMiddleware(zap.NewNop())(okHandler(&called))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
}
