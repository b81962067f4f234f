package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestGzipMiddleware(t *testing.T) {
	tests := []struct {
		name               string
		acceptEncoding     string
		contentEncoding    string
		requestBody        []byte
		expectedStatusCode int
		expectedBody       string
		checkCompression   bool
	}{
		{
			name:               "Compress response when client supports gzip",
			acceptEncoding:     "gzip, deflate",
			requestBody:        []byte(`{"name":"promo1"}`),
			expectedStatusCode: http.StatusOK,
			expectedBody:       `{"name":"promo1"}`,
			checkCompression:   true,
		},
		{
			name:               "Do not compress when client does not support gzip",
			requestBody:        []byte(`{"name":"promo1"}`),
			expectedStatusCode: http.StatusOK,
			expectedBody:       `{"name":"promo1"}`,
		},
		{
			name:               "Decompress gzipped request",
			contentEncoding:    "gzip",
			requestBody:        gzipBytes(t, `{"name":"promo1"}`),
			expectedStatusCode: http.StatusOK,
			expectedBody:       `{"name":"promo1"}`,
		},
		{
			name:               "Reject invalid gzip request",
			contentEncoding:    "gzip",
			requestBody:        []byte("invalid gzip data"),
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "Invalid gzip body\n",
		},
		{
			name:               "Reject empty gzip request",
			contentEncoding:    "gzip",
			requestBody:        nil,
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       "Empty request body\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Обработчик возвращает тело запроса как есть
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.Empty(t, r.Header.Get("Content-Encoding"))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write(body)
			})

			var body io.Reader = http.NoBody
			if tt.requestBody != nil {
				body = bytes.NewReader(tt.requestBody)
			}
			req := httptest.NewRequest(http.MethodPost, "/crear", body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}

			w := httptest.NewRecorder()
			GzipMiddleware(handler).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatusCode, w.Code)

			if tt.checkCompression {
				assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
				gz, err := gzip.NewReader(w.Body)
				require.NoError(t, err)
				defer gz.Close()
				got, err := io.ReadAll(gz)
				require.NoError(t, err)
				assert.Equal(t, tt.expectedBody, string(got))
				return
			}

			assert.NotEqual(t, "gzip", w.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}
