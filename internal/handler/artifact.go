package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ArtifactHandler раздает сохранённые QR-коды из dir по пути /qrs/{file}.
// Отдаются только файлы вида <name>.svg, без листинга каталога.
func ArtifactHandler(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file := chi.URLParam(r, "file")
		name, ok := strings.CutSuffix(file, ".svg")
		if !ok || name == "" || strings.ContainsAny(name, `/\.`) {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		http.ServeFile(w, r, filepath.Join(dir, file))
	}
}
