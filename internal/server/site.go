package server

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

// handleSite serves the static site from dir. Unknown paths get index.html
// so section links keep working; unknown /api paths stay JSON 404s.
func handleSite(dir string) http.HandlerFunc {
	root := os.DirFS(dir)
	files := http.FileServerFS(root)

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if name == "" {
			name = "."
		}
		if info, err := fs.Stat(root, name); err == nil && !info.IsDir() {
			files.ServeHTTP(w, r)
			return
		}

		http.ServeFileFS(w, r, root, "index.html")
	}
}
