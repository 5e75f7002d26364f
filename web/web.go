package web

import (
	"embed"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
)

//go:embed static
var static embed.FS

// Handler serves the browser client. When dir is empty the bundle compiled
// into the binary is used, otherwise files are read from dir on each request.
func Handler(dir string) http.Handler {
	var files fs.FS
	if dir != "" {
		slog.Info("serving client from directory", "dir", dir)
		files = os.DirFS(dir)
	} else {
		sub, err := fs.Sub(static, "static")
		if err != nil {
			log.Fatalf("error loading embedded client bundle: %v", err)
		}
		files = sub
	}

	return http.FileServer(http.FS(files))
}
