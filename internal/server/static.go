package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// staticHandler serves files from dir. Unknown non-API paths fall back to
// index.html so client-side routes work; unknown /api paths get a JSON 404.
func staticHandler(dir string) (gin.HandlerFunc, error) {
	staticDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve static path: %w", err)
	}

	return func(c *gin.Context) {
		urlPath := c.Request.URL.Path
		if strings.HasPrefix(urlPath, "/api/") || c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			notFound(c)
			return
		}

		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean("/"+urlPath))

		// Check if file exists
		if info, err := os.Stat(filePath); err != nil || info.IsDir() {
			c.File(filepath.Join(staticDir, "index.html"))
			return
		}

		c.File(filePath)
	}, nil
}
