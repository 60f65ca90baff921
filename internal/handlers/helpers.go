package handlers

import (
	"net/http"
	"strconv"
	"time"

	"inventario-api/internal/storage"

	"github.com/gin-gonic/gin"
)

var uploads *storage.Storage

// UseStorage inyecta el almacenamiento de archivos que usan los handlers de documentos.
func UseStorage(s *storage.Storage) {
	uploads = s
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

func internalError(c *gin.Context, err error) {
	respondError(c, http.StatusInternalServerError, err.Error())
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func like(q string) string {
	return "%" + q + "%"
}

func toInt(v any, fallback int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		if parsed, err := strconv.Atoi(n); err == nil {
			return parsed
		}
	}
	return fallback
}
