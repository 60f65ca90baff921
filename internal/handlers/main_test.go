package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventario-api/internal/config"
	"inventario-api/internal/database"
	"inventario-api/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTest levanta el router completo sobre una base SQLite en memoria con
// el mismo esquema (incluido el índice único parcial) que produce Migrate.
func setupTest(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db

	cfg := &config.Config{
		ServerPort:    "0",
		SessionSecret: "test-secret",
		UploadsDir:    t.TempDir(),
		FrontendURL:   "http://localhost:5173",
	}
	return server.NewRouter(cfg), cfg
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	data, ok := decodeBody(t, w)["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

func createUsuario(t *testing.T, r http.Handler, correo string) map[string]any {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/usuarios", gin.H{
		"nombre":         "Ana",
		"cargo":          "Dev",
		"proceso":        "TI",
		"grupo_asignado": "G1",
		"area":           "TI",
		"correo":         correo,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeData(t, w)
}

func createEquipo(t *testing.T, r http.Handler, placa string) map[string]any {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/equipos", gin.H{
		"placa":            placa,
		"tipo_equipo":      "Laptop",
		"criticidad":       "Alta",
		"confidencialidad": "Interna",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeData(t, w)
}

func createAsignacion(t *testing.T, r http.Handler, usuarioID, equipoID string) map[string]any {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/asignaciones", gin.H{
		"usuario_id":       usuarioID,
		"equipo_id":        equipoID,
		"fecha_asignacion": "2024-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeData(t, w)
}
