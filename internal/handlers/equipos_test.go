package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEquipoValidacion(t *testing.T) {
	r, _ := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/equipos", gin.H{"placa": "PC-01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEquipoPlacaDuplicada(t *testing.T) {
	r, _ := setupTest(t)

	createEquipo(t, r, "PC-01")

	w := doJSON(t, r, http.MethodPost, "/api/equipos", gin.H{
		"placa":            "PC-01",
		"tipo_equipo":      "Desktop",
		"criticidad":       "Baja",
		"confidencialidad": "Pública",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// el rechazo ocurre antes de insertar nada
	w = doJSON(t, r, http.MethodGet, "/api/equipos", nil)
	assert.EqualValues(t, 1, decodeBody(t, w)["total"])
}

func TestGetEquipoNoEncontrado(t *testing.T) {
	r, _ := setupTest(t)

	w := doJSON(t, r, http.MethodGet, "/api/equipos/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateEquipoParcial(t *testing.T) {
	r, _ := setupTest(t)

	equipo := createEquipo(t, r, "PC-01")
	id := equipo["id"].(string)

	w := doJSON(t, r, http.MethodPut, "/api/equipos/"+id, gin.H{
		"marca":      "Lenovo",
		"es_rentado": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)
	assert.Equal(t, "Lenovo", data["marca"])
	assert.Equal(t, true, data["es_rentado"])
	assert.Equal(t, "PC-01", data["placa"])
}

// Un payload solo con claves desconocidas no toca la fila.
func TestUpdateEquipoClavesIgnoradas(t *testing.T) {
	r, _ := setupTest(t)

	equipo := createEquipo(t, r, "PC-01")
	id := equipo["id"].(string)

	w := doJSON(t, r, http.MethodPut, "/api/equipos/"+id, gin.H{
		"id":         "otro-id",
		"inventario": "x",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)
	assert.Equal(t, id, data["id"])
	assert.Equal(t, "PC-01", data["placa"])
	assert.Equal(t, equipo["fecha_registro"], data["fecha_registro"])
}

func TestUpdateEquipoPlacaDuplicada(t *testing.T) {
	r, _ := setupTest(t)

	createEquipo(t, r, "PC-01")
	otro := createEquipo(t, r, "PC-02")

	w := doJSON(t, r, http.MethodPut, "/api/equipos/"+otro["id"].(string), gin.H{"placa": "PC-01"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteEquipoConAsignaciones(t *testing.T) {
	r, _ := setupTest(t)

	usuario := createUsuario(t, r, "a@x.com")
	equipo := createEquipo(t, r, "PC-01")
	createAsignacion(t, r, usuario["id"].(string), equipo["id"].(string))

	w := doJSON(t, r, http.MethodDelete, "/api/equipos/"+equipo["id"].(string), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// sigue existiendo
	w = doJSON(t, r, http.MethodGet, "/api/equipos/"+equipo["id"].(string), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteEquipoSinReferencias(t *testing.T) {
	r, _ := setupTest(t)

	equipo := createEquipo(t, r, "PC-01")

	w := doJSON(t, r, http.MethodDelete, "/api/equipos/"+equipo["id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/equipos/"+equipo["id"].(string), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListEquiposFiltros(t *testing.T) {
	r, _ := setupTest(t)

	usuario := createUsuario(t, r, "a@x.com")
	e1 := createEquipo(t, r, "PC-01")
	createEquipo(t, r, "PC-02")
	createAsignacion(t, r, usuario["id"].(string), e1["id"].(string))

	w := doJSON(t, r, http.MethodGet, "/api/equipos?estado=Disponible", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["total"])

	w = doJSON(t, r, http.MethodGet, "/api/equipos?busqueda=PC-0", nil)
	assert.EqualValues(t, 2, decodeBody(t, w)["total"])

	w = doJSON(t, r, http.MethodGet, "/api/equipos?es_rentado=true", nil)
	assert.EqualValues(t, 0, decodeBody(t, w)["total"])
}

func TestEquipoHistorial(t *testing.T) {
	r, _ := setupTest(t)

	usuario := createUsuario(t, r, "a@x.com")
	equipo := createEquipo(t, r, "PC-01")
	createAsignacion(t, r, usuario["id"].(string), equipo["id"].(string))

	w := doJSON(t, r, http.MethodGet, "/api/equipos/"+equipo["id"].(string)+"/historial", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)

	historial, ok := data["historial"].([]any)
	require.True(t, ok)
	assert.Len(t, historial, 1)

	responsable, ok := data["responsable"].(map[string]any)
	require.True(t, ok)
	u, ok := responsable["usuario"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ana", u["nombre"])
}
