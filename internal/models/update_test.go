package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterColumns(t *testing.T) {
	payload := map[string]any{
		"marca":      "Lenovo",
		"es_rentado": true,
		"id":         "no-permitido",
		"placa":      "PC-99",
		"otro":       123,
	}

	updates := FilterColumns(payload, EquipoColumns)

	assert.Equal(t, map[string]any{
		"marca":      "Lenovo",
		"es_rentado": true,
		"placa":      "PC-99",
	}, updates)
}

func TestFilterColumnsSinClavesPermitidas(t *testing.T) {
	updates := FilterColumns(map[string]any{"id": "x", "foo": "bar"}, UsuarioColumns)
	assert.Empty(t, updates)
}

func TestFilterColumnsPayloadVacio(t *testing.T) {
	assert.Empty(t, FilterColumns(map[string]any{}, AsignacionColumns))
}
