package handlers

import (
	"errors"
	"net/http"
	"strings"

	"inventario-api/internal/database"
	"inventario-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GET /api/documentos
func ListDocumentos(c *gin.Context) {
	dbq := database.DB.Model(&models.Documento{}).
		Preload("Equipo").
		Preload("Usuario").
		Order("fecha_carga desc")

	if busqueda := c.Query("busqueda"); busqueda != "" {
		q := like(busqueda)
		dbq = dbq.Where("nombre LIKE ? OR tipo LIKE ?", q, q)
	}
	if tipo := c.Query("tipo"); tipo != "" {
		dbq = dbq.Where("tipo = ?", tipo)
	}
	if equipoID := c.Query("equipo_id"); equipoID != "" {
		dbq = dbq.Where("equipo_id = ?", equipoID)
	}
	if usuarioID := c.Query("usuario_id"); usuarioID != "" {
		dbq = dbq.Where("usuario_id = ?", usuarioID)
	}

	var documentos []models.Documento
	if err := dbq.Find(&documentos).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": documentos, "total": len(documentos)})
}

// GET /api/documentos/:id
func GetDocumento(c *gin.Context) {
	var documento models.Documento
	err := database.DB.Preload("Equipo").Preload("Usuario").
		First(&documento, "id = ?", c.Param("id")).Error
	if err != nil {
		respondError(c, http.StatusNotFound, "Documento no encontrado.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": documento})
}

// documentoPayload admite JSON o multipart; si llega un archivo en el campo
// "archivo" se guarda en el almacenamiento y su URL reemplaza a la del payload.
func documentoPayload(c *gin.Context) (map[string]any, error) {
	payload := map[string]any{}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		for key, vals := range form.Value {
			if len(vals) > 0 {
				payload[key] = vals[0]
			}
		}
		if files := form.File["archivo"]; len(files) > 0 {
			url, err := uploads.Save(files[0])
			if err != nil {
				return nil, err
			}
			payload["url"] = url
		}
		return payload, nil
	}

	if err := c.ShouldBindJSON(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func strField(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}

// POST /api/documentos
func CreateDocumento(c *gin.Context) {
	payload, err := documentoPayload(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	nombre := strField(payload, "nombre")
	tipo := strField(payload, "tipo")
	if nombre == "" || tipo == "" {
		respondError(c, http.StatusBadRequest, "Faltan campos obligatorios: nombre, tipo.")
		return
	}

	url := strField(payload, "url")
	if url == "" {
		respondError(c, http.StatusBadRequest, "Se requiere una URL o un archivo adjunto.")
		return
	}

	documento := models.Documento{
		ID:         uuid.NewString(),
		Nombre:     nombre,
		Tipo:       tipo,
		URL:        url,
		Version:    1,
		FechaCarga: today(),
		CargadoPor: strField(payload, "cargado_por"),
	}
	if v, ok := payload["version"]; ok {
		documento.Version = toInt(v, 1)
	}
	if s := strField(payload, "equipo_id"); s != "" {
		documento.EquipoID = &s
	}
	if s := strField(payload, "asignacion_id"); s != "" {
		documento.AsignacionID = &s
	}
	if s := strField(payload, "usuario_id"); s != "" {
		documento.UsuarioID = &s
	}

	if err := database.DB.Create(&documento).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			respondError(c, http.StatusBadRequest, "Referencia inválida: el registro relacionado no existe.")
			return
		}
		internalError(c, err)
		return
	}

	database.DB.Preload("Equipo").Preload("Usuario").First(&documento, "id = ?", documento.ID)
	c.JSON(http.StatusCreated, gin.H{"data": documento, "message": "Documento registrado exitosamente."})
}

// PUT /api/documentos/:id
func UpdateDocumento(c *gin.Context) {
	id := c.Param("id")

	var documento models.Documento
	if err := database.DB.First(&documento, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "Documento no encontrado.")
		return
	}

	payload, err := documentoPayload(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updates := models.FilterColumns(payload, models.DocumentoColumns)
	if v, ok := updates["version"]; ok {
		updates["version"] = toInt(v, documento.Version)
	}
	for _, key := range []string{"equipo_id", "asignacion_id", "usuario_id"} {
		if v, ok := updates[key].(string); ok && v == "" {
			updates[key] = nil
		}
	}

	if len(updates) > 0 {
		err := database.DB.Model(&models.Documento{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				respondError(c, http.StatusBadRequest, "Referencia inválida: el registro relacionado no existe.")
				return
			}
			internalError(c, err)
			return
		}
	}

	database.DB.Preload("Equipo").Preload("Usuario").First(&documento, "id = ?", id)
	c.JSON(http.StatusOK, gin.H{"data": documento, "message": "Documento actualizado."})
}

// DELETE /api/documentos/:id
func DeleteDocumento(c *gin.Context) {
	id := c.Param("id")

	var documento models.Documento
	if err := database.DB.First(&documento, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "Documento no encontrado.")
		return
	}

	if err := database.DB.Delete(&documento).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Documento eliminado."})
}
