package handlers

import (
	"errors"
	"net/http"

	"inventario-api/internal/database"
	"inventario-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GET /api/usuarios
func ListUsuarios(c *gin.Context) {
	dbq := database.DB.Order("nombre asc")

	if busqueda := c.Query("busqueda"); busqueda != "" {
		q := like(busqueda)
		dbq = dbq.Where("nombre LIKE ? OR correo LIKE ? OR area LIKE ? OR proceso LIKE ?", q, q, q, q)
	}
	if area := c.Query("area"); area != "" {
		dbq = dbq.Where("area = ?", area)
	}

	var usuarios []models.Usuario
	if err := dbq.Find(&usuarios).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": usuarios, "total": len(usuarios)})
}

// GET /api/usuarios/areas
func ListAreas(c *gin.Context) {
	var areas []string
	err := database.DB.Model(&models.Usuario{}).
		Distinct().
		Order("area asc").
		Pluck("area", &areas).Error
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": areas})
}

// GET /api/usuarios/:id
func GetUsuario(c *gin.Context) {
	var usuario models.Usuario
	if err := database.DB.First(&usuario, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Usuario no encontrado.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": usuario})
}

// GET /api/usuarios/:id/perfil
// Perfil completo: equipos activos + historial + documentos.
func GetUsuarioPerfil(c *gin.Context) {
	id := c.Param("id")

	var usuario models.Usuario
	if err := database.DB.First(&usuario, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "Usuario no encontrado.")
		return
	}

	var activas []models.Asignacion
	database.DB.Preload("Equipo").
		Where("usuario_id = ? AND estado = ?", id, models.AsignacionActiva).
		Find(&activas)

	var historial []models.Asignacion
	database.DB.Preload("Equipo").
		Where("usuario_id = ?", id).
		Order("fecha_asignacion desc").
		Find(&historial)

	var documentos []models.Documento
	database.DB.Where("usuario_id = ?", id).Order("fecha_carga desc").Find(&documentos)

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"usuario":             usuario,
		"asignacionesActivas": activas,
		"historial":           historial,
		"documentos":          documentos,
	}})
}

// POST /api/usuarios
func CreateUsuario(c *gin.Context) {
	var body struct {
		models.Usuario
		Activo *bool `json:"activo"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}

	usuario := body.Usuario
	if usuario.Nombre == "" || usuario.Cargo == "" || usuario.Proceso == "" ||
		usuario.GrupoAsignado == "" || usuario.Area == "" || usuario.Correo == "" {
		respondError(c, http.StatusBadRequest,
			"Faltan campos obligatorios: nombre, cargo, proceso, grupo_asignado, area, correo.")
		return
	}

	usuario.ID = uuid.NewString()
	usuario.FechaRegistro = today()
	usuario.Activo = body.Activo == nil || *body.Activo

	if err := database.DB.Create(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondError(c, http.StatusConflict, "Ya existe un usuario con ese correo.")
			return
		}
		internalError(c, err)
		return
	}

	database.DB.First(&usuario, "id = ?", usuario.ID)
	c.JSON(http.StatusCreated, gin.H{"data": usuario, "message": "Usuario creado exitosamente."})
}

// PUT /api/usuarios/:id
func UpdateUsuario(c *gin.Context) {
	id := c.Param("id")

	var usuario models.Usuario
	if err := database.DB.First(&usuario, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "Usuario no encontrado.")
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}

	updates := models.FilterColumns(payload, models.UsuarioColumns)
	if len(updates) > 0 {
		err := database.DB.Model(&models.Usuario{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				respondError(c, http.StatusConflict, "Ya existe un usuario con ese correo.")
				return
			}
			internalError(c, err)
			return
		}
	}

	database.DB.First(&usuario, "id = ?", id)
	c.JSON(http.StatusOK, gin.H{"data": usuario, "message": "Usuario actualizado."})
}

// DELETE /api/usuarios/:id
func DeleteUsuario(c *gin.Context) {
	id := c.Param("id")

	var usuario models.Usuario
	if err := database.DB.First(&usuario, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "Usuario no encontrado.")
		return
	}

	if err := database.DB.Delete(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			respondError(c, http.StatusConflict, "No se puede eliminar: el usuario tiene asignaciones registradas.")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado."})
}
