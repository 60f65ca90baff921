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

// GET /api/equipos
func ListEquipos(c *gin.Context) {
	dbq := database.DB.Order("fecha_registro desc")

	if busqueda := c.Query("busqueda"); busqueda != "" {
		q := like(busqueda)
		dbq = dbq.Where("placa LIKE ? OR marca LIKE ? OR modelo LIKE ? OR serial LIKE ?", q, q, q, q)
	}
	if estado := c.Query("estado"); estado != "" {
		dbq = dbq.Where("estado = ?", estado)
	}
	if criticidad := c.Query("criticidad"); criticidad != "" {
		dbq = dbq.Where("criticidad = ?", criticidad)
	}
	if tipo := c.Query("tipo"); tipo != "" {
		dbq = dbq.Where("tipo_equipo = ?", tipo)
	}
	if esRentado := c.Query("es_rentado"); esRentado != "" {
		dbq = dbq.Where("es_rentado = ?", esRentado == "true")
	}

	var equipos []models.Equipo
	if err := dbq.Find(&equipos).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": equipos, "total": len(equipos)})
}

// GET /api/equipos/:id
func GetEquipo(c *gin.Context) {
	var equipo models.Equipo
	if err := database.DB.First(&equipo, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Equipo no encontrado.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": equipo})
}

// GET /api/equipos/:id/historial
// Historial de asignaciones más el responsable actual (asignación activa).
func GetEquipoHistorial(c *gin.Context) {
	id := c.Param("id")

	var equipo models.Equipo
	if err := database.DB.First(&equipo, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "Equipo no encontrado.")
		return
	}

	var historial []models.Asignacion
	if err := database.DB.Preload("Usuario").
		Where("equipo_id = ?", id).
		Order("fecha_asignacion desc").
		Find(&historial).Error; err != nil {
		internalError(c, err)
		return
	}

	data := gin.H{"equipo": equipo, "historial": historial, "responsable": nil}

	var activa models.Asignacion
	err := database.DB.Preload("Usuario").
		Where("equipo_id = ? AND estado = ?", id, models.AsignacionActiva).
		First(&activa).Error
	if err == nil {
		data["responsable"] = gin.H{
			"usuario":          activa.Usuario,
			"asignacion_id":    activa.ID,
			"fecha_asignacion": activa.FechaAsignacion,
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

// POST /api/equipos
func CreateEquipo(c *gin.Context) {
	var equipo models.Equipo
	if err := c.ShouldBindJSON(&equipo); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}

	if equipo.Placa == "" || equipo.TipoEquipo == "" || equipo.Criticidad == "" || equipo.Confidencialidad == "" {
		respondError(c, http.StatusBadRequest,
			"Faltan campos obligatorios: placa, tipo_equipo, criticidad, confidencialidad.")
		return
	}

	// placa duplicada se rechaza antes de insertar
	var count int64
	database.DB.Model(&models.Equipo{}).Where("placa = ?", equipo.Placa).Count(&count)
	if count > 0 {
		respondError(c, http.StatusConflict, "Ya existe un equipo con la placa "+equipo.Placa+".")
		return
	}

	equipo.ID = uuid.NewString()
	equipo.FechaRegistro = today()
	if equipo.Estado == "" {
		equipo.Estado = models.EquipoDisponible
	}

	if err := database.DB.Create(&equipo).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondError(c, http.StatusConflict, "Ya existe un equipo con la placa "+equipo.Placa+".")
			return
		}
		internalError(c, err)
		return
	}

	database.DB.First(&equipo, "id = ?", equipo.ID)
	c.JSON(http.StatusCreated, gin.H{"data": equipo, "message": "Equipo registrado exitosamente."})
}

// PUT /api/equipos/:id
func UpdateEquipo(c *gin.Context) {
	id := c.Param("id")

	var equipo models.Equipo
	if err := database.DB.First(&equipo, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "Equipo no encontrado.")
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}

	if placa, ok := payload["placa"].(string); ok && placa != "" && placa != equipo.Placa {
		var count int64
		database.DB.Model(&models.Equipo{}).Where("placa = ? AND id <> ?", placa, id).Count(&count)
		if count > 0 {
			respondError(c, http.StatusConflict, "Ya existe un equipo con la placa "+placa+".")
			return
		}
	}

	updates := models.FilterColumns(payload, models.EquipoColumns)
	if len(updates) > 0 {
		err := database.DB.Model(&models.Equipo{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				respondError(c, http.StatusConflict, "Registro duplicado.")
				return
			}
			internalError(c, err)
			return
		}
	}

	database.DB.First(&equipo, "id = ?", id)
	c.JSON(http.StatusOK, gin.H{"data": equipo, "message": "Equipo actualizado."})
}

// DELETE /api/equipos/:id
func DeleteEquipo(c *gin.Context) {
	id := c.Param("id")

	var equipo models.Equipo
	if err := database.DB.First(&equipo, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "Equipo no encontrado.")
		return
	}

	if err := database.DB.Delete(&equipo).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			respondError(c, http.StatusConflict,
				"No se puede eliminar: el equipo tiene asignaciones o accesorios asociados.")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Equipo eliminado."})
}
