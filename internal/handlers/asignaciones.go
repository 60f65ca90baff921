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

// GET /api/asignaciones
func ListAsignaciones(c *gin.Context) {
	dbq := database.DB.Model(&models.Asignacion{}).
		Preload("Usuario").
		Preload("Equipo").
		Order("fecha_asignacion desc")

	if busqueda := c.Query("busqueda"); busqueda != "" {
		q := like(busqueda)
		dbq = dbq.
			Joins("JOIN usuarios ON usuarios.id = asignaciones.usuario_id").
			Joins("JOIN equipos ON equipos.id = asignaciones.equipo_id").
			Where("usuarios.nombre LIKE ? OR equipos.placa LIKE ? OR equipos.tipo_equipo LIKE ?", q, q, q)
	}
	if estado := c.Query("estado"); estado != "" {
		dbq = dbq.Where("asignaciones.estado = ?", estado)
	}

	var asignaciones []models.Asignacion
	if err := dbq.Find(&asignaciones).Error; err != nil {
		internalError(c, err)
		return
	}

	activas := 0
	for _, a := range asignaciones {
		if a.Estado == models.AsignacionActiva {
			activas++
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": asignaciones, "total": len(asignaciones), "activas": activas})
}

// GET /api/asignaciones/equipos-disponibles
func ListEquiposDisponibles(c *gin.Context) {
	var equipos []models.Equipo
	err := database.DB.
		Where("estado = ?", models.EquipoDisponible).
		Order("placa asc").
		Find(&equipos).Error
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": equipos})
}

// GET /api/asignaciones/:id
func GetAsignacion(c *gin.Context) {
	var asignacion models.Asignacion
	err := database.DB.Preload("Usuario").Preload("Equipo").
		First(&asignacion, "id = ?", c.Param("id")).Error
	if err != nil {
		respondError(c, http.StatusNotFound, "Asignación no encontrada.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": asignacion})
}

// POST /api/asignaciones
// Inserta la asignación Activa y marca el equipo como Asignado en una sola
// transacción. El índice único parcial sobre (equipo_id, estado='Activa') hace
// que el perdedor de una carrera de creación reciba un duplicado y no dos Activas.
func CreateAsignacion(c *gin.Context) {
	var asignacion models.Asignacion
	if err := c.ShouldBindJSON(&asignacion); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}

	if asignacion.UsuarioID == "" || asignacion.EquipoID == "" || asignacion.FechaAsignacion == "" {
		respondError(c, http.StatusBadRequest,
			"Faltan campos obligatorios: usuario_id, equipo_id, fecha_asignacion.")
		return
	}

	var count int64
	database.DB.Model(&models.Asignacion{}).
		Where("equipo_id = ? AND estado = ?", asignacion.EquipoID, models.AsignacionActiva).
		Count(&count)
	if count > 0 {
		respondError(c, http.StatusConflict, "El equipo ya tiene una asignación activa.")
		return
	}

	asignacion.ID = uuid.NewString()
	asignacion.Estado = models.AsignacionActiva
	asignacion.FechaDevolucion = ""
	asignacion.Usuario = nil
	asignacion.Equipo = nil

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&asignacion).Error; err != nil {
			return err
		}
		return tx.Model(&models.Equipo{}).
			Where("id = ?", asignacion.EquipoID).
			Update("estado", models.EquipoAsignado).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			respondError(c, http.StatusConflict, "El equipo ya tiene una asignación activa.")
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			respondError(c, http.StatusBadRequest, "Referencia inválida: el registro relacionado no existe.")
		default:
			internalError(c, err)
		}
		return
	}

	database.DB.Preload("Usuario").Preload("Equipo").First(&asignacion, "id = ?", asignacion.ID)
	c.JSON(http.StatusCreated, gin.H{"data": asignacion, "message": "Asignación creada exitosamente."})
}

// PUT /api/asignaciones/:id
func UpdateAsignacion(c *gin.Context) {
	id := c.Param("id")

	var asignacion models.Asignacion
	if err := database.DB.First(&asignacion, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "Asignación no encontrada.")
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}

	updates := models.FilterColumns(payload, models.AsignacionColumns)
	if len(updates) > 0 {
		err := database.DB.Model(&models.Asignacion{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				respondError(c, http.StatusConflict, "El equipo ya tiene una asignación activa.")
				return
			}
			internalError(c, err)
			return
		}
	}

	database.DB.Preload("Usuario").Preload("Equipo").First(&asignacion, "id = ?", id)
	c.JSON(http.StatusOK, gin.H{"data": asignacion, "message": "Asignación actualizada."})
}

// POST /api/asignaciones/:id/devolucion
// Devuelta es terminal: la asignación cierra con fecha de devolución y el
// equipo vuelve a Disponible, ambas escrituras en la misma transacción.
func RegistrarDevolucion(c *gin.Context) {
	id := c.Param("id")

	var asignacion models.Asignacion
	if err := database.DB.First(&asignacion, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "Asignación no encontrada.")
		return
	}

	if asignacion.Estado != models.AsignacionActiva {
		respondError(c, http.StatusBadRequest, "La asignación no está activa.")
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Asignacion{}).Where("id = ?", id).Updates(map[string]any{
			"estado":           models.AsignacionDevuelta,
			"fecha_devolucion": today(),
		}).Error
		if err != nil {
			return err
		}
		return tx.Model(&models.Equipo{}).
			Where("id = ?", asignacion.EquipoID).
			Update("estado", models.EquipoDisponible).Error
	})
	if err != nil {
		internalError(c, err)
		return
	}

	database.DB.Preload("Usuario").Preload("Equipo").First(&asignacion, "id = ?", id)
	c.JSON(http.StatusOK, gin.H{"data": asignacion, "message": "Devolución registrada. Equipo marcado como Disponible."})
}
