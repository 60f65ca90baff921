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

// GET /api/accesorios
func ListAccesorios(c *gin.Context) {
	dbq := database.DB.Model(&models.Accesorio{}).
		Preload("EquipoPrincipal").
		Order("nombre asc")

	if busqueda := c.Query("busqueda"); busqueda != "" {
		q := like(busqueda)
		dbq = dbq.Where("nombre LIKE ? OR placa LIKE ? OR serial LIKE ?", q, q, q)
	}
	if estado := c.Query("estado"); estado != "" {
		dbq = dbq.Where("estado = ?", estado)
	}

	var accesorios []models.Accesorio
	if err := dbq.Find(&accesorios).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": accesorios, "total": len(accesorios)})
}

// GET /api/accesorios/:id
func GetAccesorio(c *gin.Context) {
	var accesorio models.Accesorio
	err := database.DB.Preload("EquipoPrincipal").
		First(&accesorio, "id = ?", c.Param("id")).Error
	if err != nil {
		respondError(c, http.StatusNotFound, "Accesorio no encontrado.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": accesorio})
}

// POST /api/accesorios
func CreateAccesorio(c *gin.Context) {
	var accesorio models.Accesorio
	if err := c.ShouldBindJSON(&accesorio); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}

	if accesorio.Nombre == "" {
		respondError(c, http.StatusBadRequest, "El campo nombre es obligatorio.")
		return
	}

	accesorio.ID = uuid.NewString()
	accesorio.FechaRegistro = today()
	accesorio.EquipoPrincipal = nil
	if accesorio.Cantidad <= 0 {
		accesorio.Cantidad = 1
	}
	if accesorio.Estado == "" {
		accesorio.Estado = models.EquipoDisponible
	}

	if err := database.DB.Create(&accesorio).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			respondError(c, http.StatusBadRequest, "Referencia inválida: el registro relacionado no existe.")
			return
		}
		internalError(c, err)
		return
	}

	database.DB.Preload("EquipoPrincipal").First(&accesorio, "id = ?", accesorio.ID)
	c.JSON(http.StatusCreated, gin.H{"data": accesorio, "message": "Accesorio registrado exitosamente."})
}

// PUT /api/accesorios/:id
func UpdateAccesorio(c *gin.Context) {
	id := c.Param("id")

	var accesorio models.Accesorio
	if err := database.DB.First(&accesorio, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "Accesorio no encontrado.")
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}

	updates := models.FilterColumns(payload, models.AccesorioColumns)
	if v, ok := updates["equipo_principal_id"].(string); ok && v == "" {
		updates["equipo_principal_id"] = nil
	}
	if len(updates) > 0 {
		err := database.DB.Model(&models.Accesorio{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				respondError(c, http.StatusBadRequest, "Referencia inválida: el registro relacionado no existe.")
				return
			}
			internalError(c, err)
			return
		}
	}

	database.DB.Preload("EquipoPrincipal").First(&accesorio, "id = ?", id)
	c.JSON(http.StatusOK, gin.H{"data": accesorio, "message": "Accesorio actualizado."})
}

// DELETE /api/accesorios/:id
func DeleteAccesorio(c *gin.Context) {
	id := c.Param("id")

	var accesorio models.Accesorio
	if err := database.DB.First(&accesorio, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "Accesorio no encontrado.")
		return
	}

	if err := database.DB.Delete(&accesorio).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Accesorio eliminado."})
}
