package handlers

import (
	"net/http"

	"inventario-api/internal/database"
	"inventario-api/internal/models"

	"github.com/gin-gonic/gin"
)

type dashboardStats struct {
	TotalEquipos       int64 `json:"total_equipos"`
	EquiposAsignados   int64 `json:"equipos_asignados"`
	EquiposDisponibles int64 `json:"equipos_disponibles"`
	EquiposCriticos    int64 `json:"equipos_criticos"`
	EquiposSinActa     int64 `json:"equipos_sin_acta"`
	EquiposSinHojaVida int64 `json:"equipos_sin_hoja_vida"`
	EquiposRentados    int64 `json:"equipos_rentados"`
}

type conteoPorTipo struct {
	TipoEquipo string `json:"tipo_equipo"`
	Cantidad   int64  `json:"cantidad"`
}

type conteoPorEstado struct {
	Estado   string `json:"estado"`
	Cantidad int64  `json:"cantidad"`
}

type conteoPorArea struct {
	Area     string `json:"area"`
	Cantidad int64  `json:"cantidad"`
}

// GET /api/dashboard
// Seis lecturas independientes; es una foto de mejor esfuerzo, sin
// consistencia entre consultas.
func GetDashboard(c *gin.Context) {
	var stats dashboardStats
	err := database.DB.Raw(`
		SELECT
			COUNT(*)                                                           AS total_equipos,
			COALESCE(SUM(CASE WHEN estado = 'Asignado' THEN 1 ELSE 0 END), 0)  AS equipos_asignados,
			COALESCE(SUM(CASE WHEN estado = 'Disponible' THEN 1 ELSE 0 END), 0) AS equipos_disponibles,
			COALESCE(SUM(CASE WHEN criticidad IN ('Alta', 'Crítica') THEN 1 ELSE 0 END), 0) AS equipos_criticos,
			COALESCE(SUM(CASE WHEN es_rentado THEN 1 ELSE 0 END), 0)           AS equipos_rentados
		FROM equipos`).Scan(&stats).Error
	if err != nil {
		internalError(c, err)
		return
	}

	// asignaciones activas sin acta / sin hoja de vida
	err = database.DB.Model(&models.Asignacion{}).
		Where("estado = ? AND (acta_pdf IS NULL OR acta_pdf = '')", models.AsignacionActiva).
		Count(&stats.EquiposSinActa).Error
	if err != nil {
		internalError(c, err)
		return
	}
	err = database.DB.Model(&models.Asignacion{}).
		Where("estado = ? AND (hoja_vida_pdf IS NULL OR hoja_vida_pdf = '')", models.AsignacionActiva).
		Count(&stats.EquiposSinHojaVida).Error
	if err != nil {
		internalError(c, err)
		return
	}

	var porTipo []conteoPorTipo
	err = database.DB.Model(&models.Equipo{}).
		Select("tipo_equipo, COUNT(*) AS cantidad").
		Group("tipo_equipo").
		Order("cantidad desc").
		Scan(&porTipo).Error
	if err != nil {
		internalError(c, err)
		return
	}

	var porEstado []conteoPorEstado
	err = database.DB.Model(&models.Equipo{}).
		Select("estado, COUNT(*) AS cantidad").
		Group("estado").
		Scan(&porEstado).Error
	if err != nil {
		internalError(c, err)
		return
	}

	var porArea []conteoPorArea
	err = database.DB.Model(&models.Asignacion{}).
		Select("usuarios.area AS area, COUNT(asignaciones.id) AS cantidad").
		Joins("JOIN usuarios ON usuarios.id = asignaciones.usuario_id").
		Where("asignaciones.estado = ?", models.AsignacionActiva).
		Group("usuarios.area").
		Order("cantidad desc").
		Scan(&porArea).Error
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"stats":     stats,
		"porTipo":   porTipo,
		"porEstado": porEstado,
		"porArea":   porArea,
	}})
}
