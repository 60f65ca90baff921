package handlers

import (
	"errors"
	"net/http"

	"inventario-api/internal/database"
	"inventario-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GET /api/susuarios
func ListUsuariosSistema(c *gin.Context) {
	dbq := database.DB.Order("username asc")

	if busqueda := c.Query("busqueda"); busqueda != "" {
		q := like(busqueda)
		dbq = dbq.Where("username LIKE ? OR nombre LIKE ? OR email LIKE ?", q, q, q)
	}
	if rol := c.Query("rol"); rol != "" {
		dbq = dbq.Where("rol = ?", rol)
	}

	var cuentas []models.UsuarioSistema
	if err := dbq.Find(&cuentas).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cuentas, "total": len(cuentas)})
}

// GET /api/susuarios/:id
func GetUsuarioSistema(c *gin.Context) {
	var cuenta models.UsuarioSistema
	if err := database.DB.First(&cuenta, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Usuario de sistema no encontrado.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cuenta})
}

// POST /api/susuarios
func CreateUsuarioSistema(c *gin.Context) {
	var body struct {
		Username  string  `json:"username"`
		Password  string  `json:"password"`
		Rol       string  `json:"rol"`
		Nombre    string  `json:"nombre"`
		Email     string  `json:"email"`
		UsuarioID *string `json:"usuario_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}

	if body.Username == "" || body.Password == "" {
		respondError(c, http.StatusBadRequest, "username y password son requeridos.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		internalError(c, err)
		return
	}

	rol := models.RolSistema(body.Rol)
	if rol != models.RolAdmin {
		rol = models.RolGestor
	}

	cuenta := models.UsuarioSistema{
		ID:           uuid.NewString(),
		Username:     body.Username,
		PasswordHash: string(hash),
		Rol:          rol,
		Nombre:       body.Nombre,
		Email:        body.Email,
		UsuarioID:    body.UsuarioID,
	}

	if err := database.DB.Create(&cuenta).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondError(c, http.StatusConflict, "Ya existe un usuario con ese username.")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": cuenta, "message": "Usuario de sistema creado exitosamente."})
}

// PUT /api/susuarios/:id
// "password" no está en el allow-list de columnas: se procesa aparte y
// siempre se guarda como hash.
func UpdateUsuarioSistema(c *gin.Context) {
	id := c.Param("id")

	var cuenta models.UsuarioSistema
	if err := database.DB.First(&cuenta, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "Usuario de sistema no encontrado.")
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}

	updates := models.FilterColumns(payload, models.UsuarioSistemaColumns)
	if password, ok := payload["password"].(string); ok && password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			internalError(c, err)
			return
		}
		updates["password_hash"] = string(hash)
	}

	if len(updates) > 0 {
		err := database.DB.Model(&models.UsuarioSistema{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				respondError(c, http.StatusConflict, "Ya existe un usuario con ese username.")
				return
			}
			internalError(c, err)
			return
		}
	}

	database.DB.First(&cuenta, "id = ?", id)
	c.JSON(http.StatusOK, gin.H{"data": cuenta, "message": "Usuario de sistema actualizado."})
}

// DELETE /api/susuarios/:id
func DeleteUsuarioSistema(c *gin.Context) {
	id := c.Param("id")

	var cuenta models.UsuarioSistema
	if err := database.DB.First(&cuenta, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusNotFound, "Usuario de sistema no encontrado.")
		return
	}

	if err := database.DB.Delete(&cuenta).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario de sistema eliminado."})
}
