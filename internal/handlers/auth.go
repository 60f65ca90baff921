package handlers

import (
	"net/http"

	"inventario-api/internal/database"
	"inventario-api/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}
	if body.Username == "" || body.Password == "" {
		respondError(c, http.StatusBadRequest, "username y password son requeridos.")
		return
	}

	var cuenta models.UsuarioSistema
	if err := database.DB.First(&cuenta, "username = ?", body.Username).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "Usuario o contraseña incorrectos.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cuenta.PasswordHash), []byte(body.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Usuario o contraseña incorrectos.")
		return
	}

	sess := sessions.Default(c)
	sess.Set("account_id", cuenta.ID)
	sess.Set("rol", string(cuenta.Rol))
	if err := sess.Save(); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cuenta, "message": "Sesión iniciada."})
}

// POST /api/auth/logout
func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada."})
}

// GET /api/auth/me
func CurrentAccount(c *gin.Context) {
	sess := sessions.Default(c)
	accountID, _ := sess.Get("account_id").(string)

	var cuenta models.UsuarioSistema
	if err := database.DB.First(&cuenta, "id = ?", accountID).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "Sesión no válida.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cuenta})
}
