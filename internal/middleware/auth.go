package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth rechaza con 401 las peticiones sin sesión iniciada.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if accountID, _ := sess.Get("account_id").(string); accountID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Se requiere iniciar sesión."})
			return
		}
		c.Next()
	}
}
