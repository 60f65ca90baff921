package server

import (
	"log"
	"net/http"
	"time"

	"inventario-api/internal/config"
	"inventario-api/internal/handlers"
	"inventario-api/internal/middleware"
	"inventario-api/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("inventario_session", store))

	uploads, err := storage.New(cfg.UploadsDir, "/uploads")
	if err != nil {
		log.Fatalf("failed to init uploads storage: %v", err)
	}
	handlers.UseStorage(uploads)

	// los archivos subidos se sirven de solo lectura
	r.Static("/uploads", uploads.Dir())

	api := r.Group("/api")

	// USUARIOS
	usuarios := api.Group("/usuarios")
	usuarios.GET("", handlers.ListUsuarios)
	usuarios.GET("/areas", handlers.ListAreas)
	usuarios.GET("/:id", handlers.GetUsuario)
	usuarios.GET("/:id/perfil", handlers.GetUsuarioPerfil)
	usuarios.POST("", handlers.CreateUsuario)
	usuarios.PUT("/:id", handlers.UpdateUsuario)
	usuarios.DELETE("/:id", handlers.DeleteUsuario)

	// EQUIPOS
	equipos := api.Group("/equipos")
	equipos.GET("", handlers.ListEquipos)
	equipos.GET("/:id", handlers.GetEquipo)
	equipos.GET("/:id/historial", handlers.GetEquipoHistorial)
	equipos.POST("", handlers.CreateEquipo)
	equipos.PUT("/:id", handlers.UpdateEquipo)
	equipos.DELETE("/:id", handlers.DeleteEquipo)

	// ASIGNACIONES
	asignaciones := api.Group("/asignaciones")
	asignaciones.GET("", handlers.ListAsignaciones)
	asignaciones.GET("/equipos-disponibles", handlers.ListEquiposDisponibles)
	asignaciones.GET("/:id", handlers.GetAsignacion)
	asignaciones.POST("", handlers.CreateAsignacion)
	asignaciones.PUT("/:id", handlers.UpdateAsignacion)
	asignaciones.POST("/:id/devolucion", handlers.RegistrarDevolucion)

	// ACCESORIOS
	accesorios := api.Group("/accesorios")
	accesorios.GET("", handlers.ListAccesorios)
	accesorios.GET("/:id", handlers.GetAccesorio)
	accesorios.POST("", handlers.CreateAccesorio)
	accesorios.PUT("/:id", handlers.UpdateAccesorio)
	accesorios.DELETE("/:id", handlers.DeleteAccesorio)

	// DOCUMENTOS
	documentos := api.Group("/documentos")
	documentos.GET("", handlers.ListDocumentos)
	documentos.GET("/:id", handlers.GetDocumento)
	documentos.POST("", handlers.CreateDocumento)
	documentos.PUT("/:id", handlers.UpdateDocumento)
	documentos.DELETE("/:id", handlers.DeleteDocumento)

	// USUARIOS DE SISTEMA
	susuarios := api.Group("/susuarios")
	susuarios.GET("", handlers.ListUsuariosSistema)
	susuarios.GET("/:id", handlers.GetUsuarioSistema)
	susuarios.POST("", handlers.CreateUsuarioSistema)
	susuarios.PUT("/:id", handlers.UpdateUsuarioSistema)
	susuarios.DELETE("/:id", handlers.DeleteUsuarioSistema)

	// AUTH
	auth := api.Group("/auth")
	auth.POST("/login", handlers.Login)
	auth.POST("/logout", handlers.Logout)
	auth.GET("/me", middleware.RequireAuth(), handlers.CurrentAccount)

	// DASHBOARD
	api.GET("/dashboard", handlers.GetDashboard)

	// HEALTHCHECK
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	return r
}
