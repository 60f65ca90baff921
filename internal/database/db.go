package database

import (
	"log"
	"os"
	"time"

	"inventario-api/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init abre el pool compartido del proceso; los límites acotan las
// conexiones abiertas y ociosas durante toda la vida del servicio.
func Init(dsn string, maxOpen, maxIdle int) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := Migrate(DB); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	createDefaultAdmin()
}

// Migrate crea el esquema completo: las seis tablas más el índice único parcial
// que garantiza una sola asignación Activa por equipo.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Usuario{},
		&models.Equipo{},
		&models.Accesorio{},
		&models.Asignacion{},
		&models.Documento{},
		&models.UsuarioSistema{},
	)
	if err != nil {
		return err
	}

	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_asignaciones_equipo_activa
		 ON asignaciones (equipo_id) WHERE estado = 'Activa'`,
	).Error
}

// Close libera el pool de conexiones al apagar el proceso.
func Close() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("failed to get sql.DB for close: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("failed to close DB: %v", err)
	}
}

// cuenta admin inicial solo desde el entorno
func createDefaultAdmin() {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := DB.Model(&models.UsuarioSistema{}).
		Where("rol = ?", models.RolAdmin).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin account: %v", err)
		return
	}
	if count > 0 {
		// ya hay admin, nada que hacer
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.UsuarioSistema{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Rol:          models.RolAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	log.Printf("created default admin account: %s", username)
}
