package models

import "time"

type RolSistema string

const (
	RolAdmin  RolSistema = "admin"
	RolGestor RolSistema = "gestor"
)

// UsuarioSistema es una cuenta de acceso; opcionalmente enlaza con un Usuario.
type UsuarioSistema struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Username     string     `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Rol          RolSistema `gorm:"type:varchar(20);not null" json:"rol"`
	Nombre       string     `gorm:"size:150" json:"nombre"`
	Email        string     `gorm:"size:150" json:"email"`
	UsuarioID    *string    `gorm:"size:36" json:"usuario_id"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (UsuarioSistema) TableName() string { return "usuarios_sistema" }

var UsuarioSistemaColumns = []string{
	"username", "rol", "nombre", "email", "usuario_id",
}
