package models

// Usuario es un miembro de la organización (responsable de equipos),
// no una cuenta de acceso al sistema (ver UsuarioSistema).
type Usuario struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Nombre        string `gorm:"size:150;not null" json:"nombre"`
	Cargo         string `gorm:"size:100;not null" json:"cargo"`
	Proceso       string `gorm:"size:100;not null" json:"proceso"`
	GrupoAsignado string `gorm:"size:100;not null" json:"grupo_asignado"`
	Area          string `gorm:"size:100;not null" json:"area"`
	Correo        string `gorm:"size:150;uniqueIndex;not null" json:"correo"`
	Ubicacion     string `gorm:"size:150" json:"ubicacion"`
	Activo        bool   `json:"activo"`
	FechaRegistro string `gorm:"size:10" json:"fecha_registro"`
}

func (Usuario) TableName() string { return "usuarios" }

var UsuarioColumns = []string{
	"nombre", "cargo", "proceso", "grupo_asignado", "area", "correo", "ubicacion", "activo",
}
