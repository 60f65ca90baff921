package models

type Documento struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Nombre       string  `gorm:"size:150;not null" json:"nombre"`
	Tipo         string  `gorm:"size:50;not null" json:"tipo"`
	EquipoID     *string `gorm:"size:36" json:"equipo_id"`
	AsignacionID *string `gorm:"size:36" json:"asignacion_id"`
	UsuarioID    *string `gorm:"size:36" json:"usuario_id"`
	URL          string  `gorm:"size:255;not null" json:"url"`
	Version      int     `json:"version"`
	FechaCarga   string  `gorm:"size:10" json:"fecha_carga"`
	CargadoPor   string  `gorm:"size:150" json:"cargado_por"`

	Equipo  *Equipo  `json:"equipo,omitempty"`
	Usuario *Usuario `json:"usuario,omitempty"`
}

func (Documento) TableName() string { return "documentos" }

var DocumentoColumns = []string{
	"nombre", "tipo", "equipo_id", "asignacion_id", "usuario_id", "url", "version", "cargado_por",
}
