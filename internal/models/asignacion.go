package models

// Estados de una asignación. Devuelta es terminal.
const (
	AsignacionActiva   = "Activa"
	AsignacionDevuelta = "Devuelta"
)

// Asignacion vincula un equipo con su responsable. La base de datos garantiza
// como máximo una fila Activa por equipo (índice único parcial, ver database.Migrate).
type Asignacion struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UsuarioID       string `gorm:"size:36;not null" json:"usuario_id"`
	EquipoID        string `gorm:"size:36;not null" json:"equipo_id"`
	FechaAsignacion string `gorm:"size:10;not null" json:"fecha_asignacion"`
	Estado          string `gorm:"size:20;not null" json:"estado"`
	FechaDevolucion string `gorm:"size:10" json:"fecha_devolucion"`
	Observaciones   string `gorm:"type:text" json:"observaciones"`
	ActaPDF         string `gorm:"column:acta_pdf;size:255" json:"acta_pdf"`
	HojaVidaPDF     string `gorm:"column:hoja_vida_pdf;size:255" json:"hoja_vida_pdf"`

	Usuario *Usuario `json:"usuario,omitempty"`
	Equipo  *Equipo  `json:"equipo,omitempty"`
}

func (Asignacion) TableName() string { return "asignaciones" }

var AsignacionColumns = []string{
	"observaciones", "estado", "acta_pdf", "hoja_vida_pdf", "fecha_devolucion",
}
