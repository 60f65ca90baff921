package models

// Estados de un equipo. El estado solo lo mueve el ciclo de vida de asignaciones.
const (
	EquipoDisponible = "Disponible"
	EquipoAsignado   = "Asignado"
)

type Equipo struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Placa            string   `gorm:"size:50;uniqueIndex;not null" json:"placa"`
	Serial           string   `gorm:"size:100" json:"serial"`
	TipoEquipo       string   `gorm:"size:50;not null" json:"tipo_equipo"`
	Marca            string   `gorm:"size:100" json:"marca"`
	Modelo           string   `gorm:"size:100" json:"modelo"`
	SistemaOperativo string   `gorm:"size:100" json:"sistema_operativo"`
	VersionSO        string   `gorm:"column:version_so;size:50" json:"version_so"`
	RAM              string   `gorm:"column:ram;size:50" json:"ram"`
	Disco            string   `gorm:"size:50" json:"disco"`
	Tecnologia       string   `gorm:"size:100" json:"tecnologia"`
	Criticidad       string   `gorm:"size:20;not null" json:"criticidad"`
	Confidencialidad string   `gorm:"size:20;not null" json:"confidencialidad"`
	Estado           string   `gorm:"size:20;not null" json:"estado"`
	FechaRegistro    string   `gorm:"size:10" json:"fecha_registro"`
	FechaCompra      string   `gorm:"size:10" json:"fecha_compra"`
	Proveedor        string   `gorm:"size:150" json:"proveedor"`
	Costo            *float64 `json:"costo"`
	EsRentado        bool     `json:"es_rentado"`
	Observaciones    string   `gorm:"type:text" json:"observaciones"`
}

func (Equipo) TableName() string { return "equipos" }

// Columnas que acepta el UPDATE parcial; cualquier otra clave se ignora.
var EquipoColumns = []string{
	"placa", "serial", "tipo_equipo", "marca", "modelo", "sistema_operativo", "version_so",
	"ram", "disco", "tecnologia", "criticidad", "confidencialidad", "estado",
	"fecha_compra", "proveedor", "costo", "es_rentado", "observaciones",
}
