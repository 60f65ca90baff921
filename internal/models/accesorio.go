package models

type Accesorio struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Nombre            string  `gorm:"size:150;not null" json:"nombre"`
	Placa             string  `gorm:"size:50" json:"placa"`
	Serial            string  `gorm:"size:100" json:"serial"`
	EquipoPrincipalID *string `gorm:"size:36" json:"equipo_principal_id"`
	Cantidad          int     `json:"cantidad"`
	Estado            string  `gorm:"size:20;not null" json:"estado"`
	Observaciones     string  `gorm:"type:text" json:"observaciones"`
	FechaRegistro     string  `gorm:"size:10" json:"fecha_registro"`

	EquipoPrincipal *Equipo `gorm:"foreignKey:EquipoPrincipalID" json:"equipo_principal,omitempty"`
}

func (Accesorio) TableName() string { return "accesorios" }

var AccesorioColumns = []string{
	"nombre", "placa", "serial", "equipo_principal_id", "cantidad", "estado", "observaciones",
}
