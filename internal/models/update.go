package models

// FilterColumns deja en el payload solo las columnas permitidas para la entidad.
// Un payload sin claves permitidas produce un mapa vacío y el UPDATE se omite.
func FilterColumns(payload map[string]any, allowed []string) map[string]any {
	updates := make(map[string]any, len(payload))
	for _, col := range allowed {
		if v, ok := payload[col]; ok {
			updates[col] = v
		}
	}
	return updates
}
