package dto

// ImportRowResult resultado de una fila de la importación masiva.
// Row es 1-based sobre las filas de datos (sin contar el encabezado).
type ImportRowResult struct {
	Row    int    `json:"row"`
	Code   string `json:"code,omitempty"`
	Status string `json:"status"` // "created" | "error"
	Error  string `json:"error,omitempty"`
}

// ImportSummaryResponse resumen de la importación: un resultado por fila,
// las filas fallidas no revierten las exitosas.
type ImportSummaryResponse struct {
	Created int               `json:"created"`
	Failed  int               `json:"failed"`
	Results []ImportRowResult `json:"results"`
}
