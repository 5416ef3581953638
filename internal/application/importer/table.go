package importer

import (
	"strings"

	"github.com/jhoicas/Inventario-ledger/internal/domain"
)

// Columnas requeridas en la entrada tabular. El matching de encabezados
// es case-insensitive y tolera espacios; columnas extra se ignoran.
var requiredColumns = []string{"id", "name", "category"}

// Row una fila de datos ya mapeada a campos, sin normalizar todavía.
type Row struct {
	Code     string
	Name     string
	Category string
}

// ParseTable valida el encabezado y mapea los registros a filas. Si
// falta alguna columna requerida devuelve ErrSchema y no se procesa
// ninguna fila (todo-o-nada en la validación de esquema).
func ParseTable(header []string, records [][]string) ([]Row, error) {
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, domain.ErrSchema
		}
	}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Row{
			Code:     fieldAt(rec, index["id"]),
			Name:     fieldAt(rec, index["name"]),
			Category: fieldAt(rec, index["category"]),
		})
	}
	return rows, nil
}

func fieldAt(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}
