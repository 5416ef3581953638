package catalog

import (
	"strings"
	"unicode"

	"github.com/jhoicas/Inventario-ledger/internal/domain"
)

// ValidateName rechaza nombres de producto con mayúsculas. El catálogo
// no normaliza por su cuenta: un nombre con mayúsculas es un error del
// caller, no algo que se corrige en silencio.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrInvalidInput
	}
	for _, r := range name {
		if unicode.IsUpper(r) {
			return domain.ErrInvalidName
		}
	}
	return nil
}

// NormalizeName pasa el nombre a minúsculas y quita espacios en los
// extremos. Lo usa la edición de productos al renombrar.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeCode quita espacios en los extremos del código propuesto.
func NormalizeCode(code string) string {
	return strings.TrimSpace(code)
}
