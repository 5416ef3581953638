package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/catalog"
)

func TestValidateName(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"minúsculas válidas", "widget", nil},
		{"con espacios internos", "tuerca hexagonal", nil},
		{"con dígitos y guiones", "tornillo m-8", nil},
		{"acentos en minúscula", "tubería", nil},
		{"inicial mayúscula", "Widget", domain.ErrInvalidName},
		{"mayúscula interna", "widGet", domain.ErrInvalidName},
		{"mayúscula acentuada", "Ñandú", domain.ErrInvalidName},
		{"vacío", "", domain.ErrInvalidInput},
		{"solo espacios", "   ", domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := catalog.ValidateName(tc.input)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "widget pro", catalog.NormalizeName("  Widget Pro  "))
	assert.Equal(t, "ñandú", catalog.NormalizeName("ÑANDÚ"))
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "sku1", catalog.NormalizeCode(" sku1 "))
	assert.Equal(t, "SKU1", catalog.NormalizeCode("SKU1"), "el código no cambia de caja, solo se recorta")
}
