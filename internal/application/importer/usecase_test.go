package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-ledger/internal/application/catalog"
	"github.com/jhoicas/Inventario-ledger/internal/application/importer"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
)

// memCatalogRepo lo mínimo de ProductRepository que ejercita el
// pipeline de importación (Create y ExistsByCode).
type memCatalogRepo struct {
	byCode map[string]*entity.Product
}

func newMemCatalogRepo() *memCatalogRepo {
	return &memCatalogRepo{byCode: map[string]*entity.Product{}}
}

func (r *memCatalogRepo) Create(p *entity.Product) error {
	if _, ok := r.byCode[p.Code]; ok {
		return domain.ErrDuplicateCode
	}
	clone := *p
	r.byCode[p.Code] = &clone
	return nil
}

func (r *memCatalogRepo) ExistsByCode(code string) (bool, error) {
	_, ok := r.byCode[code]
	return ok, nil
}

func (r *memCatalogRepo) GetByID(string) (*entity.Product, error)      { return nil, nil }
func (r *memCatalogRepo) GetByCode(string) (*entity.Product, error)    { return nil, nil }
func (r *memCatalogRepo) GetForUpdate(string) (*entity.Product, error) { return nil, nil }
func (r *memCatalogRepo) Update(*entity.Product) error                 { return nil }
func (r *memCatalogRepo) UpdateStock(string, int64) error              { return nil }
func (r *memCatalogRepo) List() ([]*entity.Product, error)             { return nil, nil }
func (r *memCatalogRepo) ListWithEntries() ([]*entity.Product, error)  { return nil, nil }
func (r *memCatalogRepo) Delete(string) error                          { return nil }

func newImportUseCase(repo *memCatalogRepo) *importer.ImportUseCase {
	// El pipeline solo usa Create del catálogo, que no abre transacción.
	catalogUC := catalog.NewProductUseCase(repo, nil)
	return importer.NewImportUseCase(importer.NewCodeAllocator(repo), catalogUC)
}

func TestImportBatch_FilasIndependientes(t *testing.T) {
	repo := newMemCatalogRepo()
	uc := newImportUseCase(repo)

	summary := uc.ImportBatch([]importer.Row{
		{Code: "sku1", Name: "widget", Category: "ferretería"},
		{Code: "sku2", Name: "Tuerca", Category: "ferretería"}, // mayúscula: debe fallar
		{Code: "sku3", Name: "arandela", Category: "ferretería"},
	})

	require.Len(t, summary.Results, 3)
	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 1, summary.Failed)

	assert.Equal(t, "created", summary.Results[0].Status)
	assert.Equal(t, 1, summary.Results[0].Row)

	// La fila inválida falla sola, sin abortar el lote ni revertir nada.
	assert.Equal(t, "error", summary.Results[1].Status)
	assert.Equal(t, 2, summary.Results[1].Row)
	assert.Equal(t, domain.ErrInvalidName.Error(), summary.Results[1].Error)

	assert.Equal(t, "created", summary.Results[2].Status)
	assert.Equal(t, 3, summary.Results[2].Row)

	assert.Contains(t, repo.byCode, "sku1")
	assert.NotContains(t, repo.byCode, "sku2")
	assert.Contains(t, repo.byCode, "sku3")
}

func TestImportBatch_ColisionesRecibenSufijo(t *testing.T) {
	repo := newMemCatalogRepo()
	uc := newImportUseCase(repo)

	summary := uc.ImportBatch([]importer.Row{
		{Code: "sku1", Name: "widget a", Category: "a"},
		{Code: "sku1", Name: "widget b", Category: "b"},
		{Code: "sku1", Name: "widget c", Category: "c"},
	})

	assert.Equal(t, 3, summary.Created)
	assert.Equal(t, "sku1", summary.Results[0].Code)
	assert.Equal(t, "sku1(1)", summary.Results[1].Code)
	assert.Equal(t, "sku1(2)", summary.Results[2].Code)
}

func TestImportBatch_CodigoExistenteEnCatalogo(t *testing.T) {
	repo := newMemCatalogRepo()
	repo.byCode["sku1"] = &entity.Product{ID: "p0", Code: "sku1", Name: "preexistente"}
	uc := newImportUseCase(repo)

	summary := uc.ImportBatch([]importer.Row{
		{Code: " sku1 ", Name: "widget", Category: "ferretería"},
	})

	require.Equal(t, 1, summary.Created)
	assert.Equal(t, "sku1(1)", summary.Results[0].Code, "el código propuesto se recorta y recibe sufijo")
}

func TestImportBatch_LoteVacio(t *testing.T) {
	uc := newImportUseCase(newMemCatalogRepo())

	summary := uc.ImportBatch(nil)

	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, 0, summary.Failed)
	assert.Empty(t, summary.Results)
}
