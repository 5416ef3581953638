package catalog_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-ledger/internal/application/catalog"
	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El mutex serializa las transacciones y el
// snapshot/restore emula el rollback.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements []*entity.Movement
}

func newMemStore() *memStore {
	return &memStore{products: map[string]*entity.Product{}}
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.s.products {
		if existing.Code == p.Code {
			return domain.ErrDuplicateCode
		}
	}
	clone := *p
	r.s.products[p.ID] = &clone
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *memProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Code == code {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) ExistsByCode(code string) (bool, error) {
	p, err := r.GetByCode(code)
	return p != nil, err
}

func (r *memProductRepo) Update(p *entity.Product) error {
	stored, ok := r.s.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stock := stored.Stock
	clone := *p
	clone.Stock = stock
	r.s.products[p.ID] = &clone
	return nil
}

func (r *memProductRepo) UpdateStock(id string, stock int64) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.s.products {
		clone := *p
		list = append(list, &clone)
	}
	return list, nil
}

func (r *memProductRepo) ListWithEntries() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.s.products {
		for _, m := range r.s.movements {
			if m.ProductID == p.ID && m.Added > 0 {
				clone := *p
				list = append(list, &clone)
				break
			}
		}
	}
	return list, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	kept := r.s.movements[:0]
	for _, m := range r.s.movements {
		if m.ProductID != id {
			kept = append(kept, m)
		}
	}
	r.s.movements = kept
	return nil
}

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(m *entity.Movement) error {
	clone := *m
	r.s.movements = append(r.s.movements, &clone)
	return nil
}

func (r *memMovementRepo) List(limit, offset int) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for _, m := range r.s.movements {
		clone := *m
		list = append(list, &clone)
	}
	return list, nil
}

func (r *memMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			clone := *m
			list = append(list, &clone)
		}
	}
	return list, nil
}

func (r *memMovementRepo) UpdateCodeSnapshot(productID, code string) error {
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			m.ProductCode = code
		}
	}
	return nil
}

func (r *memMovementRepo) UpdateNameSnapshot(productID, name string) error {
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			m.ProductName = name
		}
	}
	return nil
}

type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	products := make(map[string]entity.Product, len(t.s.products))
	for id, p := range t.s.products {
		products[id] = *p
	}
	movements := make([]entity.Movement, 0, len(t.s.movements))
	for _, m := range t.s.movements {
		movements = append(movements, *m)
	}
	if err := fn(&memProductRepo{t.s}, &memMovementRepo{t.s}); err != nil {
		t.s.products = make(map[string]*entity.Product, len(products))
		for id := range products {
			p := products[id]
			t.s.products[id] = &p
		}
		t.s.movements = t.s.movements[:0]
		for i := range movements {
			m := movements[i]
			t.s.movements = append(t.s.movements, &m)
		}
		return err
	}
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func newUseCase(s *memStore) *catalog.ProductUseCase {
	return catalog.NewProductUseCase(&memProductRepo{s}, &memTxRunner{s})
}

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }

func seedWithMovements(s *memStore, id, code, name string, added, sold int64) {
	now := time.Now()
	s.products[id] = &entity.Product{
		ID: id, Code: code, Name: name, Stock: added - sold,
		CreatedAt: now, UpdatedAt: now,
	}
	s.movements = append(s.movements,
		&entity.Movement{ID: id + "-m1", ProductID: id, Date: now,
			ProductCode: code, ProductName: name, Added: added, CreatedAt: now},
		&entity.Movement{ID: id + "-m2", ProductID: id, Date: now,
			ProductCode: code, ProductName: name, Sold: sold, CreatedAt: now},
	)
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestCreate_NombreEnMinusculas(t *testing.T) {
	store := newMemStore()
	uc := newUseCase(store)

	out, err := uc.Create(dto.CreateProductRequest{Code: " sku1 ", Name: " widget ", Category: "Ferretería"})

	require.NoError(t, err)
	assert.Equal(t, "sku1", out.Code, "el código se guarda sin espacios")
	assert.Equal(t, "widget", out.Name)
	assert.Equal(t, int64(0), out.Stock, "el stock inicial siempre es 0")
	assert.NotEmpty(t, out.ID)
}

func TestCreate_NombreConMayusculasEsRechazado(t *testing.T) {
	uc := newUseCase(newMemStore())

	// El nombre no se corrige en silencio: "Widget" es un error, no "widget".
	_, err := uc.Create(dto.CreateProductRequest{Code: "sku1", Name: "Widget"})

	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestCreate_CodigoDuplicado(t *testing.T) {
	store := newMemStore()
	uc := newUseCase(store)

	_, err := uc.Create(dto.CreateProductRequest{Code: "sku1", Name: "widget"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{Code: "sku1", Name: "otro widget"})
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)
}

func TestCreate_CodigoVacio(t *testing.T) {
	uc := newUseCase(newMemStore())
	_, err := uc.Create(dto.CreateProductRequest{Code: "   ", Name: "widget"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_SinCambiosEsNoChange(t *testing.T) {
	store := newMemStore()
	seedWithMovements(store, "p1", "sku1", "widget", 10, 2)
	uc := newUseCase(store)

	_, err := uc.Update(context.Background(), "p1", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNoChange)

	// Mandar el mismo valor tampoco cuenta como cambio.
	_, err = uc.Update(context.Background(), "p1", dto.UpdateProductRequest{Name: strPtr("widget")})
	assert.ErrorIs(t, err, domain.ErrNoChange)
}

func TestUpdate_RenombreReescribeSnapshots(t *testing.T) {
	store := newMemStore()
	seedWithMovements(store, "p1", "sku1", "widget", 10, 2)
	uc := newUseCase(store)

	out, err := uc.Update(context.Background(), "p1", dto.UpdateProductRequest{
		Code: strPtr("sku2"),
		Name: strPtr("Widget Pro"),
	})

	require.NoError(t, err)
	assert.Equal(t, "sku2", out.Code)
	assert.Equal(t, "widget pro", out.Name, "el nombre en Update sí se normaliza a minúsculas")
	require.Len(t, store.movements, 2)
	for _, m := range store.movements {
		assert.Equal(t, "sku2", m.ProductCode, "todos los snapshots de código deben reescribirse")
		assert.Equal(t, "widget pro", m.ProductName, "todos los snapshots de nombre deben reescribirse")
	}
}

func TestUpdate_CodigoEnUsoPorOtroProducto(t *testing.T) {
	store := newMemStore()
	seedWithMovements(store, "p1", "sku1", "widget", 10, 0)
	seedWithMovements(store, "p2", "sku2", "tuerca", 5, 0)
	uc := newUseCase(store)

	_, err := uc.Update(context.Background(), "p1", dto.UpdateProductRequest{Code: strPtr("sku2")})

	assert.ErrorIs(t, err, domain.ErrDuplicateCode)
	assert.Equal(t, "sku1", store.products["p1"].Code, "el rechazo no deja cambios a medias")
}

func TestUpdate_CorreccionDeStockGeneraMovimientoSintetico(t *testing.T) {
	store := newMemStore()
	seedWithMovements(store, "p1", "sku1", "widget", 10, 0) // stock 10
	uc := newUseCase(store)

	out, err := uc.Update(context.Background(), "p1", dto.UpdateProductRequest{Stock: int64Ptr(4)})

	require.NoError(t, err)
	assert.Equal(t, int64(4), out.Stock)
	require.Len(t, store.movements, 3, "la corrección queda como un asiento más")

	adjustment := store.movements[2]
	assert.Equal(t, catalog.AdjustmentRemarks, adjustment.Remarks)
	assert.Equal(t, int64(6), adjustment.Sold, "bajar de 10 a 4 registra una salida de 6")
	assert.Equal(t, int64(0), adjustment.Added)

	var balance int64
	for _, m := range store.movements {
		balance += m.Added - m.Sold
	}
	assert.Equal(t, store.products["p1"].Stock, balance, "el libro sigue cuadrando tras la corrección")
}

func TestUpdate_CorreccionDeStockAlAlza(t *testing.T) {
	store := newMemStore()
	seedWithMovements(store, "p1", "sku1", "widget", 3, 0)
	uc := newUseCase(store)

	out, err := uc.Update(context.Background(), "p1", dto.UpdateProductRequest{Stock: int64Ptr(9)})

	require.NoError(t, err)
	assert.Equal(t, int64(9), out.Stock)
	adjustment := store.movements[len(store.movements)-1]
	assert.Equal(t, int64(6), adjustment.Added)
	assert.Equal(t, int64(0), adjustment.Sold)
}

func TestUpdate_StockNegativoEsInvalido(t *testing.T) {
	store := newMemStore()
	seedWithMovements(store, "p1", "sku1", "widget", 3, 0)
	uc := newUseCase(store)

	_, err := uc.Update(context.Background(), "p1", dto.UpdateProductRequest{Stock: int64Ptr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_ProductoInexistente(t *testing.T) {
	uc := newUseCase(newMemStore())
	_, err := uc.Update(context.Background(), "nope", dto.UpdateProductRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_ArrastraMovimientos(t *testing.T) {
	store := newMemStore()
	seedWithMovements(store, "p1", "sku1", "widget", 10, 2)
	uc := newUseCase(store)

	require.NoError(t, uc.Delete("p1"))

	assert.Empty(t, store.products)
	assert.Empty(t, store.movements, "el borrado arrastra el historial completo")

	err := uc.Delete("p1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "borrar dos veces no es idempotente silencioso")
}

func TestGetByID_InexistenteDevuelveNil(t *testing.T) {
	uc := newUseCase(newMemStore())
	out, err := uc.GetByID("nope")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestListWithEntries_SoloProductosConEntradas(t *testing.T) {
	store := newMemStore()
	seedWithMovements(store, "p1", "sku1", "widget", 10, 2)
	now := time.Now()
	store.products["p2"] = &entity.Product{ID: "p2", Code: "sku2", Name: "tuerca",
		CreatedAt: now, UpdatedAt: now}
	uc := newUseCase(store)

	out, err := uc.ListWithEntries()

	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "sku1", out.Items[0].Code)
}
