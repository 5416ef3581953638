package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	domaincatalog "github.com/jhoicas/Inventario-ledger/internal/domain/catalog"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

// AdjustmentRemarks anotación de los movimientos sintéticos que
// materializan una corrección administrativa de stock.
const AdjustmentRemarks = "ajuste administrativo de stock"

// ProductUseCase casos de uso del catálogo. El stock no se crea ni se
// edita aquí salvo por la corrección administrativa, que se registra como
// movimiento sintético para que el libro siga cuadrando.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un producto con stock 0. El nombre no se corrige en
// silencio: mayúsculas son ErrInvalidName. Código duplicado es
// ErrDuplicateCode.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	code := domaincatalog.NormalizeCode(in.Code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	if err := domaincatalog.ValidateName(name); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Code:      code,
		Name:      name,
		Category:  strings.TrimSpace(in.Category),
		Stock:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// La unicidad del código la garantiza el constraint de la tabla;
	// el repo traduce la violación a ErrDuplicateCode.
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica cualquier subconjunto de cambios. Sin campos es
// ErrNoChange (informativo, no un fallo duro). Renombrar código o nombre
// reescribe los snapshots de todos los movimientos del producto en la
// misma transacción. La corrección de stock inserta un movimiento
// sintético con la diferencia, así el invariante del libro no se rompe.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		changed := false

		if in.Code != nil {
			newCode := domaincatalog.NormalizeCode(*in.Code)
			if newCode == "" {
				return domain.ErrInvalidInput
			}
			if newCode != product.Code {
				exists, err := productRepo.ExistsByCode(newCode)
				if err != nil {
					return err
				}
				if exists {
					return domain.ErrDuplicateCode
				}
				product.Code = newCode
				if err := movementRepo.UpdateCodeSnapshot(product.ID, newCode); err != nil {
					return err
				}
				changed = true
			}
		}

		if in.Name != nil {
			newName := domaincatalog.NormalizeName(*in.Name)
			if newName == "" {
				return domain.ErrInvalidInput
			}
			if newName != product.Name {
				product.Name = newName
				if err := movementRepo.UpdateNameSnapshot(product.ID, newName); err != nil {
					return err
				}
				changed = true
			}
		}

		if in.Category != nil {
			newCategory := strings.TrimSpace(*in.Category)
			if newCategory != product.Category {
				product.Category = newCategory
				changed = true
			}
		}

		now := time.Now()

		if in.Stock != nil && *in.Stock != product.Stock {
			delta := *in.Stock - product.Stock
			adjustment := &entity.Movement{
				ID:          uuid.New().String(),
				ProductID:   product.ID,
				Date:        now,
				ProductCode: product.Code,
				ProductName: product.Name,
				Remarks:     AdjustmentRemarks,
				CreatedAt:   now,
			}
			if delta > 0 {
				adjustment.Added = delta
			} else {
				adjustment.Sold = -delta
			}
			if err := movementRepo.Create(adjustment); err != nil {
				return err
			}
			product.Stock = *in.Stock
			if err := productRepo.UpdateStock(product.ID, product.Stock); err != nil {
				return err
			}
			changed = true
		}

		if !changed {
			return domain.ErrNoChange
		}

		product.UpdatedAt = now
		if err := productRepo.Update(product); err != nil {
			return err
		}
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina el producto; la FK con ON DELETE CASCADE arrastra todos
// sus movimientos. Irreversible.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// GetByID obtiene un producto por su clave interna.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List todos los productos, código ascendente.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toProductList(list), nil
}

// ListWithEntries solo productos con al menos una entrada registrada
// (added > 0); son los únicos contra los que tiene sentido vender.
func (uc *ProductUseCase) ListWithEntries() (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListWithEntries()
	if err != nil {
		return nil, err
	}
	return toProductList(list), nil
}

func toProductList(list []*entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Code:      p.Code,
		Name:      p.Name,
		Category:  p.Category,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
