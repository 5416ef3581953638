package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

// ApplyMovementUseCase registra movimientos de stock de forma transaccional
// con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback. Es el único
// escritor del campo stock: tras cada Apply exitoso se cumple
// stock == sum(added) - sum(sold) sobre los movimientos del producto.
type ApplyMovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
}

// NewApplyMovementUseCase construye el caso de uso. movementRepo se usa
// solo para lecturas de historial (fuera de transacción).
func NewApplyMovementUseCase(txRunner TxRunner, movementRepo repository.MovementRepository) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// MovementInput entrada para Apply. Added y Sold pueden ser ambos
// distintos de cero en la misma llamada (corrección); actúan de forma
// independiente, no acumulada, contra el stock previo al movimiento.
type MovementInput struct {
	ProductID string
	Date      time.Time
	Added     int64
	Sold      int64
	Remarks   string
}

// Apply valida la venta contra el stock previo (lo que se agrega en la
// misma llamada no está disponible para vender), persiste el asiento con
// snapshots de código y nombre, y deja el nuevo stock. Todo en una
// transacción: un fallo en cualquier paso revierte el conjunto.
func (uc *ApplyMovementUseCase) Apply(ctx context.Context, input MovementInput) (*dto.ApplyMovementResponse, error) {
	if input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Added < 0 || input.Sold < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	var out *dto.ApplyMovementResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Bloquea la fila del producto: serializa Apply concurrentes y
		// evita que dos ventas pasen la validación contra el mismo stock.
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if input.Sold > 0 && product.Stock-input.Sold < 0 {
			return domain.ErrInsufficientStock
		}
		newStock := product.Stock + input.Added - input.Sold

		movement := &entity.Movement{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			Date:        date,
			ProductCode: product.Code,
			ProductName: product.Name,
			Added:       input.Added,
			Sold:        input.Sold,
			Remarks:     input.Remarks,
			CreatedAt:   now,
		}
		if err := movementRepo.Create(movement); err != nil {
			return err
		}
		if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
			return err
		}
		out = &dto.ApplyMovementResponse{
			Movement: toMovementResponse(movement),
			Stock:    newStock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListMovements historial completo, fecha descendente.
func (uc *ApplyMovementUseCase) ListMovements(limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(list, limit, offset), nil
}

// ListByProduct historial de un producto, fecha descendente.
func (uc *ApplyMovementUseCase) ListByProduct(productID string, limit, offset int) (*dto.MovementListResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.movementRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(list, limit, offset), nil
}

func toMovementList(list []*entity.Movement, limit, offset int) *dto.MovementListResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		Date:        m.Date.Format("2006-01-02"),
		ProductCode: m.ProductCode,
		ProductName: m.ProductName,
		Added:       m.Added,
		Sold:        m.Sold,
		Remarks:     m.Remarks,
		CreatedAt:   m.CreatedAt,
	}
}
