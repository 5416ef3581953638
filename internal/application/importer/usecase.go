package importer

import (
	"errors"
	"strings"

	"github.com/jhoicas/Inventario-ledger/internal/application/catalog"
	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	domaincatalog "github.com/jhoicas/Inventario-ledger/internal/domain/catalog"
)

// Reintentos del insert cuando otro caller gana la carrera por el mismo
// código entre la sonda del asignador y el insert.
const maxAllocateAttempts = 5

// ImportUseCase pipeline de importación masiva: normaliza cada fila,
// resuelve un código libre vía CodeAllocator y crea el producto en el
// catálogo. Cada fila es un intento independiente: un fallo no aborta ni
// revierte las filas anteriores.
type ImportUseCase struct {
	allocator *CodeAllocator
	catalog   *catalog.ProductUseCase
}

// NewImportUseCase construye el pipeline.
func NewImportUseCase(allocator *CodeAllocator, catalogUC *catalog.ProductUseCase) *ImportUseCase {
	return &ImportUseCase{allocator: allocator, catalog: catalogUC}
}

// ImportBatch procesa las filas ya validadas contra el esquema (ver
// ParseTable) y devuelve un resultado por fila, 1-based.
func (uc *ImportUseCase) ImportBatch(rows []Row) *dto.ImportSummaryResponse {
	summary := &dto.ImportSummaryResponse{
		Results: make([]dto.ImportRowResult, 0, len(rows)),
	}
	for i, row := range rows {
		result := uc.importRow(row)
		result.Row = i + 1
		if result.Status == "created" {
			summary.Created++
		} else {
			summary.Failed++
		}
		summary.Results = append(summary.Results, result)
	}
	return summary
}

func (uc *ImportUseCase) importRow(row Row) dto.ImportRowResult {
	proposed := domaincatalog.NormalizeCode(row.Code)
	// Solo trim: un nombre con mayúsculas debe fallar la validación del
	// catálogo y quedar reportado en el resultado de su fila.
	name := strings.TrimSpace(row.Name)

	var lastErr error
	for attempt := 0; attempt < maxAllocateAttempts; attempt++ {
		code, err := uc.allocator.Allocate(proposed)
		if err != nil {
			lastErr = err
			break
		}
		out, err := uc.catalog.Create(dto.CreateProductRequest{
			Code:     code,
			Name:     name,
			Category: row.Category,
		})
		if err == nil {
			return dto.ImportRowResult{Code: out.Code, Status: "created"}
		}
		// Otro caller ocupó el código entre sonda e insert: re-sondear.
		if errors.Is(err, domain.ErrDuplicateCode) {
			lastErr = err
			continue
		}
		lastErr = err
		break
	}
	return dto.ImportRowResult{Code: proposed, Status: "error", Error: lastErr.Error()}
}
