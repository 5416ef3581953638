package http

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
	"github.com/jhoicas/Inventario-ledger/internal/application/importer"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
)

// ImportHandler recibe un CSV y lo pasa al pipeline de importación.
// El parseo del archivo es pegamento de presentación; la validación de
// esquema y la resolución de códigos viven en el pipeline.
type ImportHandler struct {
	uc *importer.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Import godoc
// @Summary      Importación masiva de productos desde CSV
// @Tags         products
// @Security     Bearer
// @Accept       text/csv
// @Produce      json
// @Success      200  {object}  dto.ImportSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SCHEMA", Message: "archivo vacío"})
	}

	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1 // el pipeline tolera filas cortas
	header, err := reader.Read()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SCHEMA", Message: "CSV ilegible"})
	}
	var records [][]string
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SCHEMA", Message: "CSV ilegible"})
		}
		records = append(records, rec)
	}

	rows, err := importer.ParseTable(header, records)
	if err != nil {
		if errors.Is(err, domain.ErrSchema) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SCHEMA", Message: "faltan columnas requeridas: id, name, category"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	return c.JSON(h.uc.ImportBatch(rows))
}
