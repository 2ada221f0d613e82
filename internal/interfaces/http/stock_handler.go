package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// StockHandler maneja las peticiones HTTP de stock y movimientos (protegido).
type StockHandler struct {
	adjustUC *inventory.AdjustStockUseCase
	queryUC  *inventory.StockQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(adjustUC *inventory.AdjustStockUseCase, queryUC *inventory.StockQueryUseCase) *StockHandler {
	return &StockHandler{adjustUC: adjustUC, queryUC: queryUC}
}

// Inbound godoc
// @Summary      Registrar entrada de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        branchId  path  int                     true  "Sucursal"
// @Param        body      body  dto.AdjustStockRequest  true  "item_id, bundle_change, unit_change, note"
// @Success      200  {object}  dto.SnapshotResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/branch/{branchId}/inbound [post]
func (h *StockHandler) Inbound(c *fiber.Ctx) error {
	return h.adjust(c, entity.MovementTypeINBOUND)
}

// Sale godoc
// @Summary      Registrar venta
// @Tags         stock
// @Security     Bearer
// @Router       /api/stock/branch/{branchId}/sale [post]
func (h *StockHandler) Sale(c *fiber.Ctx) error {
	return h.adjust(c, entity.MovementTypeSALE)
}

// Adjustment godoc
// @Summary      Registrar ajuste manual
// @Tags         stock
// @Security     Bearer
// @Router       /api/stock/branch/{branchId}/adjustment [post]
func (h *StockHandler) Adjustment(c *fiber.Ctx) error {
	return h.adjust(c, entity.MovementTypeADJUSTMENT)
}

// Transfer godoc
// @Summary      Registrar traslado
// @Tags         stock
// @Security     Bearer
// @Router       /api/stock/branch/{branchId}/transfer [post]
func (h *StockHandler) Transfer(c *fiber.Ctx) error {
	return h.adjust(c, entity.MovementTypeTRANSFER)
}

func (h *StockHandler) adjust(c *fiber.Ctx, movementType string) error {
	actor, ok := GetActor(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	branchID, err := c.ParamsInt("branchId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branchId inválido"})
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ItemID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_id requerido"})
	}

	snap, err := h.adjustUC.Adjust(c.Context(), actor, inventory.AdjustInput{
		BranchID:     int64(branchID),
		ItemID:       in.ItemID,
		BundleChange: in.BundleChange,
		UnitChange:   in.UnitChange,
		Type:         movementType,
		Note:         in.Note,
	})
	if err != nil {
		return mapDomainError(c, err)
	}

	return c.JSON(dto.SnapshotResponse{
		ItemID:         snap.ItemID,
		BranchID:       snap.BranchID,
		BundleQuantity: snap.BundleQuantity,
		UnitQuantity:   snap.UnitQuantity,
		LastUpdated:    snap.LastUpdated,
	})
}

// GetBranchStock godoc
// @Summary      Stock actual de una sucursal
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        branchId  path  int  true  "Sucursal"
// @Success      200  {array}   dto.BranchStockDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/branch/{branchId} [get]
func (h *StockHandler) GetBranchStock(c *fiber.Ctx) error {
	actor, ok := GetActor(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	branchID, err := c.ParamsInt("branchId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branchId inválido"})
	}

	list, err := h.queryUC.GetBranchStock(c.Context(), actor, int64(branchID))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(list)
}

// GetMovements godoc
// @Summary      Movimientos de un artículo en una sucursal
// @Description  Página del libro de movimientos, más recientes primero.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        branchId  path   int  true   "Sucursal"
// @Param        itemId    path   int  true   "Artículo"
// @Param        page      query  int  false  "Página (1-based)"
// @Param        limit     query  int  false  "Tamaño de página (default 20, max 100)"
// @Success      200  {object}  dto.MovementPageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/movements/branch/{branchId}/item/{itemId} [get]
func (h *StockHandler) GetMovements(c *fiber.Ctx) error {
	actor, ok := GetActor(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	branchID, err := c.ParamsInt("branchId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branchId inválido"})
	}
	itemID, err := c.ParamsInt("itemId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "itemId inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}

	result, err := h.queryUC.GetMovements(c.Context(), actor, int64(branchID), int64(itemID), page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(result)
}

// GetMonthlySummaries godoc
// @Summary      Totales mensuales archivados de un artículo
// @Description  Resúmenes generados por el job de archivado, más recientes primero.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        branchId  path  int  true  "Sucursal"
// @Param        itemId    path  int  true  "Artículo"
// @Success      200  {array}   dto.MonthlySummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/summaries/branch/{branchId}/item/{itemId} [get]
func (h *StockHandler) GetMonthlySummaries(c *fiber.Ctx) error {
	actor, ok := GetActor(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	branchID, err := c.ParamsInt("branchId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branchId inválido"})
	}
	itemID, err := c.ParamsInt("itemId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "itemId inválido"})
	}

	list, err := h.queryUC.GetMonthlySummaries(c.Context(), actor, int64(branchID), int64(itemID))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(list)
}

// mapDomainError traduce errores de dominio a códigos HTTP.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal o artículo no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tienes acceso a esta sucursal"})
	case errors.Is(err, domain.ErrInvalidOperation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_OPERATION", Message: "no se puede vender un artículo sin stock inicial"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para realizar esta operación"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
