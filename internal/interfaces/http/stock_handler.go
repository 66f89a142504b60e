package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/stock"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/pkg/validator"
)

// StockHandler maneja el motor de stock: movimientos, vista general e histórico.
type StockHandler struct {
	adjust   *stock.AdjustStockUseCase
	history  *stock.HistoryUseCase
	overview *stock.OverviewUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(adjust *stock.AdjustStockUseCase, history *stock.HistoryUseCase, overview *stock.OverviewUseCase) *StockHandler {
	return &StockHandler{adjust: adjust, history: history, overview: overview}
}

// AdjustStock godoc
// @Summary      Registrar movimiento de stock (IN/OUT)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la variante"
// @Param        body  body  dto.AdjustStockRequest  true  "kind (IN|OUT), quantity > 0, reason y note opcionales"
// @Success      201   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/variants/{id}/movements [post]
func (h *StockHandler) AdjustStock(c *fiber.Ctx) error {
	variantID := c.Params("id")
	if variantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.ValidateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	newStock, err := h.adjust.Adjust(c.Context(), stock.AdjustInput{
		VariantID: variantID,
		Kind:      in.Kind,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Note:      in.Note,
		ActorID:   GetUserID(c),
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo o cantidad inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "variante no encontrada"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "salida mayor que el stock actual"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AdjustStockResponse{
		VariantID: variantID,
		Kind:      in.Kind,
		Quantity:  in.Quantity,
		NewStock:  newStock,
	})
}

// History godoc
// @Summary      Histórico reciente de movimientos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de asientos (tope 200)"  default(200)
// @Success      200    {object}  dto.MovementHistoryResponse
// @Router       /api/stock/history [get]
func (h *StockHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", stock.HistoryMaxLimit)
	movements, err := h.history.ListRecent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MovementHistoryResponse{Total: len(movements), Movements: movements})
}

// Overview godoc
// @Summary      Vista general del stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockOverviewResponse
// @Router       /api/stock [get]
func (h *StockHandler) Overview(c *fiber.Ctx) error {
	out, err := h.overview.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
