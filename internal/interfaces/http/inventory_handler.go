package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gourmetify/admin-api/internal/application/dto"
	"github.com/gourmetify/admin-api/internal/application/usecase"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

// InventoryHandler niveles de stock y movimientos de la sucursal activa.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Levels godoc
// @Summary      Niveles de stock de la sucursal activa
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        branchId  query  string  false  "Sucursal a consultar (solo roles administrativos)"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.Paged[entity.InventoryLevel]
// @Router       /api/inventory [get]
func (h *InventoryHandler) Levels(c *fiber.Ctx) error {
	pr, page := pageFromQuery(c)
	out, err := h.uc.Levels(c.Context(), page, c.Query("branchId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewPaged(out, pr))
}

// Adjust godoc
// @Summary      Ajustar el stock de un insumo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  repository.AdjustInventoryInput  true  "Insumo y delta"
// @Success      200   {object}  entity.InventoryLevel
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjust [patch]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in repository.AdjustInventoryInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Adjust(c.Context(), in, c.Query("branchId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Listar movimientos de stock
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        ingredientId  query  string  false  "Insumo"
// @Param        type          query  string  false  "Tipo de movimiento (IN, OUT, ADJUST, WASTE)"
// @Param        limit         query  int     false  "Límite"  default(20)
// @Param        offset        query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.Paged[entity.StockMovement]
// @Router       /api/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	pr, page := pageFromQuery(c)
	f := repository.MovementFilter{
		IngredientID: c.Query("ingredientId"),
		Type:         c.Query("type"),
		Limit:        page.Limit,
		Offset:       page.Offset,
	}
	out, err := h.uc.Movements(c.Context(), f, c.Query("branchId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewPaged(out, pr))
}

// CreateMovement godoc
// @Summary      Registrar un movimiento manual de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  repository.CreateMovementInput  true  "Movimiento"
// @Success      201   {object}  entity.StockMovement
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *InventoryHandler) CreateMovement(c *fiber.Ctx) error {
	var in repository.CreateMovementInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateMovement(c.Context(), in, c.Query("branchId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
