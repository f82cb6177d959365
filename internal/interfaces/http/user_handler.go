package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gourmetify/admin-api/internal/application/dto"
	"github.com/gourmetify/admin-api/internal/application/usecase"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

// UserHandler administración de usuarios del tenant. El query param tenantId
// escopea la petición a otro tenant (solo SUPER_ADMIN).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios del tenant
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        tenantId  query  string  false  "Tenant a consultar (solo SUPER_ADMIN)"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.Paged[entity.User]
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	pr, page := pageFromQuery(c)
	out, err := h.uc.List(c.Context(), page, c.Query("tenantId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewPaged(out, pr))
}

// ListAdmin godoc
// @Summary      Listar usuarios vía el recurso de plataforma
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        tenantId  query  string  false  "Tenant a consultar"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.Paged[entity.User]
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/admin [get]
func (h *UserHandler) ListAdmin(c *fiber.Ctx) error {
	pr, page := pageFromQuery(c)
	out, err := h.uc.ListAdmin(c.Context(), page, c.Query("tenantId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewPaged(out, pr))
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id        path   string  true   "ID del usuario"
// @Param        tenantId  query  string  false  "Tenant a consultar (solo SUPER_ADMIN)"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"), c.Query("tenantId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        tenantId  query  string                      false  "Tenant destino (solo SUPER_ADMIN)"
// @Param        body      body   repository.CreateUserInput  true   "Datos del usuario"
// @Success      201  {object}  entity.User
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in repository.CreateUserInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in, c.Query("tenantId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateAdmin godoc
// @Summary      Crear usuario vía el recurso de plataforma
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        tenantId  query  string                      false  "Tenant destino"
// @Param        body      body   repository.CreateUserInput  true   "Datos del usuario"
// @Success      201  {object}  entity.User
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/admin [post]
func (h *UserHandler) CreateAdmin(c *fiber.Ctx) error {
	var in repository.CreateUserInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateAdmin(c.Context(), in, c.Query("tenantId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id        path   string                      true   "ID del usuario"
// @Param        tenantId  query  string                      false  "Tenant a consultar (solo SUPER_ADMIN)"
// @Param        body      body   repository.UpdateUserInput  true   "Campos a actualizar"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in repository.UpdateUserInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, c.Query("tenantId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Security     Bearer
// @Param        id        path   string  true   "ID del usuario"
// @Param        tenantId  query  string  false  "Tenant a consultar (solo SUPER_ADMIN)"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), c.Query("tenantId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
