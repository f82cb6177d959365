package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gourmetify/admin-api/internal/application/dto"
	"github.com/gourmetify/admin-api/internal/application/session"
	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

// SessionHandler vista y mutación del contexto de sesión vigente: sucursal
// activa y override de rol dev. Toda mutación pasa por el store para que los
// demás procesos del operador la vean por difusión.
type SessionHandler struct {
	container *session.Container
	store     repository.ContextStore
}

// NewSessionHandler construye el handler de sesión.
func NewSessionHandler(container *session.Container, store repository.ContextStore) *SessionHandler {
	return &SessionHandler{container: container, store: store}
}

// Get godoc
// @Summary      Sesión vigente
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.ToSessionResponse(
		h.container.Snapshot(),
		h.container.Loading(),
		h.container.DevRoleOverride(),
		h.container.EffectiveRole(),
	))
}

// SelectBranch godoc
// @Summary      Cambiar la sucursal activa
// @Description  Acepta un id concreto o el literal ALL. Solo los roles administrativos pueden elegir ALL o una sucursal distinta de la asignada.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectBranchRequest  true  "id de sucursal o ALL"
// @Success      200   {object}  dto.SessionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/session/branch [put]
func (h *SessionHandler) SelectBranch(c *fiber.Ctx) error {
	var in dto.SelectBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.BranchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branchId es requerido"})
	}
	target := entity.ParseBranchRef(in.BranchID)

	role := h.container.EffectiveRole()
	if !role.IsAdminLike() {
		snap := h.container.Snapshot()
		assigned := entity.BranchUnset()
		if snap.User != nil {
			assigned = snap.User.Branch.Concrete()
		}
		if target != assigned || target.IsUnset() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol vigente solo puede operar en su sucursal asignada"})
		}
	}

	h.store.Set(repository.FieldBranch, target.Storage())
	h.container.Patch(session.Patch{Branch: session.BranchPtr(target)})
	return h.Get(c)
}

// SetDevRole godoc
// @Summary      Fijar un override temporal de rol (solo entornos no productivos)
// @Description  Afecta únicamente el gating local; nunca viaja al backend. Un rol vacío quita el override.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RoleOverrideRequest  true  "rol o vacío"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/session/dev-role [put]
func (h *SessionHandler) SetDevRole(c *fiber.Ctx) error {
	var in dto.RoleOverrideRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	role := entity.ParseRole(in.Role)
	if in.Role != "" && role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rol desconocido"})
	}
	h.store.Set(repository.FieldRoleOverride, string(role))
	h.container.SetDevRoleOverride(role)
	return h.Get(c)
}

// ClearDevRole godoc
// @Summary      Quitar el override temporal de rol
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session/dev-role [delete]
func (h *SessionHandler) ClearDevRole(c *fiber.Ctx) error {
	h.store.Set(repository.FieldRoleOverride, "")
	h.container.SetDevRoleOverride("")
	return h.Get(c)
}
