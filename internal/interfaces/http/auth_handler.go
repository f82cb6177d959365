package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gourmetify/admin-api/internal/application/auth"
	"github.com/gourmetify/admin-api/internal/application/dto"
	"github.com/gourmetify/admin-api/internal/application/session"
)

// AuthHandler login, resolución de identidad, logout y cambio de password.
type AuthHandler struct {
	uc        *auth.AuthUseCase
	container *session.Container
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, container *session.Container) *AuthHandler {
	return &AuthHandler{uc: uc, container: container}
}

// Login godoc
// @Summary      Iniciar sesión contra el backend central
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	if _, err := h.uc.Login(c.Context(), in.Email, in.Password); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.sessionView())
}

// Me godoc
// @Summary      Re-resolver la identidad vigente
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	if _, err := h.uc.Me(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.sessionView())
}

// Logout godoc
// @Summary      Cerrar la sesión y limpiar el contexto persistido
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout()
	return c.SendStatus(fiber.StatusNoContent)
}

// ChangePassword godoc
// @Summary      Cambiar el password del usuario vigente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "password actual y nuevo"
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/change-password [patch]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "currentPassword y newPassword son requeridos"})
	}
	if len(in.NewPassword) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "newPassword debe tener al menos 8 caracteres"})
	}
	if err := h.uc.ChangePassword(c.Context(), in.CurrentPassword, in.NewPassword); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) sessionView() dto.SessionResponse {
	return dto.ToSessionResponse(
		h.container.Snapshot(),
		h.container.Loading(),
		h.container.DevRoleOverride(),
		h.container.EffectiveRole(),
	)
}
