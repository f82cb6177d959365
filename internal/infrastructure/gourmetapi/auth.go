package gourmetapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gourmetify/admin-api/internal/domain"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

var _ repository.AuthGateway = (*Client)(nil)

// Login autentica contra el backend y devuelve el JSON crudo de la respuesta.
// El shape varía entre despliegues; la normalización vive en application/auth.
func (c *Client) Login(ctx context.Context, email, password string) (json.RawMessage, error) {
	body := map[string]string{"email": email, "password": password}
	return c.roundTrip(ctx, http.MethodPost, "/auth/login", body, callOpts{}, false)
}

// Me devuelve el JSON crudo de /auth/me (plano o anidado bajo user/data).
func (c *Client) Me(ctx context.Context) (json.RawMessage, error) {
	return c.roundTrip(ctx, http.MethodGet, "/auth/me", nil, callOpts{}, true)
}

// Refresh renueva la credencial y devuelve el token nuevo. No persiste: el
// caller decide (la renovación silenciosa del inyector usa refreshToken).
func (c *Client) Refresh(ctx context.Context) (string, error) {
	raw, err := c.roundTrip(ctx, http.MethodPost, "/auth/refresh", nil, callOpts{}, false)
	if err != nil {
		return "", err
	}
	tok := extractToken(raw)
	if tok == "" {
		return "", fmt.Errorf("refresh sin token: %w", domain.ErrUnauthorized)
	}
	return tok, nil
}

// ChangePassword cambia la credencial del usuario autenticado.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return c.do(ctx, http.MethodPatch, "/auth/change-password", body, nil, callOpts{})
}
