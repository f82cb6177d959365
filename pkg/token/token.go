package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims de interés dentro del access token que emite el backend.
// El gateway NO verifica la firma (no posee el secreto; la verificación es del
// backend): solo lee claims para decidir refrescos proactivos y como fallback
// de derivación cuando el snapshot de usuario todavía no se resolvió.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id,omitempty"`
	TenantID string `json:"tenant_id,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Peek decodifica los claims sin verificar la firma.
// Devuelve error si el token no es un JWT bien formado.
func Peek(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token: vacío")
	}
	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}
	return &claims, nil
}

// ExpiresWithin indica si el token expira dentro de la ventana dada.
// Un token ilegible o sin claim exp se reporta como expirado: el caller decide
// refrescar, y el backend tiene la última palabra de todos modos.
func ExpiresWithin(tokenString string, window time.Duration) bool {
	claims, err := Peek(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return true
	}
	return time.Until(claims.ExpiresAt.Time) < window
}
