package repository

import (
	"context"
	"encoding/json"
)

// AuthGateway puerto hacia los endpoints de autenticación del backend central.
// Login y Me devuelven el JSON crudo: el shape varía entre despliegues (campos
// planos o anidados bajo "user"/"data") y se normaliza en una única frontera
// de la capa de aplicación, nunca en cada call site.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (json.RawMessage, error)
	Me(ctx context.Context) (json.RawMessage, error)
	// Refresh intenta renovar la credencial; devuelve el token nuevo o error.
	Refresh(ctx context.Context) (string, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}
