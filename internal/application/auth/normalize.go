package auth

import (
	"encoding/json"
	"strings"

	"github.com/gourmetify/admin-api/internal/domain"
	"github.com/gourmetify/admin-api/internal/domain/entity"
)

// NormalizedSession resultado de normalizar una respuesta de login/refresh:
// credencial más snapshot de usuario ya en el shape canónico.
type NormalizedSession struct {
	Token string
	User  *entity.AuthUser
	Flags entity.AuthFlags
}

// rawEnvelope shape tolerante de las respuestas de auth del backend. Según el
// despliegue, el token y el usuario vienen planos, bajo "user" o bajo "data";
// aceptamos todas las variantes en esta única frontera.
type rawEnvelope struct {
	Token       string           `json:"token"`
	AccessToken string           `json:"accessToken"`
	AccessSnake string           `json:"access_token"`
	User        json.RawMessage  `json:"user"`
	Data        json.RawMessage  `json:"data"`
	Flags       entity.AuthFlags `json:"flags"`
}

type rawUser struct {
	ID       string           `json:"id"`
	UserID   string           `json:"userId"`
	MongoID  string           `json:"_id"`
	Email    string           `json:"email"`
	Name     string           `json:"name"`
	FullName string           `json:"fullName"`
	Role     string           `json:"role"`
	TenantID string           `json:"tenantId"`
	Company  string           `json:"companyId"`
	Branch   entity.BranchRef `json:"branchId"`
}

// NormalizeAuthUser convierte el JSON crudo de /auth/me (o el sub-objeto user
// de login) al snapshot canónico. Tolera campos planos o anidados bajo "user"
// o "data". Sin id y email utilizables devuelve ErrInvalidAuthPayload: una
// identidad sin esos campos no sirve para nada y es mejor fallar temprano.
func NormalizeAuthUser(raw json.RawMessage) (*entity.AuthUser, error) {
	if len(raw) == 0 {
		return nil, domain.ErrInvalidAuthPayload
	}
	var env rawEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, domain.ErrInvalidAuthPayload
	}
	// El objeto usuario puede venir anidado uno o dos niveles.
	if len(env.Data) > 0 {
		return NormalizeAuthUser(env.Data)
	}
	if len(env.User) > 0 {
		return NormalizeAuthUser(env.User)
	}

	var ru rawUser
	if err := json.Unmarshal(raw, &ru); err != nil {
		return nil, domain.ErrInvalidAuthPayload
	}
	id := firstNonEmpty(ru.ID, ru.UserID, ru.MongoID)
	email := strings.ToLower(strings.TrimSpace(ru.Email))
	if id == "" || email == "" {
		return nil, domain.ErrInvalidAuthPayload
	}
	return &entity.AuthUser{
		ID:       id,
		Email:    email,
		Name:     firstNonEmpty(ru.Name, ru.FullName),
		Role:     entity.ParseRole(ru.Role),
		TenantID: firstNonEmpty(ru.TenantID, ru.Company),
		Branch:   ru.Branch,
	}, nil
}

// NormalizeAuthSession convierte el JSON crudo de /auth/login al par
// token + usuario. El token se busca en sus alias conocidos, plano o bajo
// "data"; el usuario pasa por NormalizeAuthUser. Un login sin token o sin
// usuario utilizable es inválido completo, no se acepta a medias.
func NormalizeAuthSession(raw json.RawMessage) (NormalizedSession, error) {
	if len(raw) == 0 {
		return NormalizedSession{}, domain.ErrInvalidAuthPayload
	}
	var env rawEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return NormalizedSession{}, domain.ErrInvalidAuthPayload
	}
	token := firstNonEmpty(env.Token, env.AccessToken, env.AccessSnake)
	flags := env.Flags
	userRaw := raw
	if len(env.Data) > 0 {
		var inner rawEnvelope
		if err := json.Unmarshal(env.Data, &inner); err == nil {
			token = firstNonEmpty(token, inner.Token, inner.AccessToken, inner.AccessSnake)
			if flags == nil {
				flags = inner.Flags
			}
		}
		userRaw = env.Data
	}
	if token == "" {
		return NormalizedSession{}, domain.ErrInvalidAuthPayload
	}
	user, err := NormalizeAuthUser(userRaw)
	if err != nil {
		return NormalizedSession{}, err
	}
	return NormalizedSession{Token: token, User: user, Flags: flags}, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
