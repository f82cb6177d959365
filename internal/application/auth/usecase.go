package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gourmetify/admin-api/internal/application/session"
	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
	"github.com/gourmetify/admin-api/pkg/logger"
	"github.com/gourmetify/admin-api/pkg/token"
)

// refreshWindow antelación con la que se renueva una credencial por vencer.
const refreshWindow = 30 * time.Second

// AuthUseCase casos de uso de autenticación contra el backend central:
// login, resolución de identidad, logout y cambio de password. Es el único
// lugar que escribe credenciales en el ContextStore y el contenedor.
type AuthUseCase struct {
	gateway   repository.AuthGateway
	store     repository.ContextStore
	container *session.Container
	log       *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(gateway repository.AuthGateway, store repository.ContextStore, container *session.Container, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{gateway: gateway, store: store, container: container, log: log}
}

// Login autentica contra el backend, normaliza la respuesta, reconcilia la
// sucursal activa y persiste credencial + contexto. La sesión previa se
// reemplaza por completo. Devuelve el snapshot de la sesión resultante.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (entity.Session, error) {
	raw, err := uc.gateway.Login(ctx, email, password)
	if err != nil {
		return entity.Session{}, err
	}
	norm, err := NormalizeAuthSession(raw)
	if err != nil {
		return entity.Session{}, err
	}
	user := norm.User

	stored := entity.BranchUnset()
	if v, ok := uc.store.Get(repository.FieldBranch); ok {
		stored = entity.ParseBranchRef(v)
	}
	branch := reconcileBranch(user, stored)

	uc.persist(norm.Token, user, branch)

	p := session.Patch{
		Token:  session.Str(norm.Token),
		Branch: session.BranchPtr(branch),
		User:   session.UserPtr(user),
	}
	if user.TenantID != "" {
		p.TenantID = session.Str(user.TenantID)
	}
	if user.Role != "" {
		p.Role = session.RolePtr(user.Role)
	}
	if norm.Flags != nil {
		p.Flags = &norm.Flags
	}
	uc.container.Hydrate(p)

	uc.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).
		Str("branch", branch.String()).Msg("login exitoso")
	return uc.container.Snapshot(), nil
}

// Me re-resuelve la identidad contra /auth/me y actualiza el snapshot de
// usuario de la sesión vigente. El resultado se aplica con chequeo de época:
// si la sesión fue reemplazada o limpiada mientras la llamada estaba en vuelo,
// se descarta. Una respuesta que no normaliza invalida la sesión completa.
func (uc *AuthUseCase) Me(ctx context.Context) (entity.Session, error) {
	expected := uc.container.Snapshot().Token
	uc.container.SetLoading(true)
	defer uc.container.SetLoading(false)

	// Refresh proactivo: si la credencial está por vencer se renueva antes de
	// consultar, en lugar de pagar el 401 y el reintento. La rotación queda
	// registrada en el contenedor para no romper el chequeo de época.
	if tok, ok := uc.store.Get(repository.FieldToken); ok && token.ExpiresWithin(tok, refreshWindow) {
		if fresh, err := uc.gateway.Refresh(ctx); err == nil && fresh != "" {
			uc.store.Set(repository.FieldToken, fresh)
			if uc.container.RotateToken(tok, fresh) {
				expected = fresh
			}
		}
	}

	raw, err := uc.gateway.Me(ctx)
	if err != nil {
		return entity.Session{}, err
	}
	user, err := NormalizeAuthUser(raw)
	if err != nil {
		uc.log.Warn().Err(err).Msg("respuesta de /auth/me no normalizable, limpiando sesión")
		uc.Logout()
		return entity.Session{}, err
	}

	branch := reconcileBranch(user, uc.container.Snapshot().Branch)
	p := session.Patch{
		Branch: session.BranchPtr(branch),
		User:   session.UserPtr(user),
	}
	if user.Role != "" {
		p.Role = session.RolePtr(user.Role)
	}
	if user.TenantID != "" {
		p.TenantID = session.Str(user.TenantID)
	}

	// Chequeo de época: solo se acepta el token capturado al inicio o una
	// rotación registrada por refresh silencioso. Cualquier otro cambio de
	// sesión en vuelo (logout, login de otro usuario) descarta el resultado.
	if !uc.container.PatchIfToken(expected, p) {
		uc.log.Debug().Msg("resultado de /auth/me descartado: la sesión cambió en vuelo")
		return uc.container.Snapshot(), nil
	}

	if tok, ok := uc.store.Get(repository.FieldToken); ok {
		uc.persist(tok, user, branch)
	}
	return uc.container.Snapshot(), nil
}

// Logout limpia el contexto persistido y vuelve la sesión al estado vacío.
// Idempotente. El override de rol dev sobrevive a propósito: es estado de
// desarrollo, no de la sesión.
func (uc *AuthUseCase) Logout() {
	uc.store.ClearAll()
	uc.container.Clear()
	uc.log.Info().Msg("sesión cerrada")
}

// ChangePassword delega el cambio de password al backend con la credencial vigente.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return uc.gateway.ChangePassword(ctx, currentPassword, newPassword)
}

// persist escribe credencial y contexto en el store (cada Set difunde).
func (uc *AuthUseCase) persist(token string, user *entity.AuthUser, branch entity.BranchRef) {
	uc.store.Set(repository.FieldToken, token)
	if user.TenantID != "" {
		uc.store.Set(repository.FieldTenant, user.TenantID)
	}
	uc.store.Set(repository.FieldBranch, branch.Storage())
	if blob, err := json.Marshal(user); err == nil {
		uc.store.Set(repository.FieldUser, string(blob))
	}
}

// reconcileBranch decide la sucursal activa tras login o re-resolución.
// Roles administrativos conservan su elección previa y pueden operar en
// "todas"; el resto queda clavado a su sucursal asignada y jamás recibe el
// centinela ALL.
func reconcileBranch(user *entity.AuthUser, stored entity.BranchRef) entity.BranchRef {
	if user.Role.IsAdminLike() {
		if !stored.IsUnset() {
			return stored
		}
		if !user.Branch.IsUnset() {
			return user.Branch
		}
		return entity.BranchAll()
	}
	if b := user.Branch.Concrete(); !b.IsUnset() {
		return b
	}
	return stored.Concrete()
}
