package usecase

import (
	"github.com/gourmetify/admin-api/internal/application/session"
	"github.com/gourmetify/admin-api/internal/domain"
	"github.com/gourmetify/admin-api/internal/domain/entity"
)

// Scope resuelve los overrides de ámbito (tenant/sucursal) de una llamada
// puntual a partir del rol efectivo vigente. Los roles administrativos pueden
// consultar otro ámbito que el activo; el resto opera siempre en el propio y
// cualquier intento de salirse es Forbidden, no un silencioso "se ignora".
type Scope struct {
	container *session.Container
}

// NewScope construye el resolutor de ámbito sobre el contenedor de sesión.
func NewScope(c *session.Container) *Scope {
	return &Scope{container: c}
}

// Branch valida un override de sucursal pedido por el caller. "" significa
// "usar la sucursal activa de la sesión" y siempre es válido. El centinela ALL
// solo lo pueden pedir roles administrativos.
func (s *Scope) Branch(requested string) (string, error) {
	if requested == "" {
		return "", nil
	}
	role := s.container.EffectiveRole()
	if role.IsAdminLike() {
		return requested, nil
	}
	snap := s.container.Snapshot()
	if id, ok := snap.Branch.ID(); ok && id == requested {
		return "", nil // pidió su propia sucursal, sin override
	}
	return "", domain.ErrForbidden
}

// ConcreteBranch valida el override igual que Branch y además exige que la
// operación termine escopeada a una sucursal concreta: las escrituras de
// inventario y la apertura de órdenes no admiten el centinela ALL ni una
// sesión sin sucursal resuelta.
func (s *Scope) ConcreteBranch(requested string) (string, error) {
	override, err := s.Branch(requested)
	if err != nil {
		return "", err
	}
	if override != "" {
		if _, ok := entity.ParseBranchRef(override).ID(); !ok {
			return "", domain.ErrBranchRequired
		}
		return override, nil
	}
	if _, ok := s.container.Snapshot().Branch.ID(); !ok {
		return "", domain.ErrBranchRequired
	}
	return "", nil
}

// Tenant valida un override de tenant. Solo SUPER_ADMIN opera cross-tenant.
func (s *Scope) Tenant(requested string) (string, error) {
	if requested == "" {
		return "", nil
	}
	if s.container.EffectiveRole() != entity.RoleSuperAdmin {
		return "", domain.ErrForbidden
	}
	return requested, nil
}
