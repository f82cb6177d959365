package session

import "github.com/gourmetify/admin-api/internal/domain/entity"

// EffectiveRole deriva el rol con el que se toman decisiones de autorización:
// override dev → rol de sesión → rol del snapshot de usuario → ninguno.
// El rol explícito de sesión (lo fijó el backend en login/refresh) gana sobre la
// copia desnormalizada de user, que puede estar vieja; el override existe solo
// para pruebas locales y jamás es una credencial real.
func EffectiveRole(override entity.Role, s entity.Session) entity.Role {
	if override != "" {
		return override
	}
	if s.Role != "" {
		return s.Role
	}
	if s.User != nil {
		return s.User.Role
	}
	return ""
}

// BranchHeader deriva el valor del header x-branch-id para una referencia de
// sucursal: un id concreto se envía tal cual; el centinela "todas" y la ausencia
// omiten el header (el backend interpreta la ausencia como "sin restricción").
// El literal ALL no viaja nunca: el backend no conoce el centinela.
func BranchHeader(b entity.BranchRef) (string, bool) {
	if id, ok := b.ID(); ok {
		return id, true
	}
	return "", false
}

// applyDerivedFields rellena rol/tenant/sucursal desde el snapshot de usuario
// cuando el patch no los trajo explícitos y el campo seguía completamente
// ausente. Nunca pisa una distinción presente-vs-ausente con un valor viejo.
func applyDerivedFields(s *entity.Session, p Patch) {
	user := s.User
	if p.User != nil {
		user = p.User.U
	}
	if user == nil {
		return
	}
	if p.Role == nil && s.Role == "" && user.Role != "" {
		s.Role = user.Role
	}
	if p.TenantID == nil && s.TenantID == "" && user.TenantID != "" {
		s.TenantID = user.TenantID
	}
	if p.Branch == nil && s.Branch.IsUnset() && !user.Branch.IsUnset() {
		s.Branch = user.Branch
	}
}
