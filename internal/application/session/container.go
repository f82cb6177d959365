package session

import (
	"sync"

	"github.com/gourmetify/admin-api/internal/domain/entity"
)

// Patch cambio parcial de sesión. Un puntero nil significa "no tocar el campo";
// un puntero a valor vacío es un borrado deliberado (distinto de ausente).
type Patch struct {
	Token    *string
	TenantID *string
	Branch   *entity.BranchRef
	Role     *entity.Role
	User     *UserField
	Flags    *entity.AuthFlags
}

// UserField envuelve el snapshot de usuario para distinguir "asignar nil"
// (borrado) de "campo no presente en el patch".
type UserField struct {
	U *entity.AuthUser
}

// Helpers para construir patches sin variables intermedias.
func Str(s string) *string                        { return &s }
func RolePtr(r entity.Role) *entity.Role          { return &r }
func BranchPtr(b entity.BranchRef) *entity.BranchRef { return &b }
func UserPtr(u *entity.AuthUser) *UserField       { return &UserField{U: u} }

// Container único poseedor mutable de la sesión vigente más el estado auxiliar
// (loading, override de rol dev). Todo lector consume snapshots; toda mutación
// es atómica respecto de los lectores. Los derivados se recalculan en cada
// lectura, nunca se cachean.
type Container struct {
	mu          sync.RWMutex
	session     entity.Session
	loading     bool
	devOverride entity.Role // "" = sin override; solo gating de UI, jamás viaja al backend

	// rotations registra las renovaciones silenciosas de credencial (token
	// viejo -> nuevo) dentro de la época vigente. Un reemplazo o limpieza de
	// sesión lo vacía: la rotación solo prueba identidad dentro de una época.
	rotations map[string]string

	subs    map[int]chan struct{}
	nextSub int
}

// NewContainer crea el contenedor con una sesión vacía (anónima).
func NewContainer() *Container {
	return &Container{
		session:   entity.NewSession(),
		rotations: map[string]string{},
		subs:      map[int]chan struct{}{},
	}
}

// Hydrate reemplaza la sesión completa por una vacía con el patch aplicado y
// rellena derivados. Se usa en el bootstrap y en cada rehidratación por difusión.
func (c *Container) Hydrate(p Patch) {
	c.mu.Lock()
	next := entity.NewSession()
	applyPatch(&next, p)
	applyDerivedFields(&next, p)
	c.session = next
	c.rotations = map[string]string{}
	c.mu.Unlock()
	c.notify()
}

// Patch mezcla solo los campos presentes del patch sobre la sesión actual y
// rellena derivados. Atómico: ningún lector observa un patch a medio aplicar.
func (c *Container) Patch(p Patch) {
	c.mu.Lock()
	applyPatch(&c.session, p)
	applyDerivedFields(&c.session, p)
	c.mu.Unlock()
	c.notify()
}

// PatchIfToken aplica el patch solo si el token vigente coincide con expected
// o desciende de él por rotaciones registradas con RotateToken. Es el chequeo
// de época para completions en vuelo: un refresh silencioso no cambia de
// identidad, pero cualquier otro cambio de sesión (logout, login de otro
// usuario) descarta el resultado.
func (c *Container) PatchIfToken(expected string, p Patch) bool {
	c.mu.Lock()
	cur := expected
	for i := 0; cur != c.session.Token; i++ {
		next, ok := c.rotations[cur]
		if !ok || i >= len(c.rotations) {
			c.mu.Unlock()
			return false
		}
		cur = next
	}
	applyPatch(&c.session, p)
	applyDerivedFields(&c.session, p)
	c.mu.Unlock()
	c.notify()
	return true
}

// RotateToken reemplaza la credencial solo si la vigente coincide con old, y
// registra la rotación para que los completions capturados antes del refresh
// sigan perteneciendo a la misma época. Devuelve false sin tocar nada si la
// sesión ya no porta old.
func (c *Container) RotateToken(old, fresh string) bool {
	if old == "" || fresh == "" || old == fresh {
		return false
	}
	c.mu.Lock()
	if c.session.Token != old {
		c.mu.Unlock()
		return false
	}
	c.session.Token = fresh
	c.rotations[old] = fresh
	c.mu.Unlock()
	c.notify()
	return true
}

// Clear vuelve la sesión al estado vacío. Idempotente. No toca el override de
// rol dev (el override no es parte de la sesión).
func (c *Container) Clear() {
	c.mu.Lock()
	c.session = entity.NewSession()
	c.rotations = map[string]string{}
	c.loading = false
	c.mu.Unlock()
	c.notify()
}

// Snapshot devuelve una copia de la sesión vigente (User y Flags copiados).
func (c *Container) Snapshot() entity.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneSession(c.session)
}

// SetLoading marca si hay una resolución de sesión en vuelo (/auth/me).
func (c *Container) SetLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
	c.notify()
}

// Loading indica si hay una resolución de sesión en vuelo.
func (c *Container) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// SetDevRoleOverride fija el override temporal de rol ("" lo quita).
// Solo afecta el gating de UI; no muta token ni user.
func (c *Container) SetDevRoleOverride(r entity.Role) {
	c.mu.Lock()
	c.devOverride = r
	c.mu.Unlock()
	c.notify()
}

// DevRoleOverride devuelve el override vigente ("" = ninguno).
func (c *Container) DevRoleOverride() entity.Role {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.devOverride
}

// EffectiveRole deriva el rol efectivo del estado vigente (recalculado, sin caché).
func (c *Container) EffectiveRole() entity.Role {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return EffectiveRole(c.devOverride, c.session)
}

// Subscribe registra un suscriptor de cambios. El canal recibe una señal
// coalescible por cada mutación; la función devuelta desuscribe.
func (c *Container) Subscribe() (<-chan struct{}, func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	ch := make(chan struct{}, 1)
	c.subs[id] = ch
	c.mu.Unlock()
	return ch, func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Container) notify() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, ch := range c.subs {
		select {
		case ch <- struct{}{}:
		default: // señal ya pendiente, el suscriptor releerá igual
		}
	}
}

func applyPatch(s *entity.Session, p Patch) {
	if p.Token != nil {
		s.Token = *p.Token
	}
	if p.TenantID != nil {
		s.TenantID = *p.TenantID
	}
	if p.Branch != nil {
		s.Branch = *p.Branch
	}
	if p.Role != nil {
		s.Role = *p.Role
	}
	if p.User != nil {
		if p.User.U != nil {
			u := *p.User.U
			s.User = &u
		} else {
			s.User = nil
		}
	}
	if p.Flags != nil {
		s.Flags = entity.AuthFlags{}
		for k, v := range *p.Flags {
			s.Flags[k] = v
		}
	}
}

func cloneSession(s entity.Session) entity.Session {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	if s.Flags != nil {
		out.Flags = entity.AuthFlags{}
		for k, v := range s.Flags {
			out.Flags[k] = v
		}
	}
	return out
}
