package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gourmetify/admin-api/internal/application/session"
	"github.com/gourmetify/admin-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests EffectiveRole — precedencia override → sesión → user → ninguno
// ──────────────────────────────────────────────────────────────────────────────

func TestEffectiveRole_OverrideGanaSiempre(t *testing.T) {
	s := entity.Session{
		Role: entity.RoleAdmin,
		User: &entity.AuthUser{Role: entity.RoleManager},
	}
	assert.Equal(t, entity.RoleWaiter, session.EffectiveRole(entity.RoleWaiter, s),
		"el override dev debe ganar sobre cualquier otra fuente")
}

func TestEffectiveRole_RolDeSesionGanaSobreUser(t *testing.T) {
	s := entity.Session{
		Role: entity.RoleAdmin,
		User: &entity.AuthUser{Role: entity.RoleCashier},
	}
	assert.Equal(t, entity.RoleAdmin, session.EffectiveRole("", s),
		"el rol explícito de sesión gana sobre la copia desnormalizada de user")
}

func TestEffectiveRole_CaeAlRolDelUser(t *testing.T) {
	s := entity.Session{User: &entity.AuthUser{Role: entity.RoleCashier}}
	assert.Equal(t, entity.RoleCashier, session.EffectiveRole("", s))
}

func TestEffectiveRole_SinFuentes_Vacio(t *testing.T) {
	assert.Equal(t, entity.Role(""), session.EffectiveRole("", entity.NewSession()),
		"sin override, sin rol de sesión y sin user no hay rol efectivo")
}

// La misma entrada debe producir siempre la misma salida: el derivado se
// recalcula, nunca se cachea ni depende de llamadas previas.
func TestEffectiveRole_Deterministico(t *testing.T) {
	s := entity.Session{Role: entity.RoleManager}
	first := session.EffectiveRole("", s)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, session.EffectiveRole("", s))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests BranchHeader — el centinela ALL jamás viaja
// ──────────────────────────────────────────────────────────────────────────────

func TestBranchHeader_IdConcretoSeEnvia(t *testing.T) {
	v, ok := session.BranchHeader(entity.BranchID("sucursal-1"))
	assert.True(t, ok)
	assert.Equal(t, "sucursal-1", v)
}

func TestBranchHeader_AllOmiteElHeader(t *testing.T) {
	_, ok := session.BranchHeader(entity.BranchAll())
	assert.False(t, ok, "ALL debe omitir el header, el backend no conoce el centinela")
}

func TestBranchHeader_UnsetOmiteElHeader(t *testing.T) {
	_, ok := session.BranchHeader(entity.BranchUnset())
	assert.False(t, ok)
}
