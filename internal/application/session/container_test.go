package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourmetify/admin-api/internal/application/session"
	"github.com/gourmetify/admin-api/internal/domain/entity"
)

func loggedIn() *session.Container {
	c := session.NewContainer()
	c.Hydrate(session.Patch{
		Token:    session.Str("tok-1"),
		TenantID: session.Str("tenant-1"),
		Branch:   session.BranchPtr(entity.BranchID("sucursal-1")),
		Role:     session.RolePtr(entity.RoleAdmin),
		User: session.UserPtr(&entity.AuthUser{
			ID: "u-1", Email: "ana@gourmetify.io", Role: entity.RoleAdmin,
		}),
	})
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Patch — solo los campos presentes se tocan
// ──────────────────────────────────────────────────────────────────────────────

func TestPatch_SoloCamposPresentes(t *testing.T) {
	c := loggedIn()
	c.Patch(session.Patch{TenantID: session.Str("tenant-2")})

	snap := c.Snapshot()
	assert.Equal(t, "tenant-2", snap.TenantID)
	assert.Equal(t, "tok-1", snap.Token, "el token no estaba en el patch, no debe cambiar")
	assert.Equal(t, entity.RoleAdmin, snap.Role)
}

func TestPatch_AsignarUserNilEsBorradoDeliberado(t *testing.T) {
	c := loggedIn()
	c.Patch(session.Patch{User: session.UserPtr(nil)})
	assert.Nil(t, c.Snapshot().User, "UserPtr(nil) debe borrar el snapshot de usuario")
}

func TestPatch_PunteroAVacioBorraElCampo(t *testing.T) {
	c := loggedIn()
	c.Patch(session.Patch{Token: session.Str("")})
	snap := c.Snapshot()
	assert.True(t, snap.Anonymous(), "un token vacío explícito deja la sesión anónima")
	assert.Equal(t, "tenant-1", snap.TenantID, "los campos ausentes del patch no se tocan")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Hydrate — derivados desde el snapshot de usuario
// ──────────────────────────────────────────────────────────────────────────────

func TestHydrate_RellenaDerivadosDesdeUser(t *testing.T) {
	c := session.NewContainer()
	c.Hydrate(session.Patch{
		Token: session.Str("tok-9"),
		User: session.UserPtr(&entity.AuthUser{
			ID: "u-9", Email: "x@y.io", Role: entity.RoleManager,
			TenantID: "tenant-9", Branch: entity.BranchID("sucursal-9"),
		}),
	})
	snap := c.Snapshot()
	assert.Equal(t, entity.RoleManager, snap.Role, "rol derivado del user cuando el patch no lo trae")
	assert.Equal(t, "tenant-9", snap.TenantID)
	assert.Equal(t, entity.BranchID("sucursal-9"), snap.Branch)
}

func TestHydrate_ElPatchExplicitoGanaSobreElDerivado(t *testing.T) {
	c := session.NewContainer()
	c.Hydrate(session.Patch{
		Token:  session.Str("tok-9"),
		Branch: session.BranchPtr(entity.BranchAll()),
		User: session.UserPtr(&entity.AuthUser{
			ID: "u-9", Email: "x@y.io", Branch: entity.BranchID("sucursal-9"),
		}),
	})
	assert.Equal(t, entity.BranchAll(), c.Snapshot().Branch,
		"la sucursal explícita del patch no debe ser pisada por la del user")
}

func TestHydrate_ReemplazaTodoLoAnterior(t *testing.T) {
	c := loggedIn()
	c.Hydrate(session.Patch{Token: session.Str("tok-2")})
	snap := c.Snapshot()
	assert.Equal(t, "tok-2", snap.Token)
	assert.Empty(t, snap.TenantID, "Hydrate parte de una sesión vacía, no mezcla con la anterior")
	assert.Nil(t, snap.User)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PatchIfToken — chequeo de época para completions en vuelo
// ──────────────────────────────────────────────────────────────────────────────

func TestPatchIfToken_AplicaConTokenVigente(t *testing.T) {
	c := loggedIn()
	ok := c.PatchIfToken("tok-1", session.Patch{TenantID: session.Str("tenant-3")})
	assert.True(t, ok)
	assert.Equal(t, "tenant-3", c.Snapshot().TenantID)
}

func TestPatchIfToken_DescartaSiLaSesionCambio(t *testing.T) {
	c := loggedIn()
	c.Patch(session.Patch{Token: session.Str("tok-2")}) // la sesión rotó en vuelo

	ok := c.PatchIfToken("tok-1", session.Patch{TenantID: session.Str("tenant-3")})
	assert.False(t, ok, "un resultado de una época anterior debe descartarse")
	assert.Equal(t, "tenant-1", c.Snapshot().TenantID)
}

func TestPatchIfToken_DescartaTrasClear(t *testing.T) {
	c := loggedIn()
	c.Clear()
	ok := c.PatchIfToken("tok-1", session.Patch{TenantID: session.Str("tenant-3")})
	assert.False(t, ok)
	assert.True(t, c.Snapshot().Anonymous())
}

func TestPatchIfToken_AceptaRotacionRegistrada(t *testing.T) {
	c := loggedIn()
	require.True(t, c.RotateToken("tok-1", "tok-2"), "la sesión porta tok-1")

	ok := c.PatchIfToken("tok-1", session.Patch{TenantID: session.Str("tenant-3")})
	assert.True(t, ok, "el refresh silencioso no cambia de identidad")
	assert.Equal(t, "tenant-3", c.Snapshot().TenantID)
	assert.Equal(t, "tok-2", c.Snapshot().Token)
}

func TestPatchIfToken_AceptaCadenaDeRotaciones(t *testing.T) {
	c := loggedIn()
	require.True(t, c.RotateToken("tok-1", "tok-2"))
	require.True(t, c.RotateToken("tok-2", "tok-3"))

	ok := c.PatchIfToken("tok-1", session.Patch{TenantID: session.Str("tenant-3")})
	assert.True(t, ok)
}

func TestPatchIfToken_RotacionNoRegistradaSigueDescartando(t *testing.T) {
	c := loggedIn()
	// Un reemplazo directo del token (otro login) no es una rotación propia.
	c.Patch(session.Patch{Token: session.Str("tok-ajeno")})

	ok := c.PatchIfToken("tok-1", session.Patch{TenantID: session.Str("tenant-3")})
	assert.False(t, ok)
	assert.Equal(t, "tenant-1", c.Snapshot().TenantID)
}

func TestPatchIfToken_HydrateInvalidaLasRotacionesPrevias(t *testing.T) {
	c := loggedIn()
	require.True(t, c.RotateToken("tok-1", "tok-2"))

	// Login de otro usuario que casualmente recibe el mismo token renovado.
	c.Hydrate(session.Patch{Token: session.Str("tok-2"), TenantID: session.Str("tenant-B")})

	ok := c.PatchIfToken("tok-1", session.Patch{TenantID: session.Str("tenant-3")})
	assert.False(t, ok, "la rotación pertenece a la época anterior")
	assert.Equal(t, "tenant-B", c.Snapshot().TenantID)
}

func TestRotateToken_RechazaSiLaSesionNoPortaElViejo(t *testing.T) {
	c := loggedIn()
	assert.False(t, c.RotateToken("tok-otro", "tok-2"))
	assert.False(t, c.RotateToken("", "tok-2"))
	assert.Equal(t, "tok-1", c.Snapshot().Token, "sin rotación, el token queda intacto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Clear — idempotente y sin tocar el override dev
// ──────────────────────────────────────────────────────────────────────────────

func TestClear_Idempotente(t *testing.T) {
	c := loggedIn()
	c.Clear()
	first := c.Snapshot()
	c.Clear()
	assert.Equal(t, first, c.Snapshot(), "limpiar una sesión ya vacía no debe cambiar nada")
}

func TestClear_ConservaElOverrideDev(t *testing.T) {
	c := loggedIn()
	c.SetDevRoleOverride(entity.RoleWaiter)
	c.Clear()
	assert.Equal(t, entity.RoleWaiter, c.DevRoleOverride(),
		"el override de rol dev no forma parte de la sesión")
}

func TestClear_ApagaLoading(t *testing.T) {
	c := loggedIn()
	c.SetLoading(true)
	c.Clear()
	assert.False(t, c.Loading())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Snapshot — copia defensiva
// ──────────────────────────────────────────────────────────────────────────────

func TestSnapshot_EsCopia(t *testing.T) {
	c := loggedIn()
	snap := c.Snapshot()
	require.NotNil(t, snap.User)
	snap.User.Email = "mutado@x.io"
	assert.Equal(t, "ana@gourmetify.io", c.Snapshot().User.Email,
		"mutar un snapshot no debe afectar la sesión del contenedor")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Subscribe — cada mutación señala, coalescible
// ──────────────────────────────────────────────────────────────────────────────

func TestSubscribe_SenalaEnCadaMutacion(t *testing.T) {
	c := session.NewContainer()
	ch, cancel := c.Subscribe()
	defer cancel()

	c.Patch(session.Patch{Token: session.Str("tok-1")})
	select {
	case <-ch:
	default:
		t.Fatal("se esperaba una señal tras el patch")
	}
}

func TestSubscribe_NoBloqueaConSuscriptorLento(t *testing.T) {
	c := session.NewContainer()
	_, cancel := c.Subscribe() // nunca lee
	defer cancel()

	// Ninguna de estas mutaciones debe bloquear aunque nadie consuma.
	for i := 0; i < 5; i++ {
		c.Patch(session.Patch{Token: session.Str("tok")})
	}
}

func TestEffectiveRole_DelContenedor(t *testing.T) {
	c := loggedIn()
	assert.Equal(t, entity.RoleAdmin, c.EffectiveRole())
	c.SetDevRoleOverride(entity.RoleCashier)
	assert.Equal(t, entity.RoleCashier, c.EffectiveRole())
}
