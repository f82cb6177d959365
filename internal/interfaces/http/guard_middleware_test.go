package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourmetify/admin-api/internal/application/session"
	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
	apphttp "github.com/gourmetify/admin-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memStore ContextStore mínimo en memoria para los middlewares.
type memStore struct {
	mu     sync.Mutex
	values map[repository.ContextField]string
}

func newMemStore() *memStore {
	return &memStore{values: map[repository.ContextField]string{}}
}

func (m *memStore) Get(field repository.ContextField) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[field]
	return v, ok && v != ""
}

func (m *memStore) Set(field repository.ContextField, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value == "" {
		delete(m.values, field)
		return
	}
	m.values[field] = value
}

func (m *memStore) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = map[repository.ContextField]string{}
}

// containerConRol arma un contenedor con sesión activa y el rol dado.
func containerConRol(role entity.Role, branch entity.BranchRef) *session.Container {
	c := session.NewContainer()
	c.Hydrate(session.Patch{
		Token:  session.Str("tok-1"),
		Branch: session.BranchPtr(branch),
		Role:   session.RolePtr(role),
		User: session.UserPtr(&entity.AuthUser{
			ID: "u-1", Email: "x@y.io", Role: role, Branch: entity.BranchID("asignada"),
		}),
	})
	return c
}

func guardApp(c *session.Container, roles ...entity.Role) *fiber.App {
	app := fiber.New()
	app.Get("/protegida", apphttp.Guard(c, roles...), func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"role": apphttp.EffectiveRoleFromCtx(ctx)})
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Guard — estados de acceso
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_RolPermitidoAccede(t *testing.T) {
	c := containerConRol(entity.RoleAdmin, entity.BranchAll())
	resp := doGet(t, guardApp(c, entity.RoleSuperAdmin, entity.RoleAdmin), "/protegida")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"ADMIN debe poder acceder a una ruta que permite ADMIN")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ADMIN", "el rol efectivo debe quedar en locals")
}

func TestGuard_RolInsuficiente_Retorna403(t *testing.T) {
	c := containerConRol(entity.RoleWaiter, entity.BranchID("asignada"))
	resp := doGet(t, guardApp(c, entity.RoleSuperAdmin, entity.RoleAdmin), "/protegida")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestGuard_SinSesion_Retorna401(t *testing.T) {
	resp := doGet(t, guardApp(session.NewContainer()), "/protegida")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNAUTHENTICATED")
}

func TestGuard_ResolucionEnVuelo_Retorna503(t *testing.T) {
	c := containerConRol(entity.RoleAdmin, entity.BranchAll())
	c.SetLoading(true)
	resp := doGet(t, guardApp(c, entity.RoleAdmin), "/protegida")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode,
		"con la sesión resolviéndose no debe haber falsos 401/403")
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderRetryAfter))
}

func TestGuard_OverrideDevCambiaElGating(t *testing.T) {
	c := containerConRol(entity.RoleAdmin, entity.BranchAll())
	c.SetDevRoleOverride(entity.RoleWaiter)

	resp := doGet(t, guardApp(c, entity.RoleSuperAdmin, entity.RoleAdmin), "/protegida")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"el override dev degrada el gating local aunque la credencial sea de admin")
}

func TestGuard_SinRolesExigidos_BastaEstarAutenticado(t *testing.T) {
	c := containerConRol(entity.RoleWaiter, entity.BranchID("asignada"))
	resp := doGet(t, guardApp(c), "/protegida")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests EnforceAssignedBranch — roles no administrativos clavados a su sucursal
// ──────────────────────────────────────────────────────────────────────────────

func branchApp(c *session.Container, store repository.ContextStore) *fiber.App {
	app := fiber.New()
	app.Get("/recurso", apphttp.Guard(c), apphttp.EnforceAssignedBranch(c, store), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(http.StatusOK)
	})
	return app
}

func TestEnforceAssignedBranch_CorrigeSucursalAjena(t *testing.T) {
	c := containerConRol(entity.RoleCashier, entity.BranchID("otra"))
	store := newMemStore()
	store.Set(repository.FieldBranch, "otra")

	resp := doGet(t, branchApp(c, store), "/recurso")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, entity.BranchID("asignada"), c.Snapshot().Branch,
		"un rol no administrativo debe quedar forzado a su sucursal asignada")
	v, _ := store.Get(repository.FieldBranch)
	assert.Equal(t, "asignada", v, "la corrección también se persiste para los demás procesos")
}

func TestEnforceAssignedBranch_CorrigeElCentinelaAll(t *testing.T) {
	c := containerConRol(entity.RoleWaiter, entity.BranchAll())
	store := newMemStore()
	store.Set(repository.FieldBranch, "ALL")

	resp := doGet(t, branchApp(c, store), "/recurso")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.BranchID("asignada"), c.Snapshot().Branch)
}

func TestEnforceAssignedBranch_AdminPasaSinTocar(t *testing.T) {
	c := containerConRol(entity.RoleAdmin, entity.BranchAll())
	store := newMemStore()
	store.Set(repository.FieldBranch, "ALL")

	resp := doGet(t, branchApp(c, store), "/recurso")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, entity.BranchAll(), c.Snapshot().Branch,
		"un rol administrativo puede seguir operando en todas las sucursales")
}
