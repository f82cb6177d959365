package gourmetapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourmetify/admin-api/internal/application/session"
	"github.com/gourmetify/admin-api/internal/domain"
	"github.com/gourmetify/admin-api/internal/domain/repository"
	"github.com/gourmetify/admin-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore ContextStore en memoria para ejercitar el inyector sin disco.
type fakeStore struct {
	mu      sync.Mutex
	values  map[repository.ContextField]string
	cleared bool
}

func newFakeStore(values map[repository.ContextField]string) *fakeStore {
	if values == nil {
		values = map[repository.ContextField]string{}
	}
	return &fakeStore{values: values}
}

func (f *fakeStore) Get(field repository.ContextField) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[field]
	return v, ok && v != ""
}

func (f *fakeStore) Set(field repository.ContextField, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if value == "" {
		delete(f.values, field)
		return
	}
	f.values[field] = value
}

func (f *fakeStore) ClearAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared = true
	for _, field := range repository.SessionFields {
		delete(f.values, field)
	}
}

func newTestClient(t *testing.T, baseURL string, store repository.ContextStore) *Client {
	t.Helper()
	return New(baseURL, 5*time.Second, store, session.NewContainer(), logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests inyección de headers de contexto
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_InyectaCredencialTenantYSucursal(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := newFakeStore(map[repository.ContextField]string{
		repository.FieldToken:  "tok-1",
		repository.FieldTenant: "tenant-1",
		repository.FieldBranch: "sucursal-1",
	})
	c := newTestClient(t, srv.URL, store)

	require.NoError(t, c.do(context.Background(), http.MethodGet, "/orders", nil, nil, callOpts{}))
	assert.Equal(t, "Bearer tok-1", got.Get("Authorization"))
	assert.Equal(t, "tenant-1", got.Get(headerTenant))
	assert.Equal(t, "sucursal-1", got.Get(headerBranch))
	assert.NotEmpty(t, got.Get(headerRequest), "toda llamada lleva un id de correlación")
}

func TestClient_CentinelaAllNuncaViaja(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := newFakeStore(map[repository.ContextField]string{
		repository.FieldToken:  "tok-1",
		repository.FieldBranch: "ALL",
	})
	c := newTestClient(t, srv.URL, store)

	require.NoError(t, c.do(context.Background(), http.MethodGet, "/orders", nil, nil, callOpts{}))
	_, present := got[http.CanonicalHeaderKey(headerBranch)]
	assert.False(t, present, "el literal ALL debe omitirse: el backend no conoce el centinela")
}

func TestClient_SinContextoNoInventaHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, newFakeStore(nil))
	require.NoError(t, c.do(context.Background(), http.MethodGet, "/health", nil, nil, callOpts{}))

	assert.Empty(t, got.Get("Authorization"))
	assert.Empty(t, got.Get(headerTenant))
	assert.Empty(t, got.Get(headerBranch))
}

func TestClient_OverridePuntualGanaAlStore(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := newFakeStore(map[repository.ContextField]string{
		repository.FieldToken:  "tok-1",
		repository.FieldTenant: "tenant-1",
		repository.FieldBranch: "sucursal-1",
	})
	c := newTestClient(t, srv.URL, store)

	opts := callOpts{branchID: "sucursal-2", tenantID: "tenant-2"}
	require.NoError(t, c.do(context.Background(), http.MethodGet, "/orders", nil, nil, opts))
	assert.Equal(t, "tenant-2", got.Get(headerTenant))
	assert.Equal(t, "sucursal-2", got.Get(headerBranch))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests política 401 → un refresh → un reintento
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_RefreshSilenciosoYReintento(t *testing.T) {
	var mu sync.Mutex
	refreshes := 0
	attempts := []string{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		if r.URL.Path == "/auth/refresh" {
			refreshes++
			w.Write([]byte(`{"access_token":"tok-nuevo"}`))
			return
		}
		attempts = append(attempts, r.Header.Get("Authorization"))
		if r.Header.Get("Authorization") != "Bearer tok-nuevo" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"code":"TOKEN_EXPIRED","message":"expirado"}`))
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	store := newFakeStore(map[repository.ContextField]string{repository.FieldToken: "tok-viejo"})
	c := newTestClient(t, srv.URL, store)

	var out map[string]bool
	require.NoError(t, c.do(context.Background(), http.MethodGet, "/orders", nil, &out, callOpts{}))
	assert.True(t, out["ok"])
	assert.Equal(t, 1, refreshes, "debe haber exactamente un refresh")
	assert.Equal(t, []string{"Bearer tok-viejo", "Bearer tok-nuevo"}, attempts,
		"el reintento debe usar la credencial renovada")

	tok, _ := store.Get(repository.FieldToken)
	assert.Equal(t, "tok-nuevo", tok, "el token renovado debe persistirse")
}

func TestClient_RefreshFallido_LimpiaLaSesion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"UNAUTHORIZED","message":"no"}`))
	}))
	defer srv.Close()

	store := newFakeStore(map[repository.ContextField]string{repository.FieldToken: "tok-viejo"})
	container := session.NewContainer()
	container.Hydrate(session.Patch{Token: session.Str("tok-viejo")})
	c := New(srv.URL, 5*time.Second, store, container, logger.Nop())

	err := c.do(context.Background(), http.MethodGet, "/orders", nil, nil, callOpts{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorIs(t, err, domain.ErrSessionCleared, "el caller debe poder distinguir la limpieza")
	assert.True(t, store.cleared, "con el refresh fallido la sesión persistida debe limpiarse")
	assert.True(t, container.Snapshot().Anonymous(), "el contenedor también vuelve a anónimo")
}

func TestClient_Segundo401_LimpiaYPropaga(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			w.Write([]byte(`{"token":"tok-nuevo"}`))
			return
		}
		// Rechaza incluso con la credencial renovada: no hay tercer intento.
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"UNAUTHORIZED","message":"no"}`))
	}))
	defer srv.Close()

	store := newFakeStore(map[repository.ContextField]string{repository.FieldToken: "tok-viejo"})
	c := newTestClient(t, srv.URL, store)

	err := c.do(context.Background(), http.MethodGet, "/orders", nil, nil, callOpts{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "el segundo rechazo se propaga, sin bucles")
	assert.ErrorIs(t, err, domain.ErrSessionCleared)
	assert.True(t, store.cleared)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests paginación de listados
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderService_PropagaLaPaginacion(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	store := newFakeStore(map[repository.ContextField]string{repository.FieldToken: "tok-1"})
	svc := NewOrderService(newTestClient(t, srv.URL, store))

	_, err := svc.List(context.Background(), repository.Page{Limit: 50, Offset: 100}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"50"}, gotQuery["limit"])
	assert.Equal(t, []string{"100"}, gotQuery["offset"])
}

func TestUserService_PaginacionYTenantConviven(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	store := newFakeStore(map[repository.ContextField]string{repository.FieldToken: "tok-1"})
	svc := NewUserService(newTestClient(t, srv.URL, store))

	_, err := svc.ListAdmin(context.Background(), repository.Page{Limit: 25}, "tenant-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"tenant-2"}, gotQuery["tenantId"])
	assert.Equal(t, []string{"25"}, gotQuery["limit"])
	assert.Empty(t, gotQuery["offset"], "offset cero se omite")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests mapeo de errores del backend
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_MapeaStatusAErroresDeDominio(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, domain.ErrInvalidInput},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrConflict},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(`{"code":"X","message":"fallo"}`))
		}))
		c := newTestClient(t, srv.URL, newFakeStore(nil))
		err := c.do(context.Background(), http.MethodGet, "/x", nil, nil, callOpts{})
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)
		srv.Close()
	}
}
