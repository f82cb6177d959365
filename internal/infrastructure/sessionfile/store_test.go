package sessionfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourmetify/admin-api/internal/domain/repository"
	"github.com/gourmetify/admin-api/pkg/logger"
)

func newTestStore(t *testing.T, defaults Defaults) *Store {
	t.Helper()
	s := New(t.TempDir(), defaults, logger.Nop())
	t.Cleanup(s.Close)
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Set / Get / ClearAll
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_SetYGet(t *testing.T) {
	s := newTestStore(t, Defaults{})

	s.Set(repository.FieldToken, "tok-1")
	v, ok := s.Get(repository.FieldToken)
	require.True(t, ok)
	assert.Equal(t, "tok-1", v)
}

func TestStore_SetVacioEliminaLaClave(t *testing.T) {
	s := newTestStore(t, Defaults{})

	s.Set(repository.FieldToken, "tok-1")
	s.Set(repository.FieldToken, "")
	_, ok := s.Get(repository.FieldToken)
	assert.False(t, ok, "escribir vacío debe eliminar la clave, no dejar un placeholder")
}

func TestStore_ClearAllEliminaTodasLasClaves(t *testing.T) {
	s := newTestStore(t, Defaults{})
	for _, f := range repository.SessionFields {
		s.Set(f, "valor")
	}

	s.ClearAll()
	for _, f := range repository.SessionFields {
		_, ok := s.Get(f)
		assert.False(t, ok, "la clave %s debe quedar ausente tras ClearAll", f)
	}
}

func TestStore_PersisteEntreInstancias(t *testing.T) {
	dir := t.TempDir()
	a := New(dir, Defaults{}, logger.Nop())
	a.Set(repository.FieldTenant, "tenant-1")
	a.Close()

	b := New(dir, Defaults{}, logger.Nop())
	defer b.Close()
	v, ok := b.Get(repository.FieldTenant)
	require.True(t, ok)
	assert.Equal(t, "tenant-1", v, "otro proceso sobre el mismo archivo debe ver el valor")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests defaults de entorno — solo tenant y sucursal
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_DefaultsSoloParaTenantYSucursal(t *testing.T) {
	s := newTestStore(t, Defaults{TenantID: "tenant-def", BranchID: "sucursal-def"})

	v, ok := s.Get(repository.FieldTenant)
	require.True(t, ok)
	assert.Equal(t, "tenant-def", v)

	v, ok = s.Get(repository.FieldBranch)
	require.True(t, ok)
	assert.Equal(t, "sucursal-def", v)

	_, ok = s.Get(repository.FieldToken)
	assert.False(t, ok, "el token no tiene default de entorno")
}

func TestStore_ValorPersistidoGanaAlDefault(t *testing.T) {
	s := newTestStore(t, Defaults{TenantID: "tenant-def"})
	s.Set(repository.FieldTenant, "tenant-real")

	v, _ := s.Get(repository.FieldTenant)
	assert.Equal(t, "tenant-real", v)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests degradación — medio no disponible
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_DeshabilitadoNoLanzaYDifundeIgual(t *testing.T) {
	// Un archivo regular como "directorio" hace fallar MkdirAll.
	base := t.TempDir()
	blocked := filepath.Join(base, "archivo")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o600))

	s := New(filepath.Join(blocked, "sub"), Defaults{}, logger.Nop())
	defer s.Close()

	events, cancel := s.Subscribe()
	defer cancel()

	s.Set(repository.FieldToken, "tok") // descartada en silencio
	_, ok := s.Get(repository.FieldToken)
	assert.False(t, ok, "con el medio no disponible las lecturas devuelven ausente")

	select {
	case <-events:
		// la difusión local sigue funcionando aunque la escritura se descarte
	case <-time.After(time.Second):
		t.Fatal("se esperaba difusión aun con el store deshabilitado")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests difusión local
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_CadaEscrituraDifundeUnaVez(t *testing.T) {
	s := newTestStore(t, Defaults{})
	events, cancel := s.Subscribe()
	defer cancel()

	s.Set(repository.FieldToken, "tok")
	select {
	case ev := <-events:
		assert.WithinDuration(t, time.Now(), ev.At, 5*time.Second,
			"el evento lleva solo el instante; el contenido se relee del store")
	case <-time.After(time.Second):
		t.Fatal("se esperaba un evento tras Set")
	}
}

func TestStore_ClearAllDifundeUnaSolaVez(t *testing.T) {
	s := newTestStore(t, Defaults{})
	s.Set(repository.FieldToken, "tok")
	s.Set(repository.FieldTenant, "tenant")

	events, cancel := s.Subscribe()
	defer cancel()

	s.ClearAll()
	<-events // primera señal
	select {
	case <-events:
		t.Fatal("ClearAll debe difundir una única vez, no una por clave")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestStore_EscrituraAjenaSePropaga(t *testing.T) {
	dir := t.TempDir()
	a := New(dir, Defaults{}, logger.Nop())
	defer a.Close()
	b := New(dir, Defaults{}, logger.Nop())
	defer b.Close()

	events, cancel := a.Subscribe()
	defer cancel()

	b.Set(repository.FieldBranch, "sucursal-2")

	select {
	case <-events:
		v, ok := a.Get(repository.FieldBranch)
		require.True(t, ok)
		assert.Equal(t, "sucursal-2", v)
	case <-time.After(3 * time.Second):
		t.Fatal("se esperaba que el cambio de otro proceso llegara vía watcher")
	}
}

func TestStore_CloseConEscriturasAjenasEnCurso(t *testing.T) {
	dir := t.TempDir()
	a := New(dir, Defaults{}, logger.Nop())
	b := New(dir, Defaults{}, logger.Nop())
	defer b.Close()

	// Cerrar mientras otro proceso sigue escribiendo el archivo no debe
	// tocar estado compartido del store ya cerrado.
	a.Close()
	for i := 0; i < 20; i++ {
		b.Set(repository.FieldBranch, "sucursal-2")
	}
	time.Sleep(50 * time.Millisecond)

	v, ok := b.Get(repository.FieldBranch)
	require.True(t, ok)
	assert.Equal(t, "sucursal-2", v)
}
