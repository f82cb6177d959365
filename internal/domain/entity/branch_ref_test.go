package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourmetify/admin-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de los tres estados
// ──────────────────────────────────────────────────────────────────────────────

func TestParseBranchRef_TresEstados(t *testing.T) {
	assert.True(t, entity.ParseBranchRef("").IsUnset())
	assert.True(t, entity.ParseBranchRef("ALL").IsAll())

	id, ok := entity.ParseBranchRef("sucursal-1").ID()
	require.True(t, ok)
	assert.Equal(t, "sucursal-1", id)
}

func TestBranchRef_ConcreteNuncaDevuelveAll(t *testing.T) {
	assert.True(t, entity.BranchAll().Concrete().IsUnset())
	assert.True(t, entity.BranchUnset().Concrete().IsUnset())

	id, ok := entity.BranchID("sucursal-2").Concrete().ID()
	require.True(t, ok)
	assert.Equal(t, "sucursal-2", id)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JSON
// ──────────────────────────────────────────────────────────────────────────────

func TestBranchRef_JSONIdaYVuelta(t *testing.T) {
	casos := []struct {
		nombre string
		ref    entity.BranchRef
		json   string
	}{
		{"sin definir", entity.BranchUnset(), `null`},
		{"todas", entity.BranchAll(), `"ALL"`},
		{"concreta", entity.BranchID("sucursal-1"), `"sucursal-1"`},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			out, err := json.Marshal(c.ref)
			require.NoError(t, err)
			assert.JSONEq(t, c.json, string(out))

			var back entity.BranchRef
			require.NoError(t, json.Unmarshal(out, &back))
			assert.Equal(t, c.ref, back)
		})
	}
}

func TestBranchRef_MarshalEscapaElID(t *testing.T) {
	// Un id con comillas u otros caracteres especiales debe producir JSON válido.
	ref := entity.BranchID(`suc "central" \ norte`)

	out, err := json.Marshal(ref)
	require.NoError(t, err)

	var s string
	require.NoError(t, json.Unmarshal(out, &s))
	assert.Equal(t, `suc "central" \ norte`, s)
}

func TestBranchRef_UnmarshalRechazaShapesInvalidos(t *testing.T) {
	var ref entity.BranchRef
	assert.Error(t, json.Unmarshal([]byte(`{"id":"x"}`), &ref))
	assert.Error(t, json.Unmarshal([]byte(`42`), &ref))
}
