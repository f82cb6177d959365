package entity

import "encoding/json"

// BranchAllLiteral literal con el que se persiste el centinela "todas las sucursales".
// Nunca debe viajar como header hacia el backend (el backend no conoce el centinela).
const BranchAllLiteral = "ALL"

// branchKind discrimina los tres estados posibles de una referencia a sucursal.
type branchKind uint8

const (
	branchUnset branchKind = iota
	branchAll
	branchConcrete
)

// BranchRef referencia a sucursal con tres estados: id concreto, "todas" o sin definir.
// Se modela como unión etiquetada para que "ALL" jamás se confunda con ausencia.
type BranchRef struct {
	kind branchKind
	id   string
}

// BranchUnset referencia sin sucursal definida.
func BranchUnset() BranchRef { return BranchRef{} }

// BranchAll referencia al centinela "todas las sucursales".
func BranchAll() BranchRef { return BranchRef{kind: branchAll} }

// BranchID referencia a una sucursal concreta. Un id vacío equivale a Unset.
func BranchID(id string) BranchRef {
	if id == "" {
		return BranchRef{}
	}
	return BranchRef{kind: branchConcrete, id: id}
}

// ParseBranchRef interpreta el literal persistido: "" → Unset, "ALL" → All, otro → id.
func ParseBranchRef(s string) BranchRef {
	switch s {
	case "":
		return BranchUnset()
	case BranchAllLiteral:
		return BranchAll()
	default:
		return BranchID(s)
	}
}

// IsUnset indica si no hay sucursal definida.
func (b BranchRef) IsUnset() bool { return b.kind == branchUnset }

// IsAll indica si la referencia es el centinela "todas".
func (b BranchRef) IsAll() bool { return b.kind == branchAll }

// ID devuelve el id concreto y true, o ("", false) para All/Unset.
func (b BranchRef) ID() (string, bool) {
	if b.kind == branchConcrete {
		return b.id, true
	}
	return "", false
}

// Concrete devuelve la propia referencia si es un id concreto; si no, Unset.
// Es la regla "nunca ALL" que aplican los roles no administrativos.
func (b BranchRef) Concrete() BranchRef {
	if b.kind == branchConcrete {
		return b
	}
	return BranchRef{}
}

// Storage devuelve el literal a persistir ("" para Unset, "ALL" para All, o el id).
func (b BranchRef) Storage() string {
	switch b.kind {
	case branchAll:
		return BranchAllLiteral
	case branchConcrete:
		return b.id
	default:
		return ""
	}
}

// String implementa fmt.Stringer con el mismo literal que Storage.
func (b BranchRef) String() string { return b.Storage() }

// MarshalJSON serializa como null (Unset), "ALL" o el id concreto.
func (b BranchRef) MarshalJSON() ([]byte, error) {
	if b.kind == branchUnset {
		return []byte("null"), nil
	}
	return json.Marshal(b.Storage())
}

// UnmarshalJSON acepta null, "ALL" o un id.
func (b *BranchRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = BranchUnset()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*b = ParseBranchRef(s)
	return nil
}
