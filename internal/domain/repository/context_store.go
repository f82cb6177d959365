package repository

import "time"

// ContextField clave namespaced de un campo persistido del contexto de sesión.
// El namespace evita colisiones con almacenamiento ajeno en el mismo origen.
type ContextField string

// Claves de sesión persistidas (mismas claves que usa el frontend).
const (
	FieldToken        ContextField = "gourmetify.auth.token"
	FieldTenant       ContextField = "gourmetify.ctx.tenant"
	FieldBranch       ContextField = "gourmetify.ctx.branch"
	FieldUser         ContextField = "gourmetify.auth.user"
	FieldRoleOverride ContextField = "gourmetify.dev.role"
)

// SessionFields conjunto completo de claves de sesión, para ClearAll y rehidratación.
var SessionFields = []ContextField{
	FieldToken, FieldTenant, FieldBranch, FieldUser, FieldRoleOverride,
}

// ContextStore puerto de almacenamiento duradero clave/valor del contexto de sesión.
// Es el único recurso compartido entre procesos; la regla es "último escribe gana,
// difundir y releer". Nunca lanza: si el medio no está disponible, las lecturas
// devuelven ausente y las escrituras se descartan en silencio.
type ContextStore interface {
	// Get devuelve el valor almacenado. Para FieldTenant y FieldBranch aplica el
	// default de entorno si no hay nada almacenado. ok=false significa ausente.
	Get(field ContextField) (value string, ok bool)
	// Set escribe el valor; "" elimina la clave por completo (sin placeholders).
	// Toda escritura exitosa dispara exactamente una difusión de cambio.
	Set(field ContextField, value string)
	// ClearAll elimina todas las claves de sesión en una sola operación y
	// difunde una única vez.
	ClearAll()
}

// ChangeEvent señal "el contexto de sesión cambió". El payload lleva solo el
// instante; los consumidores deben releer el ContextStore, nunca confiar en el
// contenido del evento.
type ChangeEvent struct {
	At time.Time
}

// ChangeNotifier puerto de difusión de cambios hacia otros procesos del mismo
// operador y hacia los suscriptores locales. Entrega best-effort y sin orden
// garantizado respecto de escrituras ajenas.
type ChangeNotifier interface {
	// Subscribe devuelve el canal de eventos y la función para desuscribirse.
	Subscribe() (<-chan ChangeEvent, func())
}
