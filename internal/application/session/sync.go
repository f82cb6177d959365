package session

import (
	"context"
	"encoding/json"

	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
	"github.com/gourmetify/admin-api/pkg/logger"
)

// Rehydrate reconstruye la sesión del contenedor releyendo el ContextStore.
// Es la única reacción válida a un evento de difusión: el store es la fuente de
// verdad, nunca el evento.
func Rehydrate(c *Container, store repository.ContextStore) {
	p := Patch{}

	if v, ok := store.Get(repository.FieldToken); ok {
		p.Token = Str(v)
	}
	if v, ok := store.Get(repository.FieldTenant); ok {
		p.TenantID = Str(v)
	}
	if v, ok := store.Get(repository.FieldBranch); ok {
		p.Branch = BranchPtr(entity.ParseBranchRef(v))
	}
	if raw, ok := store.Get(repository.FieldUser); ok {
		var u entity.AuthUser
		if err := json.Unmarshal([]byte(raw), &u); err == nil && u.ID != "" {
			p.User = UserPtr(&u)
		}
	}

	c.Hydrate(p)

	if v, ok := store.Get(repository.FieldRoleOverride); ok {
		c.SetDevRoleOverride(entity.ParseRole(v))
	} else {
		c.SetDevRoleOverride("")
	}
}

// Bind engancha el contenedor a la difusión de cambios: cada evento provoca una
// relectura completa del store. Corre hasta que el contexto se cancele.
func Bind(ctx context.Context, c *Container, store repository.ContextStore, notifier repository.ChangeNotifier, log *logger.Logger) {
	events, cancel := notifier.Subscribe()
	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, open := <-events:
				if !open {
					return
				}
				log.Debug().Time("at", ev.At).Msg("contexto de sesión cambió, rehidratando")
				Rehydrate(c, store)
			}
		}
	}()
}
