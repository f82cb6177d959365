package postgres

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gourmetify/admin-api/internal/domain/repository"
	"github.com/gourmetify/admin-api/pkg/logger"
)

var (
	_ repository.ContextStore   = (*ContextStore)(nil)
	_ repository.ChangeNotifier = (*ContextStore)(nil)
)

// notifyChannel canal de NOTIFY para cambios de contexto de sesión.
const notifyChannel = "gourmetify_session_changed"

// ContextStore implementación del puerto ContextStore sobre PostgreSQL, para
// despliegues donde varias instancias del gateway comparten el contexto del
// operador. Tabla esperada:
//
//	CREATE TABLE IF NOT EXISTS session_context (
//	    key        TEXT PRIMARY KEY,
//	    value      TEXT NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//
// La difusión entre instancias usa NOTIFY/LISTEN; la propia escritura difunde
// además localmente, de modo que cada mutación produce un evento.
type ContextStore struct {
	pool     *pgxpool.Pool
	defaults Defaults
	log      *logger.Logger

	mu      sync.Mutex
	subs    map[int]chan repository.ChangeEvent
	nextSub int
	cancel  context.CancelFunc
}

// Defaults fallbacks de entorno para tenant y sucursal (igual que el store de archivo).
type Defaults struct {
	TenantID string
	BranchID string
}

// NewContextStore construye el store y arranca el listener de NOTIFY.
func NewContextStore(ctx context.Context, pool *pgxpool.Pool, defaults Defaults, log *logger.Logger) *ContextStore {
	ctx, cancel := context.WithCancel(ctx)
	s := &ContextStore{
		pool:     pool,
		defaults: defaults,
		log:      log,
		subs:     map[int]chan repository.ChangeEvent{},
		cancel:   cancel,
	}
	go s.listen(ctx)
	return s
}

// Get devuelve el valor persistido o el default de entorno (tenant/sucursal).
// Los fallos de infraestructura degradan a ausente, nunca lanzan.
func (s *ContextStore) Get(field repository.ContextField) (string, bool) {
	var v string
	err := s.pool.QueryRow(context.Background(),
		`SELECT value FROM session_context WHERE key = $1`, string(field)).Scan(&v)
	if err == nil && v != "" {
		return v, true
	}
	switch field {
	case repository.FieldTenant:
		if s.defaults.TenantID != "" {
			return s.defaults.TenantID, true
		}
	case repository.FieldBranch:
		if s.defaults.BranchID != "" {
			return s.defaults.BranchID, true
		}
	}
	return "", false
}

// Set escribe el valor ("" elimina la clave), notifica a las demás instancias
// con NOTIFY y difunde localmente. Las escrituras fallidas se descartan en
// silencio; la difusión ocurre igual.
func (s *ContextStore) Set(field repository.ContextField, value string) {
	ctx := context.Background()
	var err error
	if value == "" {
		_, err = s.pool.Exec(ctx, `DELETE FROM session_context WHERE key = $1`, string(field))
	} else {
		_, err = s.pool.Exec(ctx, `
			INSERT INTO session_context (key, value, updated_at) VALUES ($1, $2, now())
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
			string(field), value)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", string(field)).Msg("escritura de contexto descartada")
	} else {
		_, _ = s.pool.Exec(ctx, `SELECT pg_notify($1, $2)`, notifyChannel, time.Now().UTC().Format(time.RFC3339Nano))
	}
	s.publish()
}

// ClearAll elimina todas las claves de sesión en una transacción y difunde una vez.
func (s *ContextStore) ClearAll() {
	ctx := context.Background()
	keys := make([]string, 0, len(repository.SessionFields))
	for _, f := range repository.SessionFields {
		keys = append(keys, string(f))
	}
	if _, err := s.pool.Exec(ctx, `DELETE FROM session_context WHERE key = ANY($1)`, keys); err != nil {
		s.log.Warn().Err(err).Msg("clear de contexto descartado")
	} else {
		_, _ = s.pool.Exec(ctx, `SELECT pg_notify($1, $2)`, notifyChannel, time.Now().UTC().Format(time.RFC3339Nano))
	}
	s.publish()
}

// Subscribe registra un consumidor de eventos de cambio.
func (s *ContextStore) Subscribe() (<-chan repository.ChangeEvent, func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan repository.ChangeEvent, 1)
	s.subs[id] = ch
	s.mu.Unlock()
	return ch, func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Close detiene el listener.
func (s *ContextStore) Close() {
	s.cancel()
	s.mu.Lock()
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
	s.mu.Unlock()
}

func (s *ContextStore) publish() {
	ev := repository.ChangeEvent{At: time.Now()}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// listen sostiene una conexión dedicada en LISTEN y re-publica cada NOTIFY de
// otras instancias. Reconecta con backoff exponencial ante caídas.
func (s *ContextStore) listen(ctx context.Context) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = 30 * time.Second

	for {
		if ctx.Err() != nil {
			return
		}
		if err := s.listenOnce(ctx); err != nil && ctx.Err() == nil {
			delay := bo.NextBackOff()
			s.log.Warn().Err(err).Dur("retry_in", delay).Msg("listener de sesión caído, reconectando")
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			continue
		}
		bo.Reset()
	}
}

func (s *ContextStore) listenOnce(ctx context.Context) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		return err
	}
	for {
		if _, err := conn.Conn().WaitForNotification(ctx); err != nil {
			return err
		}
		// El payload trae solo un timestamp; la verdad está en la tabla.
		s.publish()
	}
}
