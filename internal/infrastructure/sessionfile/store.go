package sessionfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/gourmetify/admin-api/internal/domain/repository"
	"github.com/gourmetify/admin-api/pkg/logger"
)

var (
	_ repository.ContextStore   = (*Store)(nil)
	_ repository.ChangeNotifier = (*Store)(nil)
)

// Defaults fallbacks de entorno que se aplican cuando no hay nada persistido.
// Solo tenant y sucursal tienen default; el resto de los campos no.
type Defaults struct {
	TenantID string
	BranchID string
}

// payload contenido del archivo de sesión. Writer identifica al proceso que
// escribió por última vez, para no re-publicar los eventos fsnotify causados
// por las escrituras propias (cada mutación difunde exactamente una vez).
type payload struct {
	Writer    string            `json:"writer"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Values    map[string]string `json:"values"`
}

// Store almacenamiento duradero clave/valor del contexto de sesión sobre un
// archivo JSON con escritura atómica (tmp + rename). Los demás procesos del
// mismo operador observan el archivo vía fsnotify y releen el store al cambiar.
// Si el directorio no está disponible degrada a no-op: lecturas ausentes,
// escrituras descartadas en silencio, difusión local intacta.
type Store struct {
	path     string
	writerID string
	defaults Defaults
	log      *logger.Logger

	mu       sync.Mutex
	disabled bool
	watcher  *fsnotify.Watcher
	subs     map[int]chan repository.ChangeEvent
	nextSub  int
	done     chan struct{}
}

// New crea el store en dir (se crea si no existe). dir vacío usa el directorio
// de configuración del usuario. Nunca devuelve error por medio no disponible:
// en ese caso el store queda deshabilitado y degrada según contrato.
func New(dir string, defaults Defaults, log *logger.Logger) *Store {
	s := &Store{
		writerID: uuid.New().String(),
		defaults: defaults,
		log:      log,
		subs:     map[int]chan repository.ChangeEvent{},
		done:     make(chan struct{}),
	}

	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			s.disabled = true
			log.Warn().Err(err).Msg("sin directorio de configuración, store de sesión deshabilitado")
			return s
		}
		dir = filepath.Join(base, "gourmetify")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		s.disabled = true
		log.Warn().Err(err).Str("dir", dir).Msg("no se pudo crear el directorio, store de sesión deshabilitado")
		return s
	}
	s.path = filepath.Join(dir, "session.json")

	if w, err := fsnotify.NewWatcher(); err != nil {
		log.Warn().Err(err).Msg("fsnotify no disponible, sin difusión entre procesos")
	} else if err := w.Add(dir); err != nil {
		_ = w.Close()
		log.Warn().Err(err).Msg("no se pudo observar el directorio de sesión")
	} else {
		s.watcher = w
		go s.watch(w)
	}

	return s
}

// Get devuelve el valor persistido; para tenant y sucursal aplica el default de
// entorno si no hay nada almacenado. ok=false significa ausente.
func (s *Store) Get(field repository.ContextField) (string, bool) {
	s.mu.Lock()
	values := s.read()
	v, ok := values[string(field)]
	s.mu.Unlock()

	if ok && v != "" {
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

// Set escribe el valor bajo la clave; "" elimina la clave por completo.
// Difunde exactamente una vez, incluso si la escritura fue descartada por
// store deshabilitado (contrato de degradación).
func (s *Store) Set(field repository.ContextField, value string) {
	s.mu.Lock()
	if !s.disabled {
		values := s.read()
		if value == "" {
			delete(values, string(field))
		} else {
			values[string(field)] = value
		}
		s.write(values)
	}
	s.mu.Unlock()
	s.publish()
}

// ClearAll elimina todas las claves de sesión en una sola escritura y difunde
// una única vez. Idempotente.
func (s *Store) ClearAll() {
	s.mu.Lock()
	if !s.disabled {
		values := s.read()
		for _, f := range repository.SessionFields {
			delete(values, string(f))
		}
		s.write(values)
	}
	s.mu.Unlock()
	s.publish()
}

// Subscribe registra un consumidor de eventos de cambio.
func (s *Store) Subscribe() (<-chan repository.ChangeEvent, func()) {
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

// Close detiene el watcher y cierra los canales de suscripción.
func (s *Store) Close() {
	close(s.done)
	s.mu.Lock()
	if s.watcher != nil {
		_ = s.watcher.Close()
		s.watcher = nil
	}
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
	s.mu.Unlock()
}

// read carga el mapa de valores del archivo. Caller sostiene s.mu.
func (s *Store) read() map[string]string {
	if s.disabled {
		return map[string]string{}
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]string{}
	}
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil || p.Values == nil {
		return map[string]string{}
	}
	return p.Values
}

// write persiste el mapa con escritura atómica. Caller sostiene s.mu.
func (s *Store) write(values map[string]string) {
	p := payload{Writer: s.writerID, UpdatedAt: time.Now().UTC(), Values: values}
	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		s.log.Warn().Err(err).Msg("escritura de sesión descartada")
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.log.Warn().Err(err).Msg("rename de sesión falló")
	}
}

// publish difunde un evento a los suscriptores locales (coalescible).
func (s *Store) publish() {
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

// watch re-publica los cambios hechos por OTROS procesos sobre el archivo.
// Las escrituras propias ya difundieron en Set/ClearAll; se reconocen por el
// writer id persistido en el payload. Recibe el watcher por parámetro: Close
// anula s.watcher bajo el mutex y la goroutine no debe releer el campo.
func (s *Store) watch(w *fsnotify.Watcher) {
	for {
		select {
		case <-s.done:
			return
		case ev, open := <-w.Events:
			if !open {
				return
			}
			if ev.Name != s.path || !ev.Op.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if s.lastWriterIsSelf() {
				continue
			}
			s.publish()
		case err, open := <-w.Errors:
			if !open {
				return
			}
			s.log.Warn().Err(err).Msg("watcher de sesión")
		}
	}
}

func (s *Store) lastWriterIsSelf() bool {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return false
	}
	return p.Writer == s.writerID
}
