package gourmetapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gourmetify/admin-api/internal/application/session"
	"github.com/gourmetify/admin-api/internal/domain"
	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
	"github.com/gourmetify/admin-api/pkg/logger"
)

// Headers de contexto que viajan en toda llamada escopeada.
const (
	headerTenant  = "x-tenant-id"
	headerBranch  = "x-branch-id"
	headerRequest = "X-Request-ID"
)

// Error error HTTP del backend con código y mensaje del cuerpo.
type Error struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend: status=%d code=%s message=%s", e.StatusCode, e.Code, e.Message)
}

// Unwrap mapea el status al error de dominio para errors.Is en los callers.
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusBadRequest:
		return domain.ErrInvalidInput
	default:
		return nil
	}
}

// callOpts overrides puntuales de una llamada (pantallas admin que consultan
// otra sucursal u otro tenant sin tocar la sesión).
type callOpts struct {
	branchID string
	tenantID string
	query    url.Values
}

// Client cliente del backend central de Gourmetify. Inyecta en cada llamada la
// credencial, el tenant y la sucursal leídos del ContextStore (no del
// contenedor, para ser correcto incluso antes de la hidratación), y aplica la
// política de un único refresh-y-reintento ante credencial rechazada.
type Client struct {
	baseURL   string
	http      *http.Client
	store     repository.ContextStore
	container *session.Container
	log       *logger.Logger

	// refreshMu serializa el refresh: ninguna llamada reutiliza una credencial
	// vieja una vez que un fallo previo inició la renovación.
	refreshMu sync.Mutex
}

// New construye el cliente. container puede ser nil en tests que no ejercitan
// la limpieza de sesión.
func New(baseURL string, timeout time.Duration, store repository.ContextStore, container *session.Container, log *logger.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: timeout},
		store:     store,
		container: container,
		log:       log,
	}
}

// do ejecuta una llamada escopeada con la política completa del inyector.
// out nil descarta el cuerpo; body nil no envía cuerpo.
func (c *Client) do(ctx context.Context, method, path string, body, out any, opts callOpts) error {
	raw, err := c.roundTrip(ctx, method, path, body, opts, true)
	if err != nil {
		return err
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decodificar respuesta de %s %s: %w", method, path, err)
		}
	}
	return nil
}

// roundTrip envía la petición; si allowRefresh y el backend rechaza la
// credencial, intenta exactamente un refresh silencioso y un reintento. Un
// segundo rechazo (o un refresh fallido) limpia la sesión completa y se
// propaga al caller: sin bucles, sin tragarse el segundo fallo.
func (c *Client) roundTrip(ctx context.Context, method, path string, body any, opts callOpts, allowRefresh bool) (json.RawMessage, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("serializar cuerpo: %w", err)
		}
	}

	send := func() (*http.Response, error) {
		req, err := c.newRequest(ctx, method, path, payload, opts)
		if err != nil {
			return nil, err
		}
		return c.http.Do(req)
	}

	resp, err := send()
	if err != nil {
		// Fallo de red: se propaga sin reintento automático.
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	raw, apiErr := drain(resp)

	if apiErr != nil && resp.StatusCode == http.StatusUnauthorized && allowRefresh {
		if err := c.refreshToken(ctx); err != nil {
			c.clearSession()
			return nil, fmt.Errorf("%w: refresh de credencial falló: %w", domain.ErrSessionCleared, apiErr)
		}
		resp, err = send()
		if err != nil {
			return nil, fmt.Errorf("%s %s (reintento): %w", method, path, err)
		}
		raw, apiErr = drain(resp)
		if apiErr != nil && resp.StatusCode == http.StatusUnauthorized {
			c.clearSession()
			return nil, fmt.Errorf("%w: credencial rechazada tras refresh: %w", domain.ErrSessionCleared, apiErr)
		}
	}

	if apiErr != nil {
		return nil, apiErr
	}
	return raw, nil
}

// newRequest arma la petición con los headers de contexto. El centinela "ALL"
// jamás viaja como header: se omite y el backend interpreta "sin restricción".
func (c *Client) newRequest(ctx context.Context, method, path string, payload []byte, opts callOpts) (*http.Request, error) {
	u := c.baseURL + path
	if len(opts.query) > 0 {
		u += "?" + opts.query.Encode()
	}
	var rd io.Reader
	if payload != nil {
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(headerRequest, uuid.New().String())

	if tok, ok := c.store.Get(repository.FieldToken); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	tenant := opts.tenantID
	if tenant == "" {
		tenant, _ = c.store.Get(repository.FieldTenant)
	}
	if tenant != "" {
		req.Header.Set(headerTenant, tenant)
	}

	branch := opts.branchID
	if branch == "" {
		if v, ok := c.store.Get(repository.FieldBranch); ok {
			branch = v
		}
	}
	if hv, ok := session.BranchHeader(entity.ParseBranchRef(branch)); ok {
		req.Header.Set(headerBranch, hv)
	}

	return req, nil
}

// refreshToken ejecuta el refresh silencioso y persiste el token nuevo.
// Serializado: los fallos concurrentes comparten una sola renovación. La
// rotación en el contenedor queda registrada para que los chequeos de época de
// las llamadas en vuelo reconozcan al token renovado como la misma identidad.
func (c *Client) refreshToken(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	old, _ := c.store.Get(repository.FieldToken)
	raw, err := c.roundTrip(ctx, http.MethodPost, "/auth/refresh", nil, callOpts{}, false)
	if err != nil {
		return err
	}
	tok := extractToken(raw)
	if tok == "" {
		return fmt.Errorf("refresh sin token en la respuesta: %w", domain.ErrUnauthorized)
	}
	c.store.Set(repository.FieldToken, tok)
	if c.container != nil {
		// Si la sesión ya no porta la credencial vieja (logout o login de otro
		// usuario en vuelo) la rotación no aplica y el contenedor queda intacto.
		c.container.RotateToken(old, tok)
	}
	c.log.Debug().Msg("credencial renovada")
	return nil
}

// clearSession limpia contenedor y store tras un fallo de auth irrecuperable.
func (c *Client) clearSession() {
	c.store.ClearAll()
	if c.container != nil {
		c.container.Clear()
	}
	c.log.Warn().Msg("sesión limpiada por credencial irrecuperable")
}

// pageQuery agrega la ventana de paginación de un listado a los query params.
func pageQuery(q url.Values, p repository.Page) url.Values {
	if q == nil {
		q = url.Values{}
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	return q
}

// drain lee el cuerpo completo y convierte status >= 400 en *Error.
func drain(resp *http.Response) (json.RawMessage, *Error) {
	defer resp.Body.Close()
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if resp.StatusCode >= 400 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return nil, apiErr
	}
	return raw, nil
}

// extractToken tolera los distintos nombres con los que el backend devuelve la
// credencial (token, access_token, accessToken), planos o bajo data.
func extractToken(raw json.RawMessage) string {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return ""
	}
	if data, ok := m["data"]; ok {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(data, &inner); err == nil && len(inner) > 0 {
			m = inner
		}
	}
	for _, k := range []string{"access_token", "token", "accessToken"} {
		if v, ok := m[k]; ok {
			var s string
			if err := json.Unmarshal(v, &s); err == nil && s != "" {
				return s
			}
		}
	}
	return ""
}
