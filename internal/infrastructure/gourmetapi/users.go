package gourmetapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserService)(nil)

// UserService adaptador del puerto UserRepository sobre el recurso /users.
// tenantID distinto de "" viaja como override puntual del header x-tenant-id.
type UserService struct {
	c *Client
}

// NewUserService construye el adaptador de usuarios.
func NewUserService(c *Client) *UserService {
	return &UserService{c: c}
}

// List lista usuarios del tenant (el de sesión, u otro vía override), paginados.
func (s *UserService) List(ctx context.Context, page repository.Page, tenantID string) ([]entity.User, error) {
	var out []entity.User
	err := s.c.do(ctx, http.MethodGet, "/users", nil, &out, callOpts{tenantID: tenantID, query: pageQuery(nil, page)})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListAdmin lista usuarios vía /users/admin con el tenant por query string.
func (s *UserService) ListAdmin(ctx context.Context, page repository.Page, tenantID string) ([]entity.User, error) {
	q := url.Values{}
	if tenantID != "" {
		q.Set("tenantId", tenantID)
	}
	var out []entity.User
	err := s.c.do(ctx, http.MethodGet, "/users/admin", nil, &out, callOpts{query: pageQuery(q, page)})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un usuario por id.
func (s *UserService) GetByID(ctx context.Context, id, tenantID string) (*entity.User, error) {
	var out entity.User
	err := s.c.do(ctx, http.MethodGet, "/users/"+id, nil, &out, callOpts{tenantID: tenantID})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crea un usuario en el tenant activo (u otro vía override).
func (s *UserService) Create(ctx context.Context, in repository.CreateUserInput, tenantID string) (*entity.User, error) {
	var out entity.User
	err := s.c.do(ctx, http.MethodPost, "/users", in, &out, callOpts{tenantID: tenantID})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAdmin crea un usuario vía /users/admin con el tenant por query string.
func (s *UserService) CreateAdmin(ctx context.Context, in repository.CreateUserInput, tenantID string) (*entity.User, error) {
	q := url.Values{}
	q.Set("tenantId", tenantID)
	var out entity.User
	err := s.c.do(ctx, http.MethodPost, "/users/admin", in, &out, callOpts{query: q})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update actualiza campos de un usuario.
func (s *UserService) Update(ctx context.Context, id string, in repository.UpdateUserInput, tenantID string) (*entity.User, error) {
	var out entity.User
	err := s.c.do(ctx, http.MethodPatch, "/users/"+id, in, &out, callOpts{tenantID: tenantID})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un usuario.
func (s *UserService) Delete(ctx context.Context, id, tenantID string) error {
	return s.c.do(ctx, http.MethodDelete, "/users/"+id, nil, nil, callOpts{tenantID: tenantID})
}
