package gourmetapi

import (
	"context"
	"net/http"

	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantService)(nil)

// TenantService adaptador del puerto TenantRepository sobre el recurso /tenants.
type TenantService struct {
	c *Client
}

// NewTenantService construye el adaptador de tenants.
func NewTenantService(c *Client) *TenantService {
	return &TenantService{c: c}
}

// List lista todos los tenants (pantalla SUPER_ADMIN).
func (s *TenantService) List(ctx context.Context) ([]entity.Tenant, error) {
	var out []entity.Tenant
	if err := s.c.do(ctx, http.MethodGet, "/tenants", nil, &out, callOpts{}); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un tenant por id.
func (s *TenantService) GetByID(ctx context.Context, id string) (*entity.Tenant, error) {
	var out entity.Tenant
	if err := s.c.do(ctx, http.MethodGet, "/tenants/"+id, nil, &out, callOpts{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crea un tenant.
func (s *TenantService) Create(ctx context.Context, in repository.CreateTenantInput) (*entity.Tenant, error) {
	var out entity.Tenant
	if err := s.c.do(ctx, http.MethodPost, "/tenants", in, &out, callOpts{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update actualiza campos de un tenant.
func (s *TenantService) Update(ctx context.Context, id string, in repository.UpdateTenantInput) (*entity.Tenant, error) {
	var out entity.Tenant
	if err := s.c.do(ctx, http.MethodPatch, "/tenants/"+id, in, &out, callOpts{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un tenant.
func (s *TenantService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/tenants/"+id, nil, nil, callOpts{})
}
