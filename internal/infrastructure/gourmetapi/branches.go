package gourmetapi

import (
	"context"
	"net/http"

	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchService)(nil)

// BranchService adaptador del puerto BranchRepository sobre el recurso /branches.
type BranchService struct {
	c *Client
}

// NewBranchService construye el adaptador de sucursales.
func NewBranchService(c *Client) *BranchService {
	return &BranchService{c: c}
}

// List lista las sucursales del tenant activo.
func (s *BranchService) List(ctx context.Context) ([]entity.Branch, error) {
	var out []entity.Branch
	if err := s.c.do(ctx, http.MethodGet, "/branches", nil, &out, callOpts{}); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene una sucursal por id.
func (s *BranchService) GetByID(ctx context.Context, id string) (*entity.Branch, error) {
	var out entity.Branch
	if err := s.c.do(ctx, http.MethodGet, "/branches/"+id, nil, &out, callOpts{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crea una sucursal.
func (s *BranchService) Create(ctx context.Context, in repository.CreateBranchInput) (*entity.Branch, error) {
	var out entity.Branch
	if err := s.c.do(ctx, http.MethodPost, "/branches", in, &out, callOpts{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update actualiza campos de una sucursal.
func (s *BranchService) Update(ctx context.Context, id string, in repository.UpdateBranchInput) (*entity.Branch, error) {
	var out entity.Branch
	if err := s.c.do(ctx, http.MethodPatch, "/branches/"+id, in, &out, callOpts{}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina una sucursal.
func (s *BranchService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/branches/"+id, nil, nil, callOpts{})
}
