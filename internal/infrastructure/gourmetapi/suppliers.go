package gourmetapi

import (
	"context"
	"net/http"

	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierService)(nil)

// SupplierService adaptador del puerto SupplierRepository sobre /suppliers.
type SupplierService struct {
	c *Client
}

// NewSupplierService construye el adaptador de proveedores.
func NewSupplierService(c *Client) *SupplierService {
	return &SupplierService{c: c}
}

// List lista proveedores de la sucursal activa (u otra vía override), paginados.
func (s *SupplierService) List(ctx context.Context, page repository.Page, branchID string) ([]entity.Supplier, error) {
	var out []entity.Supplier
	err := s.c.do(ctx, http.MethodGet, "/suppliers", nil, &out, callOpts{branchID: branchID, query: pageQuery(nil, page)})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create registra un proveedor.
func (s *SupplierService) Create(ctx context.Context, in repository.CreateSupplierInput, branchID string) (*entity.Supplier, error) {
	var out entity.Supplier
	err := s.c.do(ctx, http.MethodPost, "/suppliers", in, &out, callOpts{branchID: branchID})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update actualiza campos de un proveedor.
func (s *SupplierService) Update(ctx context.Context, id string, in repository.UpdateSupplierInput, branchID string) (*entity.Supplier, error) {
	var out entity.Supplier
	err := s.c.do(ctx, http.MethodPatch, "/suppliers/"+id, in, &out, callOpts{branchID: branchID})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertPrice registra el último precio de un insumo con un proveedor.
func (s *SupplierService) UpsertPrice(ctx context.Context, in repository.UpsertSupplierPriceInput, branchID string) (*entity.SupplierIngredientPrice, error) {
	var out entity.SupplierIngredientPrice
	err := s.c.do(ctx, http.MethodPost, "/suppliers/upsert-price", in, &out, callOpts{branchID: branchID})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
