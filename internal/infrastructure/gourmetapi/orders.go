package gourmetapi

import (
	"context"
	"net/http"

	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderService)(nil)

// OrderService adaptador del puerto OrderRepository sobre el recurso /orders.
// branchID distinto de "" fuerza el header x-branch-id de esa llamada.
type OrderService struct {
	c *Client
}

// NewOrderService construye el adaptador de órdenes.
func NewOrderService(c *Client) *OrderService {
	return &OrderService{c: c}
}

// List lista órdenes de la sucursal activa (u otra vía override), paginadas.
func (s *OrderService) List(ctx context.Context, page repository.Page, branchID string) ([]entity.Order, error) {
	var out []entity.Order
	err := s.c.do(ctx, http.MethodGet, "/orders", nil, &out, callOpts{branchID: branchID, query: pageQuery(nil, page)})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene una orden con items, pagos y cliente.
func (s *OrderService) GetByID(ctx context.Context, id, branchID string) (*entity.Order, error) {
	var out entity.Order
	err := s.c.do(ctx, http.MethodGet, "/orders/"+id, nil, &out, callOpts{branchID: branchID})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create abre una orden nueva.
func (s *OrderService) Create(ctx context.Context, in repository.CreateOrderInput, branchID string) (*entity.Order, error) {
	var out entity.Order
	err := s.c.do(ctx, http.MethodPost, "/orders", in, &out, callOpts{branchID: branchID})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SetStatus cambia el estado de una orden (DELIVERED dispara consumos en el backend).
func (s *OrderService) SetStatus(ctx context.Context, id, status, branchID string) (*entity.Order, error) {
	body := map[string]string{"status": status}
	var out entity.Order
	err := s.c.do(ctx, http.MethodPatch, "/orders/"+id+"/status", body, &out, callOpts{branchID: branchID})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
