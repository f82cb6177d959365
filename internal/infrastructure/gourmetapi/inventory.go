package gourmetapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryService)(nil)

// InventoryService adaptador del puerto InventoryRepository sobre /inventory y /movements.
type InventoryService struct {
	c *Client
}

// NewInventoryService construye el adaptador de inventario.
func NewInventoryService(c *Client) *InventoryService {
	return &InventoryService{c: c}
}

// Levels lista el stock vigente de la sucursal activa (u otra vía override), paginado.
func (s *InventoryService) Levels(ctx context.Context, page repository.Page, branchID string) ([]entity.InventoryLevel, error) {
	var out []entity.InventoryLevel
	err := s.c.do(ctx, http.MethodGet, "/inventory", nil, &out, callOpts{branchID: branchID, query: pageQuery(nil, page)})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Adjust aplica un ajuste puntual de stock.
func (s *InventoryService) Adjust(ctx context.Context, in repository.AdjustInventoryInput, branchID string) (*entity.InventoryLevel, error) {
	var out entity.InventoryLevel
	err := s.c.do(ctx, http.MethodPatch, "/inventory/adjust", in, &out, callOpts{branchID: branchID})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Movements lista movimientos de stock con filtros.
func (s *InventoryService) Movements(ctx context.Context, f repository.MovementFilter, branchID string) ([]entity.StockMovement, error) {
	q := url.Values{}
	if f.IngredientID != "" {
		q.Set("ingredientId", f.IngredientID)
	}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}
	var out []entity.StockMovement
	err := s.c.do(ctx, http.MethodGet, "/movements", nil, &out, callOpts{branchID: branchID, query: q})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMovement registra un movimiento manual.
func (s *InventoryService) CreateMovement(ctx context.Context, in repository.CreateMovementInput, branchID string) (*entity.StockMovement, error) {
	var out entity.StockMovement
	err := s.c.do(ctx, http.MethodPost, "/movements", in, &out, callOpts{branchID: branchID})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
