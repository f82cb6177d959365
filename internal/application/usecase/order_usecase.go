package usecase

import (
	"context"
	"fmt"

	"github.com/gourmetify/admin-api/internal/domain"
	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

// OrderUseCase consulta y mutación de órdenes de la sucursal activa.
type OrderUseCase struct {
	repo  repository.OrderRepository
	scope *Scope
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, scope *Scope) *OrderUseCase {
	return &OrderUseCase{repo: repo, scope: scope}
}

// List lista órdenes de la sucursal activa (u otra, con override administrativo).
func (uc *OrderUseCase) List(ctx context.Context, page repository.Page, branchID string) ([]entity.Order, error) {
	b, err := uc.scope.Branch(branchID)
	if err != nil {
		return nil, err
	}
	return uc.repo.List(ctx, page, b)
}

// GetByID obtiene una orden por ID.
func (uc *OrderUseCase) GetByID(ctx context.Context, id, branchID string) (*entity.Order, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	b, err := uc.scope.Branch(branchID)
	if err != nil {
		return nil, err
	}
	return uc.repo.GetByID(ctx, id, b)
}

// Create abre una orden nueva. Una orden DELIVERY exige dirección.
func (uc *OrderUseCase) Create(ctx context.Context, in repository.CreateOrderInput, branchID string) (*entity.Order, error) {
	if in.CashierID == "" {
		return nil, fmt.Errorf("%w: cashierId requerido", domain.ErrInvalidInput)
	}
	if !validChannel(in.Channel) {
		return nil, fmt.Errorf("%w: canal desconocido %q", domain.ErrInvalidInput, in.Channel)
	}
	if in.Channel == entity.ChannelDelivery && (in.AddressID == nil || *in.AddressID == "") {
		return nil, fmt.Errorf("%w: una orden DELIVERY requiere addressId", domain.ErrInvalidInput)
	}
	b, err := uc.scope.ConcreteBranch(branchID)
	if err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, in, b)
}

// SetStatus transiciona el estado de una orden.
func (uc *OrderUseCase) SetStatus(ctx context.Context, id, status, branchID string) (*entity.Order, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	if !validOrderStatus(status) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, status)
	}
	b, err := uc.scope.Branch(branchID)
	if err != nil {
		return nil, err
	}
	return uc.repo.SetStatus(ctx, id, status, b)
}

func validChannel(c string) bool {
	switch c {
	case entity.ChannelTakeaway, entity.ChannelDelivery, entity.ChannelDineIn:
		return true
	}
	return false
}

func validOrderStatus(s string) bool {
	switch s {
	case entity.OrderOpen, entity.OrderPreparing, entity.OrderReady, entity.OrderDelivered, entity.OrderCancelled:
		return true
	}
	return false
}
