package usecase

import (
	"context"
	"fmt"

	"github.com/gourmetify/admin-api/internal/domain"
	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

// SupplierUseCase proveedores y precios de insumos de la sucursal activa.
type SupplierUseCase struct {
	repo  repository.SupplierRepository
	scope *Scope
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, scope *Scope) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, scope: scope}
}

// List lista proveedores de la sucursal activa.
func (uc *SupplierUseCase) List(ctx context.Context, page repository.Page, branchID string) ([]entity.Supplier, error) {
	b, err := uc.scope.Branch(branchID)
	if err != nil {
		return nil, err
	}
	return uc.repo.List(ctx, page, b)
}

// Create registra un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in repository.CreateSupplierInput, branchID string) (*entity.Supplier, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name requerido", domain.ErrInvalidInput)
	}
	if in.DefaultPaymentTerm != nil && !validPaymentTerm(*in.DefaultPaymentTerm) {
		return nil, fmt.Errorf("%w: término de pago desconocido %q", domain.ErrInvalidInput, *in.DefaultPaymentTerm)
	}
	b, err := uc.scope.Branch(branchID)
	if err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, in, b)
}

// Update actualiza los campos presentes de un proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in repository.UpdateSupplierInput, branchID string) (*entity.Supplier, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	if in.DefaultPaymentTerm != nil && !validPaymentTerm(*in.DefaultPaymentTerm) {
		return nil, fmt.Errorf("%w: término de pago desconocido %q", domain.ErrInvalidInput, *in.DefaultPaymentTerm)
	}
	b, err := uc.scope.Branch(branchID)
	if err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, in, b)
}

// UpsertPrice registra el último precio de un insumo con un proveedor.
func (uc *SupplierUseCase) UpsertPrice(ctx context.Context, in repository.UpsertSupplierPriceInput, branchID string) (*entity.SupplierIngredientPrice, error) {
	if in.SupplierID == "" || in.IngredientID == "" {
		return nil, fmt.Errorf("%w: supplierId e ingredientId requeridos", domain.ErrInvalidInput)
	}
	if !in.Price.IsPositive() {
		return nil, fmt.Errorf("%w: el precio debe ser mayor a cero", domain.ErrInvalidInput)
	}
	b, err := uc.scope.Branch(branchID)
	if err != nil {
		return nil, err
	}
	return uc.repo.UpsertPrice(ctx, in, b)
}

func validPaymentTerm(t string) bool {
	switch t {
	case entity.PaymentTermCash, entity.PaymentTermNet7, entity.PaymentTermNet15,
		entity.PaymentTermNet30, entity.PaymentTermNet60:
		return true
	}
	return false
}
