package usecase

import (
	"context"
	"fmt"

	"github.com/gourmetify/admin-api/internal/domain"
	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

// TenantUseCase operaciones de plataforma sobre tenants (solo SUPER_ADMIN;
// el gate de rol vive en el middleware, acá solo validación de negocio).
type TenantUseCase struct {
	repo repository.TenantRepository
}

// NewTenantUseCase construye el caso de uso.
func NewTenantUseCase(repo repository.TenantRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo}
}

// List lista todos los tenants de la plataforma.
func (uc *TenantUseCase) List(ctx context.Context) ([]entity.Tenant, error) {
	return uc.repo.List(ctx)
}

// GetByID obtiene un tenant por ID.
func (uc *TenantUseCase) GetByID(ctx context.Context, id string) (*entity.Tenant, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	return uc.repo.GetByID(ctx, id)
}

// Create crea un tenant nuevo con plan y estado válidos.
func (uc *TenantUseCase) Create(ctx context.Context, in repository.CreateTenantInput) (*entity.Tenant, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name requerido", domain.ErrInvalidInput)
	}
	if in.Plan != "" && !validPlan(in.Plan) {
		return nil, fmt.Errorf("%w: plan desconocido %q", domain.ErrInvalidInput, in.Plan)
	}
	if in.Status != "" && !validTenantStatus(in.Status) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, in.Status)
	}
	return uc.repo.Create(ctx, in)
}

// Update actualiza los campos presentes de un tenant.
func (uc *TenantUseCase) Update(ctx context.Context, id string, in repository.UpdateTenantInput) (*entity.Tenant, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	if in.Plan != nil && !validPlan(*in.Plan) {
		return nil, fmt.Errorf("%w: plan desconocido %q", domain.ErrInvalidInput, *in.Plan)
	}
	if in.Status != nil && !validTenantStatus(*in.Status) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, *in.Status)
	}
	return uc.repo.Update(ctx, id, in)
}

// Delete elimina un tenant.
func (uc *TenantUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	return uc.repo.Delete(ctx, id)
}

func validPlan(p string) bool {
	switch p {
	case entity.PlanFree, entity.PlanBasic, entity.PlanPro, entity.PlanEnterprise:
		return true
	}
	return false
}

func validTenantStatus(s string) bool {
	switch s {
	case entity.TenantActive, entity.TenantSuspended, entity.TenantCancelled:
		return true
	}
	return false
}
