package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gourmetify/admin-api/internal/domain"
	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

// UserUseCase administración de usuarios del tenant. Las pantallas SUPER_ADMIN
// usan las variantes Admin, que escopean por query string en lugar de header.
type UserUseCase struct {
	repo  repository.UserRepository
	scope *Scope
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, scope *Scope) *UserUseCase {
	return &UserUseCase{repo: repo, scope: scope}
}

// List lista usuarios del tenant activo (u otro, con override administrativo).
func (uc *UserUseCase) List(ctx context.Context, page repository.Page, tenantID string) ([]entity.User, error) {
	t, err := uc.scope.Tenant(tenantID)
	if err != nil {
		return nil, err
	}
	return uc.repo.List(ctx, page, t)
}

// ListAdmin lista usuarios vía el recurso de plataforma (solo SUPER_ADMIN).
func (uc *UserUseCase) ListAdmin(ctx context.Context, page repository.Page, tenantID string) ([]entity.User, error) {
	t, err := uc.scope.Tenant(tenantID)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListAdmin(ctx, page, t)
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id, tenantID string) (*entity.User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	t, err := uc.scope.Tenant(tenantID)
	if err != nil {
		return nil, err
	}
	return uc.repo.GetByID(ctx, id, t)
}

// Create crea un usuario en el tenant activo.
func (uc *UserUseCase) Create(ctx context.Context, in repository.CreateUserInput, tenantID string) (*entity.User, error) {
	if err := validateNewUser(&in); err != nil {
		return nil, err
	}
	t, err := uc.scope.Tenant(tenantID)
	if err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, in, t)
}

// CreateAdmin crea un usuario vía el recurso de plataforma (solo SUPER_ADMIN).
func (uc *UserUseCase) CreateAdmin(ctx context.Context, in repository.CreateUserInput, tenantID string) (*entity.User, error) {
	if err := validateNewUser(&in); err != nil {
		return nil, err
	}
	t, err := uc.scope.Tenant(tenantID)
	if err != nil {
		return nil, err
	}
	return uc.repo.CreateAdmin(ctx, in, t)
}

// Update actualiza los campos presentes de un usuario.
func (uc *UserUseCase) Update(ctx context.Context, id string, in repository.UpdateUserInput, tenantID string) (*entity.User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	if in.Role != nil && !in.Role.Valid() {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, *in.Role)
	}
	if in.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*in.Email))
		if e == "" {
			return nil, fmt.Errorf("%w: email no puede quedar vacío", domain.ErrInvalidInput)
		}
		in.Email = &e
	}
	t, err := uc.scope.Tenant(tenantID)
	if err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, in, t)
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(ctx context.Context, id, tenantID string) error {
	if id == "" {
		return fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	t, err := uc.scope.Tenant(tenantID)
	if err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id, t)
}

func validateNewUser(in *repository.CreateUserInput) error {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || in.Password == "" {
		return fmt.Errorf("%w: email y password requeridos", domain.ErrInvalidInput)
	}
	if !in.Role.Valid() {
		return fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, in.Role)
	}
	return nil
}
