package ports

import (
	"context"

	"github.com/invenco/inventory-system/internal/core/domain"
)

// CreateRoleInput carries the data needed to create a role. Both sets must
// be explicit; empty slices are valid, nil slices are not.
type CreateRoleInput struct {
	Name       string
	Privileges []domain.Privilege
	Categories []domain.Category
}

// UpdateRoleInput carries a partial role update. An empty name or a nil
// slice keeps the stored value.
type UpdateRoleInput struct {
	Name       string
	Privileges []domain.Privilege
	Categories []domain.Category
}

// RoleService defines use-case operations for roles.
type RoleService interface {
	Create(ctx context.Context, input CreateRoleInput) (*domain.Role, error)
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindAll(ctx context.Context) ([]domain.Role, error)
	Update(ctx context.Context, id string, input UpdateRoleInput) (*domain.Role, error)
	Delete(ctx context.Context, id string) error
}
