package ports

import (
	"context"

	"github.com/invenco/inventory-system/internal/core/domain"
)

// CreateUserInput carries the data needed to create a user. RoleName is
// resolved against the role store; creation fails when it does not resolve.
type CreateUserInput struct {
	Email    string
	Password string
	RoleName string
}

// UpdateUserInput carries a partial user update. Empty fields keep the
// stored value.
type UpdateUserInput struct {
	Email    string
	Password string
	RoleName string
}

// UserService defines use-case operations for users.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, email string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, email string) error
}
