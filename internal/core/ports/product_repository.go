package ports

import (
	"context"

	"github.com/invenco/inventory-system/internal/core/domain"
)

// ProductRepository defines the persistence interface for products.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByName(ctx context.Context, name string) ([]domain.Product, error)
	FindByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
