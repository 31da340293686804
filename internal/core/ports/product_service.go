package ports

import (
	"context"

	"github.com/invenco/inventory-system/internal/core/domain"
)

// ProductInput carries the data needed to create a product.
type ProductInput struct {
	Name      string
	Brand     string
	Category  domain.Category
	UnitPrice float64
	Stock     int
}

// UpdateProductInput carries a partial product update. Empty strings and nil
// numbers keep the stored value; the pointers distinguish "not sent" from a
// legitimate zero price or stock.
type UpdateProductInput struct {
	Name      string
	Brand     string
	Category  domain.Category
	UnitPrice *float64
	Stock     *int
}

// ProductService defines use-case operations for products.
type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByName(ctx context.Context, name string) ([]domain.Product, error)
	FindByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
