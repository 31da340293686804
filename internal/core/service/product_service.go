package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/ports"
)

// ProductService implements catalog management.
type ProductService struct {
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewProductService(products ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:      input.Name,
		Brand:     input.Brand,
		Category:  input.Category,
		UnitPrice: input.UnitPrice,
		Stock:     input.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("category", string(created.Category)).Msg("product created")
	return created, nil
}

func (s *ProductService) FindAll(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *ProductService) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, domain.ErrValidation
	}
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) FindByName(ctx context.Context, name string) ([]domain.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrValidation
	}
	return s.products.FindByName(ctx, name)
}

func (s *ProductService) FindByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	if !category.Valid() {
		return nil, domain.ErrValidation
	}
	return s.products.FindByCategory(ctx, category)
}

// Update applies a partial update addressed by id. Omitted fields keep their
// stored value; fields that are sent are validated before they overwrite.
func (s *ProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	if id == "" {
		return nil, domain.ErrValidation
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Brand != "" {
		product.Brand = input.Brand
	}
	if input.Category != "" {
		if !input.Category.Valid() {
			return nil, domain.ErrValidation
		}
		product.Category = input.Category
	}
	if input.UnitPrice != nil {
		if *input.UnitPrice < 0 {
			return nil, domain.ErrValidation
		}
		product.UnitPrice = *input.UnitPrice
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, domain.ErrValidation
		}
		product.Stock = *input.Stock
	}
	product.UpdatedAt = time.Now().UTC()

	return s.products.Update(ctx, product)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrValidation
	}
	return s.products.Delete(ctx, id)
}

func validateProductInput(input ports.ProductInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Brand) == "" {
		return domain.ErrValidation
	}
	if !input.Category.Valid() {
		return domain.ErrValidation
	}
	if input.UnitPrice < 0 || input.Stock < 0 {
		return domain.ErrValidation
	}
	return nil
}
