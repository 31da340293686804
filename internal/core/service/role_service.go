package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/ports"
)

// RoleService implements role management.
type RoleService struct {
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, logger: logger}
}

// Create persists a new role. Both sets must be explicit: an empty slice is
// a valid scope, a nil slice is a missing field.
func (s *RoleService) Create(ctx context.Context, input ports.CreateRoleInput) (*domain.Role, error) {
	if strings.TrimSpace(input.Name) == "" || input.Privileges == nil || input.Categories == nil {
		return nil, domain.ErrValidation
	}
	for _, p := range input.Privileges {
		if !p.Valid() {
			return nil, domain.ErrValidation
		}
	}
	for _, c := range input.Categories {
		if !c.Valid() {
			return nil, domain.ErrValidation
		}
	}

	now := time.Now().UTC()
	role := &domain.Role{
		Name:       input.Name,
		Privileges: input.Privileges,
		Categories: input.Categories,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.roles.Create(ctx, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("role_id", created.ID).Str("name", created.Name).Msg("role created")
	return created, nil
}

func (s *RoleService) FindByID(ctx context.Context, id string) (*domain.Role, error) {
	if id == "" {
		return nil, domain.ErrValidation
	}
	return s.roles.FindByID(ctx, id)
}

func (s *RoleService) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrValidation
	}
	return s.roles.FindByName(ctx, name)
}

func (s *RoleService) FindAll(ctx context.Context) ([]domain.Role, error) {
	return s.roles.FindAll(ctx)
}

// Update applies a partial update. An empty name or a nil slice keeps the
// stored value.
func (s *RoleService) Update(ctx context.Context, id string, input ports.UpdateRoleInput) (*domain.Role, error) {
	if id == "" {
		return nil, domain.ErrValidation
	}

	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		role.Name = input.Name
	}
	if input.Privileges != nil {
		for _, p := range input.Privileges {
			if !p.Valid() {
				return nil, domain.ErrValidation
			}
		}
		role.Privileges = input.Privileges
	}
	if input.Categories != nil {
		for _, c := range input.Categories {
			if !c.Valid() {
				return nil, domain.ErrValidation
			}
		}
		role.Categories = input.Categories
	}
	role.UpdatedAt = time.Now().UTC()

	return s.roles.Update(ctx, role)
}

func (s *RoleService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrValidation
	}
	return s.roles.Delete(ctx, id)
}
