package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/ports"
)

// UserService implements user management. Passwords are hashed with bcrypt
// at the configured cost before they reach the repository.
type UserService struct {
	users      ports.UserRepository
	roles      ports.RoleRepository
	bcryptCost int
	logger     zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, bcryptCost int, logger zerolog.Logger) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{users: users, roles: roles, bcryptCost: bcryptCost, logger: logger}
}

// Create hashes the password, resolves the role by name and persists the
// user. A role name that does not resolve fails with ErrRoleNotFound.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" || strings.TrimSpace(input.RoleName) == "" {
		return nil, domain.ErrValidation
	}

	role, err := s.roles.FindByName(ctx, input.RoleName)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", role.Name).Msg("user created")
	return created, nil
}

func (s *UserService) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domain.ErrValidation
	}
	return s.users.FindByEmail(ctx, email)
}

func (s *UserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrValidation
	}
	return s.users.FindByID(ctx, id)
}

// Update applies a partial update addressed by email. Omitted fields keep
// their stored value; a new password is re-hashed, a new role name is
// re-resolved.
func (s *UserService) Update(ctx context.Context, email string, input ports.UpdateUserInput) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domain.ErrValidation
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if input.RoleName != "" {
		role, err := s.roles.FindByName(ctx, input.RoleName)
		if err != nil {
			return nil, err
		}
		user.RoleID = role.ID
	}
	user.UpdatedAt = time.Now().UTC()

	return s.users.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return domain.ErrValidation
	}
	return s.users.DeleteByEmail(ctx, email)
}
