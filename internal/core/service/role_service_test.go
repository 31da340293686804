package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/ports"
)

func TestRoleService_Create_Success(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo(), zerolog.Nop())

	role, err := svc.Create(context.Background(), ports.CreateRoleInput{
		Name:       "SELLER",
		Privileges: []domain.Privilege{domain.PrivilegeRead, domain.PrivilegePost},
		Categories: []domain.Category{domain.CategoryTechnology, domain.CategoryTool},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if role.Name != "SELLER" || len(role.Privileges) != 2 || len(role.Categories) != 2 {
		t.Fatalf("unexpected role: %+v", role)
	}
}

func TestRoleService_Create_EmptySetsAllowed(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo(), zerolog.Nop())

	role, err := svc.Create(context.Background(), ports.CreateRoleInput{
		Name:       "NOBODY",
		Privileges: []domain.Privilege{},
		Categories: []domain.Category{},
	})
	if err != nil {
		t.Fatalf("create with empty sets failed: %v", err)
	}
	if role.Privileges == nil || role.Categories == nil {
		t.Fatalf("sets must stay non-nil: %+v", role)
	}
}

func TestRoleService_Create_MissingSetsRejected(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo(), zerolog.Nop())

	cases := []ports.CreateRoleInput{
		{Name: "", Privileges: []domain.Privilege{}, Categories: []domain.Category{}},
		{Name: "X", Privileges: nil, Categories: []domain.Category{}},
		{Name: "X", Privileges: []domain.Privilege{}, Categories: nil},
		{Name: "X", Privileges: []domain.Privilege{"SUDO"}, Categories: []domain.Category{}},
		{Name: "X", Privileges: []domain.Privilege{}, Categories: []domain.Category{"WEAPONS"}},
	}
	for _, input := range cases {
		if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", input, err)
		}
	}
}

func TestRoleService_Create_Duplicate(t *testing.T) {
	repo := newStubRoleRepo()
	repo.add("role_1", "ADMIN", []domain.Privilege{}, []domain.Category{})
	svc := NewRoleService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateRoleInput{
		Name:       "ADMIN",
		Privileges: []domain.Privilege{},
		Categories: []domain.Category{},
	})
	if !errors.Is(err, domain.ErrRoleExists) {
		t.Fatalf("expected ErrRoleExists, got %v", err)
	}
}

func TestRoleService_Update_Partial(t *testing.T) {
	repo := newStubRoleRepo()
	repo.add("role_1", "ADMIN",
		[]domain.Privilege{domain.PrivilegeRead},
		[]domain.Category{domain.CategoryFood})
	svc := NewRoleService(repo, zerolog.Nop())

	updated, err := svc.Update(context.Background(), "role_1", ports.UpdateRoleInput{
		Privileges: []domain.Privilege{domain.PrivilegeRead, domain.PrivilegeDelete},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "ADMIN" {
		t.Fatalf("name should be unchanged, got %s", updated.Name)
	}
	if len(updated.Privileges) != 2 {
		t.Fatalf("privileges not replaced: %+v", updated.Privileges)
	}
	if len(updated.Categories) != 1 || updated.Categories[0] != domain.CategoryFood {
		t.Fatalf("categories should be unchanged: %+v", updated.Categories)
	}
}

func TestRoleService_Update_NotFound(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo(), zerolog.Nop())

	_, err := svc.Update(context.Background(), "ghost", ports.UpdateRoleInput{Name: "X"})
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestRoleService_Delete(t *testing.T) {
	repo := newStubRoleRepo()
	repo.add("role_1", "ADMIN", nil, nil)
	svc := NewRoleService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "role_1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "role_1"); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}
