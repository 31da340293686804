package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/invenco/inventory-system/internal/core/domain"
)

// Seed loads the default role matrix, users and product catalog. It is
// idempotent: roles and users already present are left untouched, and the
// catalog is only inserted into an empty collection.
func Seed(ctx context.Context, db *mongo.Database, bcryptCost int) error {
	roleRepo := NewRoleRepository(db)
	userRepo := NewUserRepository(db)
	productRepo := NewProductRepository(db)

	if err := roleRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("seed role indexes: %w", err)
	}
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("seed user indexes: %w", err)
	}
	if err := productRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("seed product indexes: %w", err)
	}

	roleIDs := make(map[string]string, len(seedRoles))
	now := time.Now().UTC()

	for _, r := range seedRoles {
		existing, err := roleRepo.FindByName(ctx, r.Name)
		if err == nil {
			roleIDs[r.Name] = existing.ID
			continue
		}
		if !errors.Is(err, domain.ErrRoleNotFound) {
			return err
		}

		r.CreatedAt, r.UpdatedAt = now, now
		created, err := roleRepo.Create(ctx, &r)
		if err != nil {
			return fmt.Errorf("seed role %s: %w", r.Name, err)
		}
		roleIDs[r.Name] = created.ID
	}

	for _, u := range seedUsers {
		if _, err := userRepo.FindByEmail(ctx, u.email); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcryptCost)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}

		user := &domain.User{
			Email:        u.email,
			PasswordHash: string(hash),
			RoleID:       roleIDs[u.roleName],
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
	}

	existing, err := productRepo.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, p := range seedProducts {
		p.CreatedAt, p.UpdatedAt = now, now
		if _, err := productRepo.Create(ctx, &p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Name, err)
		}
	}
	return nil
}

var seedRoles = []domain.Role{
	{Name: "MASTER", Privileges: []domain.Privilege{domain.PrivilegeRead, domain.PrivilegePost, domain.PrivilegePatch, domain.PrivilegePut, domain.PrivilegeDelete}, Categories: []domain.Category{domain.CategoryFood, domain.CategoryTool, domain.CategorySchool, domain.CategoryPharmacy, domain.CategoryTechnology}},
	{Name: "ADMIN", Privileges: []domain.Privilege{domain.PrivilegeRead, domain.PrivilegePost, domain.PrivilegePatch, domain.PrivilegePut}, Categories: []domain.Category{domain.CategoryFood, domain.CategoryTool, domain.CategorySchool}},
	{Name: "MODERATOR", Privileges: []domain.Privilege{domain.PrivilegeRead, domain.PrivilegePatch, domain.PrivilegePut}, Categories: []domain.Category{domain.CategoryTechnology, domain.CategorySchool, domain.CategoryPharmacy}},
	{Name: "EDITOR", Privileges: []domain.Privilege{domain.PrivilegeRead, domain.PrivilegePost, domain.PrivilegePatch}, Categories: []domain.Category{domain.CategoryFood, domain.CategorySchool}},
	{Name: "SELLER", Privileges: []domain.Privilege{domain.PrivilegeRead, domain.PrivilegePost}, Categories: []domain.Category{domain.CategoryTechnology, domain.CategoryTool}},
	{Name: "VIEWER", Privileges: []domain.Privilege{domain.PrivilegeRead}, Categories: []domain.Category{domain.CategoryFood, domain.CategoryPharmacy}},
	{Name: "INTERN", Privileges: []domain.Privilege{domain.PrivilegeRead}, Categories: []domain.Category{domain.CategoryFood, domain.CategoryTechnology}},
}

var seedUsers = []struct {
	email    string
	password string
	roleName string
}{
	{"admin@example.com", "admin", "MASTER"},
	{"alice@example.com", "elice", "ADMIN"},
	{"bob@example.com", "bob", "MODERATOR"},
	{"charlie@example.com", "charlie", "EDITOR"},
	{"diana@example.com", "diana", "SELLER"},
	{"eve@example.com", "eve", "VIEWER"},
	{"frank@example.com", "frank", "INTERN"},
	{"grace@example.com", "grace", "SELLER"},
	{"heidi@example.com", "heidi", "ADMIN"},
	{"ivan@example.com", "ivan", "MODERATOR"},
}

var seedProducts = []domain.Product{
	{Name: "Apple", Brand: "Don Soto", Category: domain.CategoryFood, UnitPrice: 120, Stock: 30},
	{Name: "Banana", Brand: "Tropical Fresh", Category: domain.CategoryFood, UnitPrice: 90, Stock: 45},
	{Name: "Rice", Brand: "Molino del Sol", Category: domain.CategoryFood, UnitPrice: 350, Stock: 60},
	{Name: "Olive Oil", Brand: "La Toscana", Category: domain.CategoryFood, UnitPrice: 1800, Stock: 25},
	{Name: "Milk", Brand: "La Serenisima", Category: domain.CategoryFood, UnitPrice: 500, Stock: 40},
	{Name: "Bread", Brand: "Campo Verde", Category: domain.CategoryFood, UnitPrice: 250, Stock: 80},
	{Name: "Screwdriver", Brand: "Stanley", Category: domain.CategoryTool, UnitPrice: 950, Stock: 50},
	{Name: "Hammer", Brand: "Bahco", Category: domain.CategoryTool, UnitPrice: 1700, Stock: 25},
	{Name: "Drill", Brand: "Bosch", Category: domain.CategoryTool, UnitPrice: 12000, Stock: 10},
	{Name: "Measuring Tape", Brand: "Truper", Category: domain.CategoryTool, UnitPrice: 600, Stock: 70},
	{Name: "Pliers", Brand: "Irwin", Category: domain.CategoryTool, UnitPrice: 850, Stock: 40},
	{Name: "Wrench", Brand: "Craftsman", Category: domain.CategoryTool, UnitPrice: 1100, Stock: 35},
	{Name: "Book", Brand: "Rivadavia", Category: domain.CategorySchool, UnitPrice: 300, Stock: 100},
	{Name: "Notebook", Brand: "Gloria", Category: domain.CategorySchool, UnitPrice: 280, Stock: 120},
	{Name: "Pencil", Brand: "Faber-Castell", Category: domain.CategorySchool, UnitPrice: 80, Stock: 500},
	{Name: "Eraser", Brand: "Maped", Category: domain.CategorySchool, UnitPrice: 60, Stock: 400},
	{Name: "Backpack", Brand: "Totto", Category: domain.CategorySchool, UnitPrice: 4500, Stock: 20},
	{Name: "Marker Set", Brand: "Sharpie", Category: domain.CategorySchool, UnitPrice: 850, Stock: 90},
	{Name: "Pills", Brand: "Bayer", Category: domain.CategoryPharmacy, UnitPrice: 600, Stock: 200},
	{Name: "Vitamin C", Brand: "Redoxon", Category: domain.CategoryPharmacy, UnitPrice: 950, Stock: 100},
	{Name: "Bandages", Brand: "Curitas", Category: domain.CategoryPharmacy, UnitPrice: 300, Stock: 150},
	{Name: "Thermometer", Brand: "Omron", Category: domain.CategoryPharmacy, UnitPrice: 2500, Stock: 40},
	{Name: "Alcohol Gel", Brand: "Aseptic", Category: domain.CategoryPharmacy, UnitPrice: 700, Stock: 80},
	{Name: "Cough Syrup", Brand: "Tosfree", Category: domain.CategoryPharmacy, UnitPrice: 1200, Stock: 60},
	{Name: "Mouse", Brand: "Logitech", Category: domain.CategoryTechnology, UnitPrice: 8000, Stock: 15},
	{Name: "Keyboard", Brand: "Redragon", Category: domain.CategoryTechnology, UnitPrice: 15000, Stock: 20},
	{Name: "Monitor", Brand: "Samsung", Category: domain.CategoryTechnology, UnitPrice: 95000, Stock: 10},
	{Name: "Headphones", Brand: "Sony", Category: domain.CategoryTechnology, UnitPrice: 18000, Stock: 30},
	{Name: "USB Drive", Brand: "Kingston", Category: domain.CategoryTechnology, UnitPrice: 2500, Stock: 100},
	{Name: "Webcam", Brand: "Logitech", Category: domain.CategoryTechnology, UnitPrice: 22000, Stock: 12},
}
