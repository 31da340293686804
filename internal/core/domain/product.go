package domain

import "time"

// Category is a product domain used to scope which products a role may act
// on. The set is fixed.
type Category string

const (
	CategoryFood       Category = "FOOD"
	CategoryTool       Category = "TOOL"
	CategorySchool     Category = "SCHOOL"
	CategoryPharmacy   Category = "PHARMACY"
	CategoryTechnology Category = "TECHNOLOGY"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTool, CategorySchool, CategoryPharmacy, CategoryTechnology:
		return true
	}
	return false
}

// Product is a catalog item. Products relate to users and roles only through
// the category scope check at authorization time.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Category  Category  `json:"category"`
	UnitPrice float64   `json:"unit_price"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
