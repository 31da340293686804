package domain

import "time"

// Privilege is an action right assignable to a role. The set is fixed and
// mirrors the HTTP verbs the API exposes.
type Privilege string

const (
	PrivilegeRead   Privilege = "READ"
	PrivilegePost   Privilege = "POST"
	PrivilegePatch  Privilege = "PATCH"
	PrivilegePut    Privilege = "PUT"
	PrivilegeDelete Privilege = "DELETE"
)

// Valid reports whether p is one of the known privileges.
func (p Privilege) Valid() bool {
	switch p {
	case PrivilegeRead, PrivilegePost, PrivilegePatch, PrivilegePut, PrivilegeDelete:
		return true
	}
	return false
}

// Role is a named permission bundle: the privileges its holders may exercise
// and the product categories those privileges apply to. Either set may be
// empty, but both must be present explicitly on creation.
type Role struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Privileges []Privilege `json:"privileges"`
	Categories []Category  `json:"categories"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// HasPrivilege reports whether the role holds at least one of the required
// privileges. An empty required set grants access to any holder.
func (r *Role) HasPrivilege(required ...Privilege) bool {
	if len(required) == 0 {
		return true
	}
	held := make(map[Privilege]struct{}, len(r.Privileges))
	for _, p := range r.Privileges {
		held[p] = struct{}{}
	}
	for _, p := range required {
		if _, ok := held[p]; ok {
			return true
		}
	}
	return false
}

// HasCategory reports whether the role's category scope includes c.
func (r *Role) HasCategory(c Category) bool {
	for _, rc := range r.Categories {
		if rc == c {
			return true
		}
	}
	return false
}
