package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleCashier = "cashier"
)

// IsValidRole indica si r es admin, manager o cashier.
func IsValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCashier:
		return true
	}
	return false
}

// User representa un usuario del POS.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         string // admin, manager, cashier
	PasswordHash string // bcrypt; nunca se serializa
	IsActive     bool
	CreatedAt    time.Time
}

// UserPatch actualización parcial de un usuario.
type UserPatch struct {
	Email    *string
	Name     *string
	Role     *string
	IsActive *bool
}

// Apply copia en u los campos presentes en el patch.
func (patch UserPatch) Apply(u *User) {
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.IsActive != nil {
		u.IsActive = *patch.IsActive
	}
}
