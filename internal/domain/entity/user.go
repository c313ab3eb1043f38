package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// ValidRole indica si el rol es uno de los soportados.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}

// User representa un usuario del sistema. Los usuarios se crean en el registro
// y no se actualizan ni eliminan desde la aplicación.
type User struct {
	ID           string
	Name         string
	Email        string // único, siempre en minúsculas
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, staff
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
