package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa un usuario del marketplace. Comprador y vendedor no son
// tipos de cuenta: son roles relativos a cada Material/Transaction.
type User struct {
	ID             string
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Name           string
	Phone          string
	Company        string
	CurrentProject string
	Avatar         string
	Role           string // user, admin
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
