package entity

import "time"

// Roles de usuario del tablero.
const (
	RoleAdmin  = "admin"
	RoleLead   = "lead"
	RoleMember = "member"
)

// User cuenta autenticable del tablero.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Team         string    `json:"team"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
