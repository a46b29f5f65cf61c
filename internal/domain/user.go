package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Constantes para identificar os roles
const (
	RoleAdmin = 1
	RoleGuest = 2
)

// RoleName retorna o nome do role usado pelo frontend.
func RoleName(roleID int) string {
	switch roleID {
	case RoleAdmin:
		return "admin"
	case RoleGuest:
		return "guest"
	default:
		return "unknown"
	}
}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"roleId"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
	RoleID   int    `json:"roleId"`
}

type Claims struct {
	UserID     string
	Username   string
	UserName   string
	UserRoleID int
	jwt.RegisteredClaims
}
