package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles de operador do dashboard
const (
	RoleAdmin    = 1
	RoleOperator = 2
)

// Operator é um usuário do dashboard (sócio, gerente ou analista da rede).
type Operator struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Claims struct {
	OperatorID     int
	OperatorName   string
	OperatorEmail  string
	OperatorRoleID int
	jwt.RegisteredClaims
}
