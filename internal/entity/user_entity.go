package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleMinister UserRole = "minister"
	UserRoleAnalyst  UserRole = "analyst"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleMinister, UserRoleAnalyst:
		return true
	}
	return false
}

type User struct {
	Id           uuid.UUID
	Username     string
	PasswordHash string
	FullName     string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
