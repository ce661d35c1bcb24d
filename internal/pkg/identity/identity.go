package identity

import (
	"errors"

	"github.com/google/uuid"
)

// Identity is supplied by an external authentication collaborator and trusted
// as-is by this core. The service never issues tokens of its own.

type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleTutor
}

var ErrInvalidRole = errors.New("invalid role")

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

type Principal struct {
	UserID uuid.UUID
	Role   Role
}
