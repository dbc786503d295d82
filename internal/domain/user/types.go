package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role mirrors the marketplace account roles carried in access tokens.
type Role string

const (
	RoleCouple Role = "couple"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCouple, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
