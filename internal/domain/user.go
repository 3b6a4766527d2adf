package domain

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User-related domain errors.
var (
	ErrUserNotFound       = &Error{Code: ENOTFOUND, Message: "User or domain not found"}
	ErrInvalidCredentials = &Error{Code: EUNAUTHORIZED, Message: "Invalid username or password"}
)

// User is a portal account. Customers log in with username + domain and
// are bound to exactly one server; admins operate across servers.
type User struct {
	ID           uuid.UUID
	ServerID     uuid.UUID // zero for admins
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
