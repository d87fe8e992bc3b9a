// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's permission level in the system.
type Role string

const (
	// RoleAdmin is agency staff with full access to the admin API.
	RoleAdmin Role = "admin"
	// RoleStaff is agency staff without user-management rights.
	RoleStaff Role = "staff"
	// RoleClient is a customer with portal access to their own clients.
	RoleClient Role = "client"
)

// User represents an account that can sign in: agency staff (admin API)
// or a customer (client portal). Staff accounts carry 2FA fields; portal
// accounts authenticate with password only.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize the hash
	DisplayName  string    `json:"displayName"`
	Role         Role      `json:"role"`
	TOTPSecret   *string   `json:"-"` // Nullable; set during 2FA setup
	TOTPEnabled  bool      `json:"totpEnabled"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsStaff reports whether the user belongs to the agency side.
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleStaff
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Needs2FASetup reports whether a staff user still has to complete 2FA
// enrollment. Staff must set up 2FA on their first login; portal clients
// never do.
func (u *User) Needs2FASetup() bool {
	return u.IsStaff() && !u.TOTPEnabled
}
