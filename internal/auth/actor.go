// Package auth carries the identity context supplied by the caller.
// Authentication itself happens upstream; the core only consumes the
// resulting (user, role) pair and never reads ambient session state.
package auth

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Actor struct {
	UserID string
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Owns reports whether the actor is the booking's owning user.
func (a Actor) Owns(userID string) bool {
	return a.UserID != "" && a.UserID == userID
}
