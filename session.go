package fleetbook

import (
	"fmt"
	"time"
)

// Session is the single active authenticated identity. There is at most one
// per data directory, and it never expires: its lifecycle is login to
// logout.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	LoginTime time.Time `json:"loginTime"`
}

// HasPermission reports whether a session exists and its role's permission
// set contains p. All checks are advisory: they gate the tool's own
// surface, nothing prevents a user from editing the documents directly.
func HasPermission(s *Session, p Permission) bool {
	return s != nil && s.Role.Has(p)
}

// Require returns an error unless the session exists and carries the
// permission. Operations that need authorization receive the session
// explicitly and call Require first.
func Require(s *Session, p Permission) error {
	if s == nil {
		return ErrNotAuthenticated
	}
	if !s.Role.Has(p) {
		return fmt.Errorf("%w: role %q lacks %q", ErrPermissionDenied, s.Role, p)
	}
	return nil
}
