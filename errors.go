package fleetbook

import "errors"

// Sentinel errors for the failure classes every operation can report.
// Commands match on them to decide what to tell the user; none of them is
// fatal and none of them leaves a store half-mutated.
var (
	// ErrBadFormat reports an import document whose container shape is not
	// the expected one. The store is left unchanged.
	ErrBadFormat = errors.New("unrecognized document format")

	// ErrNotFound reports an id that matches no record in its collection.
	ErrNotFound = errors.New("record not found")

	// ErrNotAuthenticated reports an operation attempted without a session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrPermissionDenied reports a session whose role lacks the required
	// permission.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidCredentials reports a failed login. It deliberately does not
	// say whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrDuplicateUsername reports an attempt to create a user with a
	// username already taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrSelfDelete reports an attempt to delete the user owning the
	// current session.
	ErrSelfDelete = errors.New("cannot delete your own account")
)
