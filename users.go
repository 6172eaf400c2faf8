package fleetbook

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Users is the user store. Mutating operations receive the caller's
// session explicitly and check the "users" permission themselves, so the
// authorization dependency is visible at every call site.
type Users struct {
	users []User
}

// NewUsers creates an empty user store.
func NewUsers() *Users {
	return &Users{users: make([]User, 0)}
}

// DefaultUsers returns the store seeded with the office's stock accounts.
// It is used the first time the tool runs against an empty data directory.
func DefaultUsers() *Users {
	u := NewUsers()
	seed := []struct {
		username, password string
		role               Role
	}{
		{"admin", "admin123", RoleAdmin},
		{"amministratrice", "ufficio123", RoleOfficeAdmin},
		{"operatore", "oper123", RoleOperator},
		{"contabile", "cont123", RoleAccountant},
	}
	for i, s := range seed {
		user := User{ID: fmt.Sprintf("u_%d", i+1), Username: s.username, Role: s.role, Active: true}
		// bcrypt only fails on absurd cost or overlong password, neither possible here.
		_ = user.SetPassword(s.password)
		u.users = append(u.users, user)
	}
	return u
}

// Get returns the user with this id, or nil if unknown.
func (u *Users) Get(id string) *User {
	for i := range u.users {
		if u.users[i].ID == id {
			return &u.users[i]
		}
	}
	return nil
}

// FindByUsername returns the user with this username, or nil if unknown.
func (u *Users) FindByUsername(username string) *User {
	for i := range u.users {
		if u.users[i].Username == username {
			return &u.users[i]
		}
	}
	return nil
}

// All returns an iterator over the users in insertion order.
func (u *Users) All() iter.Seq[User] {
	return func(yield func(User) bool) {
		for _, user := range u.users {
			if !yield(user) {
				return
			}
		}
	}
}

// Len returns the number of users in the store.
func (u *Users) Len() int { return len(u.users) }

// Authenticate checks the credentials against the store and, on success,
// returns a fresh session. Inactive users cannot log in.
func (u *Users) Authenticate(username, password string) (*Session, error) {
	user := u.FindByUsername(username)
	if user == nil || !user.Active || !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return &Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		LoginTime: time.Now(),
	}, nil
}

// Add creates a new user. Requires the "users" permission and a username
// not already taken.
func (u *Users) Add(s *Session, username, password string, role Role) (User, error) {
	if err := Require(s, PermUsers); err != nil {
		return User{}, err
	}
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, fmt.Errorf("username and password are required")
	}
	if u.FindByUsername(username) != nil {
		return User{}, fmt.Errorf("%q: %w", username, ErrDuplicateUsername)
	}
	user := User{ID: mintID("u", u.ids()), Username: username, Role: role, Active: true}
	if err := user.SetPassword(password); err != nil {
		return User{}, err
	}
	u.users = append(u.users, user)
	return user, nil
}

// UserUpdate carries the fields Update may change. Nil fields are left
// untouched.
type UserUpdate struct {
	Username *string
	Password *string
	Role     *Role
	Active   *bool
}

// Update applies the non-nil fields of upd to the user with this id.
// Requires the "users" permission. A new password is hashed before it is
// stored.
func (u *Users) Update(s *Session, id string, upd UserUpdate) (User, error) {
	if err := Require(s, PermUsers); err != nil {
		return User{}, err
	}
	user := u.Get(id)
	if user == nil {
		return User{}, fmt.Errorf("user %q: %w", id, ErrNotFound)
	}
	if upd.Username != nil {
		name := strings.TrimSpace(*upd.Username)
		if name == "" {
			return User{}, fmt.Errorf("username is required")
		}
		if other := u.FindByUsername(name); other != nil && other.ID != id {
			return User{}, fmt.Errorf("%q: %w", name, ErrDuplicateUsername)
		}
		user.Username = name
	}
	if upd.Password != nil {
		if err := user.SetPassword(*upd.Password); err != nil {
			return User{}, err
		}
	}
	if upd.Role != nil {
		user.Role = *upd.Role
	}
	if upd.Active != nil {
		user.Active = *upd.Active
	}
	return *user, nil
}

// Delete removes the user with this id. Requires the "users" permission,
// and deleting the session's own user is rejected with the store left
// unchanged.
func (u *Users) Delete(s *Session, id string) error {
	if err := Require(s, PermUsers); err != nil {
		return err
	}
	if s.UserID == id {
		return ErrSelfDelete
	}
	for i := range u.users {
		if u.users[i].ID == id {
			u.users = append(u.users[:i], u.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("user %q: %w", id, ErrNotFound)
}

// ids returns the set of all user ids.
func (u *Users) ids() map[string]bool {
	set := make(map[string]bool, len(u.users))
	for _, user := range u.users {
		set[user.ID] = true
	}
	return set
}
