package fleetbook

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// User is one office user. Password holds a bcrypt hash for users created
// by this tool; documents imported from the legacy store may still carry a
// plaintext password, which CheckPassword accepts until the record is next
// updated.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Active   bool   `json:"active"`
}

// SetPassword replaces the user's password with a bcrypt hash of the given
// plaintext.
func (u *User) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword reports whether the given plaintext matches the stored
// credential. Hashed credentials are recognized by the bcrypt version
// prefix; anything else is treated as a legacy plaintext record and
// compared byte for byte.
func (u *User) CheckPassword(plaintext string) bool {
	if strings.HasPrefix(u.Password, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext)) == nil
	}
	return u.Password != "" && u.Password == plaintext
}
