package fleetbook

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File names of the documents persisted in the data directory. Each store
// is a single JSON document, rewritten whole on save.
const (
	BookFile    = "book.json"
	FinesFile   = "fines.json"
	UsersFile   = "users.json"
	SessionFile = "session.json"
	PrefsFile   = "prefs.json"
)

// Store keys used for export file names and backup bookkeeping.
const (
	BookKey  = "book"
	FinesKey = "fines"
)

// LoadBook loads the income book from the data directory. A missing file
// yields an empty book.
func LoadBook(dir string) (*Book, error) {
	data, err := os.ReadFile(filepath.Join(dir, BookFile))
	if errors.Is(err, fs.ErrNotExist) {
		return NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read income book: %w", err)
	}
	return DecodeBook(bytes.NewReader(data))
}

// SaveBook writes the income book back to the data directory.
func SaveBook(dir string, b *Book) error {
	return saveDocument(dir, BookFile, func(buf *bytes.Buffer) error {
		return EncodeBook(buf, b)
	})
}

// LoadFines loads the fine register from the data directory. A missing
// file yields an empty register.
func LoadFines(dir string) (*Fines, error) {
	data, err := os.ReadFile(filepath.Join(dir, FinesFile))
	if errors.Is(err, fs.ErrNotExist) {
		return NewFines(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read fine register: %w", err)
	}
	return DecodeFines(bytes.NewReader(data))
}

// SaveFines writes the fine register back to the data directory.
func SaveFines(dir string, f *Fines) error {
	return saveDocument(dir, FinesFile, func(buf *bytes.Buffer) error {
		return EncodeFines(buf, f)
	})
}

// LoadUsers loads the user roster from the data directory. A missing file
// yields the stock accounts, so a fresh office can always log in.
func LoadUsers(dir string) (*Users, error) {
	data, err := os.ReadFile(filepath.Join(dir, UsersFile))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultUsers(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read users: %w", err)
	}
	u, err := DecodeUsers(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if u.Len() == 0 {
		return DefaultUsers(), nil
	}
	return u, nil
}

// SaveUsers writes the user roster back to the data directory.
func SaveUsers(dir string, u *Users) error {
	return saveDocument(dir, UsersFile, func(buf *bytes.Buffer) error {
		return EncodeUsers(buf, u)
	})
}

// LoadSession loads the active session, or nil when nobody is logged in.
func LoadSession(dir string) (*Session, error) {
	data, err := os.ReadFile(filepath.Join(dir, SessionFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read session: %w", err)
	}
	return DecodeSession(bytes.NewReader(data))
}

// SaveSession persists the active session.
func SaveSession(dir string, s *Session) error {
	return saveDocument(dir, SessionFile, func(buf *bytes.Buffer) error {
		return EncodeSession(buf, s)
	})
}

// ClearSession removes the active session, if any.
func ClearSession(dir string) error {
	err := os.Remove(filepath.Join(dir, SessionFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// LoadPrefs loads the preferences, yielding zero preferences when the
// file is missing.
func LoadPrefs(dir string) (*Prefs, error) {
	data, err := os.ReadFile(filepath.Join(dir, PrefsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return &Prefs{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read preferences: %w", err)
	}
	return DecodePrefs(bytes.NewReader(data))
}

// SavePrefs writes the preferences back to the data directory.
func SavePrefs(dir string, p *Prefs) error {
	return saveDocument(dir, PrefsFile, func(buf *bytes.Buffer) error {
		return EncodePrefs(buf, p)
	})
}

// saveDocument encodes a document in memory first, so an encoding failure
// never truncates the file on disk.
func saveDocument(dir, name string, encode func(*bytes.Buffer) error) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return fmt.Errorf("could not encode %s: %w", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}
