package fleetbook

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// bookDoc is the persisted shape of the income book.
type bookDoc struct {
	Vehicles []Vehicle `json:"vehicles"`
	Incomes  []Income  `json:"incomes"`
}

// DecodeBook decodes an income book from its persisted JSON document.
func DecodeBook(r io.Reader) (*Book, error) {
	var doc bookDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode income book: %w", err)
	}
	b := NewBook()
	b.vehicles = doc.Vehicles
	b.incomes = doc.Incomes
	return b, nil
}

// EncodeBook encodes the income book as an indented JSON document, the
// same shape Export produces.
func EncodeBook(w io.Writer, b *Book) error {
	doc := bookDoc{Vehicles: b.vehicles, Incomes: b.incomes}
	if doc.Vehicles == nil {
		doc.Vehicles = []Vehicle{}
	}
	if doc.Incomes == nil {
		doc.Incomes = []Income{}
	}
	return encodeIndent(w, doc)
}

// DecodeFines decodes a fine register from its persisted JSON array.
func DecodeFines(r io.Reader) (*Fines, error) {
	f := NewFines()
	if err := json.NewDecoder(r).Decode(&f.fines); err != nil {
		return nil, fmt.Errorf("could not decode fine register: %w", err)
	}
	return f, nil
}

// EncodeFines encodes the fine register as an indented JSON array.
func EncodeFines(w io.Writer, f *Fines) error {
	fines := f.fines
	if fines == nil {
		fines = []Fine{}
	}
	return encodeIndent(w, fines)
}

// DecodeUsers decodes the user roster from its persisted JSON array.
func DecodeUsers(r io.Reader) (*Users, error) {
	u := NewUsers()
	if err := json.NewDecoder(r).Decode(&u.users); err != nil {
		return nil, fmt.Errorf("could not decode users: %w", err)
	}
	return u, nil
}

// EncodeUsers encodes the user roster as an indented JSON array.
func EncodeUsers(w io.Writer, u *Users) error {
	users := u.users
	if users == nil {
		users = []User{}
	}
	return encodeIndent(w, users)
}

// DecodeSession decodes the active session document.
func DecodeSession(r io.Reader) (*Session, error) {
	var s Session
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("could not decode session: %w", err)
	}
	return &s, nil
}

// EncodeSession encodes the active session document.
func EncodeSession(w io.Writer, s *Session) error {
	return encodeIndent(w, s)
}

// DecodePrefs decodes the preferences document.
func DecodePrefs(r io.Reader) (*Prefs, error) {
	var p Prefs
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("could not decode preferences: %w", err)
	}
	return &p, nil
}

// EncodePrefs encodes the preferences document.
func EncodePrefs(w io.Writer, p *Prefs) error {
	return encodeIndent(w, p)
}

func encodeIndent(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ExportName returns a timestamped file name for an export or backup of
// the given store key, e.g. "fines-2025-01-05T10-30-00Z.json". Characters
// that are awkward in file names and URLs are replaced.
func ExportName(key string, t time.Time) string {
	ts := t.UTC().Format(time.RFC3339)
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	return fmt.Sprintf("%s-%s.json", key, ts)
}
