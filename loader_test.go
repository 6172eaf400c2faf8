package fleetbook

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadBook_MissingFile(t *testing.T) {
	b, err := LoadBook(t.TempDir())
	if err != nil {
		t.Fatalf("LoadBook() error = %v", err)
	}
	if v, n := b.Counts(); v != 0 || n != 0 {
		t.Errorf("fresh book has %d vehicles %d incomes, want empty", v, n)
	}
}

func TestSaveLoadBook(t *testing.T) {
	dir := t.TempDir()
	b := testBook()
	if err := SaveBook(dir, b); err != nil {
		t.Fatalf("SaveBook() error = %v", err)
	}
	got, err := LoadBook(dir)
	if err != nil {
		t.Fatalf("LoadBook() error = %v", err)
	}
	if v, n := got.Counts(); v != 2 || n != 4 {
		t.Errorf("loaded %d vehicles %d incomes, want 2 and 4", v, n)
	}
}

func TestSaveLoadFines(t *testing.T) {
	dir := t.TempDir()
	f := NewFines()
	f.fines = []Fine{{ID: "f1", Cf: "RSSMRA80A01H501U", Amount: decimal.NewFromInt(120)}}
	if err := SaveFines(dir, f); err != nil {
		t.Fatalf("SaveFines() error = %v", err)
	}
	got, err := LoadFines(dir)
	if err != nil {
		t.Fatalf("LoadFines() error = %v", err)
	}
	if got.Len() != 1 || got.fines[0].ID != "f1" {
		t.Errorf("fines = %+v", got.fines)
	}
}

func TestLoadUsers_SeedsDefaults(t *testing.T) {
	dir := t.TempDir()
	u, err := LoadUsers(dir)
	if err != nil {
		t.Fatalf("LoadUsers() error = %v", err)
	}
	if u.Len() != 4 {
		t.Fatalf("fresh roster has %d users, want the 4 stock accounts", u.Len())
	}
	if _, err := u.Authenticate("admin", "admin123"); err != nil {
		t.Errorf("stock admin cannot log in: %v", err)
	}

	// A saved roster loads back as-is instead of being re-seeded.
	s := adminSession()
	if _, err := u.Add(s, "quinto", "pass123", RoleOperator); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := SaveUsers(dir, u); err != nil {
		t.Fatalf("SaveUsers() error = %v", err)
	}
	got, err := LoadUsers(dir)
	if err != nil {
		t.Fatalf("LoadUsers() error = %v", err)
	}
	if got.Len() != 5 || got.FindByUsername("quinto") == nil {
		t.Errorf("reloaded roster has %d users, want 5 with quinto", got.Len())
	}
}

func TestSessionLifecycle(t *testing.T) {
	dir := t.TempDir()

	s, err := LoadSession(dir)
	if err != nil || s != nil {
		t.Fatalf("LoadSession(fresh) = %v, %v, want nil, nil", s, err)
	}

	u := DefaultUsers()
	active, err := u.Authenticate("admin", "admin123")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if err := SaveSession(dir, active); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}
	got, err := LoadSession(dir)
	if err != nil {
		t.Fatalf("LoadSession() error = %v", err)
	}
	if got == nil || got.ID != active.ID || got.Role != RoleAdmin {
		t.Errorf("session = %+v, want %+v", got, active)
	}

	if err := ClearSession(dir); err != nil {
		t.Fatalf("ClearSession() error = %v", err)
	}
	if got, _ := LoadSession(dir); got != nil {
		t.Errorf("session survived ClearSession: %+v", got)
	}
	// Clearing twice is fine.
	if err := ClearSession(dir); err != nil {
		t.Errorf("second ClearSession() error = %v", err)
	}
}

func TestSaveLoadPrefs(t *testing.T) {
	dir := t.TempDir()

	p, err := LoadPrefs(dir)
	if err != nil {
		t.Fatalf("LoadPrefs() error = %v", err)
	}
	if !p.SelectedMonth().IsZero() {
		t.Errorf("fresh prefs select month %v, want none", p.SelectedMonth())
	}

	p.Month = "2025-01"
	p.RememberBackup(FinesKey, "https://blobs.example/backups/fines.json")
	if err := SavePrefs(dir, p); err != nil {
		t.Fatalf("SavePrefs() error = %v", err)
	}
	got, err := LoadPrefs(dir)
	if err != nil {
		t.Fatalf("LoadPrefs() error = %v", err)
	}
	if got.SelectedMonth() != MustParseMonth("2025-01") {
		t.Errorf("month = %v, want 2025-01", got.SelectedMonth())
	}
	if got.Backup(FinesKey) != "https://blobs.example/backups/fines.json" {
		t.Errorf("backup url = %q", got.Backup(FinesKey))
	}
	if got.Backup(BookKey) != "" {
		t.Errorf("unexpected book backup url %q", got.Backup(BookKey))
	}
}
