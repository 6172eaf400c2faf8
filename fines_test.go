package fleetbook

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateFiscalCode(t *testing.T) {
	testCases := []struct {
		cf      string
		wantErr bool
	}{
		{"RSSMRA80A01H501U", false},
		{"rssmra80a01h501u", false},
		{" RSSMRA80A01H501U ", false},
		{"ABC123", true},
		{"", true},
		{"RSSMRA80A01H501UX", true},
		{"RSSMRA80A01H501-", true},
	}
	for _, tc := range testCases {
		err := ValidateFiscalCode(tc.cf)
		if (err != nil) != tc.wantErr {
			t.Errorf("ValidateFiscalCode(%q) error = %v, wantErr %v", tc.cf, err, tc.wantErr)
		}
	}
}

func TestFines_AddUppercasesFiscalCode(t *testing.T) {
	f := NewFines()
	fine, err := f.Add("rssmra80a01h501u", "Panda", "2025-03-01", decimal.NewFromInt(120), "divieto di sosta", false)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if fine.Cf != "RSSMRA80A01H501U" {
		t.Errorf("cf = %q, want upper-cased", fine.Cf)
	}
	if fine.ID == "" {
		t.Error("Add() minted no id")
	}

	if _, err := f.Add("short", "Panda", "2025-03-01", decimal.Zero, "", false); err == nil {
		t.Error("Add with invalid fiscal code should fail")
	}
	if f.Len() != 1 {
		t.Errorf("failed Add mutated the register: %d fines", f.Len())
	}
}

func TestFines_ListFilterAndOrder(t *testing.T) {
	f := NewFines()
	f.fines = []Fine{
		{ID: "f1", Cf: "RSSMRA80A01H501U", Date: "2025-01-10"},
		{ID: "f2", Cf: "VRDLGI85B02F205X", Date: "2025-02-01"},
		{ID: "f3", Cf: "RSSMRA80A01H501U", Date: "2025-03-05"},
	}

	got := f.List("rssmra")
	if len(got) != 2 {
		t.Fatalf("List(rssmra) returned %d fines, want 2", len(got))
	}
	// Most recent first.
	if got[0].ID != "f3" || got[1].ID != "f1" {
		t.Errorf("List order = %v %v, want f3 f1", got[0].ID, got[1].ID)
	}

	if got := f.List(""); len(got) != 3 {
		t.Errorf("List(\"\") returned %d fines, want all 3", len(got))
	}
}

func TestFines_TogglePaid(t *testing.T) {
	f := NewFines()
	f.fines = []Fine{{ID: "f1", Cf: "RSSMRA80A01H501U"}}

	paid, err := f.TogglePaid("f1")
	if err != nil || !paid {
		t.Fatalf("TogglePaid() = %v, %v, want true, nil", paid, err)
	}
	paid, err = f.TogglePaid("f1")
	if err != nil || paid {
		t.Fatalf("second TogglePaid() = %v, %v, want false, nil", paid, err)
	}
	if _, err := f.TogglePaid("nope"); err == nil {
		t.Error("TogglePaid of unknown id should fail")
	}
}

func TestFines_Totals(t *testing.T) {
	f := NewFines()
	f.fines = []Fine{
		{ID: "f1", Amount: decimal.NewFromInt(100), Paid: true},
		{ID: "f2", Amount: decimal.NewFromInt(40), Paid: false},
		{ID: "f3", Amount: decimal.NewFromInt(60), Paid: false},
	}
	paid, unpaid, all := f.Totals()
	if !paid.Equal(decimal.NewFromInt(100)) || !unpaid.Equal(decimal.NewFromInt(100)) || !all.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Totals() = %s, %s, %s, want 100, 100, 200", paid, unpaid, all)
	}
}
