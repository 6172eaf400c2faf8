package fleetbook

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Fines is the fine register. It is a store of its own, independent from
// the income book, persisted as a bare JSON array.
type Fines struct {
	fines []Fine
}

// NewFines creates an empty fine register.
func NewFines() *Fines {
	return &Fines{fines: make([]Fine, 0)}
}

// Get returns the fine with this id, or nil if unknown.
func (f *Fines) Get(id string) *Fine {
	for i := range f.fines {
		if f.fines[i].ID == id {
			return &f.fines[i]
		}
	}
	return nil
}

// Add appends a new fine with a fresh id. The fiscal code is validated and
// upper-cased; everything else is taken as given.
func (f *Fines) Add(cf, vehicle, date string, amount decimal.Decimal, note string, paid bool) (Fine, error) {
	if err := ValidateFiscalCode(cf); err != nil {
		return Fine{}, err
	}
	fine := Fine{
		ID:      mintID("f", f.ids()),
		Cf:      strings.ToUpper(strings.TrimSpace(cf)),
		Vehicle: strings.TrimSpace(vehicle),
		Date:    date,
		Amount:  amount,
		Note:    strings.TrimSpace(note),
		Paid:    paid,
	}
	f.fines = append(f.fines, fine)
	return fine, nil
}

// Update replaces the mutable fields of the fine with this id.
func (f *Fines) Update(id, cf, vehicle, date string, amount decimal.Decimal, note string, paid bool) error {
	fine := f.Get(id)
	if fine == nil {
		return fmt.Errorf("fine %q: %w", id, ErrNotFound)
	}
	if err := ValidateFiscalCode(cf); err != nil {
		return err
	}
	fine.Cf = strings.ToUpper(strings.TrimSpace(cf))
	fine.Vehicle = strings.TrimSpace(vehicle)
	fine.Date = date
	fine.Amount = amount
	fine.Note = strings.TrimSpace(note)
	fine.Paid = paid
	return nil
}

// Delete removes the fine with this id.
func (f *Fines) Delete(id string) error {
	for i := range f.fines {
		if f.fines[i].ID == id {
			f.fines = slices.Delete(f.fines, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("fine %q: %w", id, ErrNotFound)
}

// TogglePaid flips the paid flag of the fine with this id and returns the
// new value.
func (f *Fines) TogglePaid(id string) (bool, error) {
	fine := f.Get(id)
	if fine == nil {
		return false, fmt.Errorf("fine %q: %w", id, ErrNotFound)
	}
	fine.Paid = !fine.Paid
	return fine.Paid, nil
}

// List returns the fines whose fiscal code contains the filter substring
// (case-insensitive; empty filter passes everything), sorted by date
// descending like the register page shows them.
func (f *Fines) List(cfFilter string) []Fine {
	filter := strings.ToLower(strings.TrimSpace(cfFilter))
	out := make([]Fine, 0, len(f.fines))
	for _, fine := range f.fines {
		if filter == "" || strings.Contains(strings.ToLower(fine.Cf), filter) {
			out = append(out, fine)
		}
	}
	slices.SortStableFunc(out, func(a, b Fine) int {
		return strings.Compare(b.Date, a.Date)
	})
	return out
}

// Len returns the number of fines in the register.
func (f *Fines) Len() int { return len(f.fines) }

// Totals returns the paid, unpaid and overall amount totals of the whole
// register.
func (f *Fines) Totals() (paid, unpaid, all decimal.Decimal) {
	for _, fine := range f.fines {
		all = all.Add(fine.Amount)
		if fine.Paid {
			paid = paid.Add(fine.Amount)
		} else {
			unpaid = unpaid.Add(fine.Amount)
		}
	}
	return paid, unpaid, all
}

// ids returns the set of all fine ids.
func (f *Fines) ids() map[string]bool {
	set := make(map[string]bool, len(f.fines))
	for _, fine := range f.fines {
		set[fine.ID] = true
	}
	return set
}
