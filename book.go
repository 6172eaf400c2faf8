package fleetbook

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Book is the income book: the vehicles of the fleet and their cash income
// records. It owns its collections; persistence is explicit through
// LoadBook/SaveBook, never a hidden side effect of a mutation.
type Book struct {
	vehicles []Vehicle
	incomes  []Income
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{
		vehicles: make([]Vehicle, 0),
		incomes:  make([]Income, 0),
	}
}

// Vehicle returns the vehicle with this id, or nil if unknown.
func (b *Book) Vehicle(id string) *Vehicle {
	for i := range b.vehicles {
		if b.vehicles[i].ID == id {
			return &b.vehicles[i]
		}
	}
	return nil
}

// VehicleLabel returns the display label of the vehicle referenced by id,
// or "-" for a dangling reference.
func (b *Book) VehicleLabel(id string) string {
	if v := b.Vehicle(id); v != nil {
		return v.Label()
	}
	return "-"
}

// AddVehicle appends a new vehicle with a fresh id. The name is required,
// the plate is not.
func (b *Book) AddVehicle(name, plate string) (Vehicle, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Vehicle{}, fmt.Errorf("vehicle name is required")
	}
	v := Vehicle{ID: b.mint("v"), Name: name, Plate: strings.TrimSpace(plate)}
	b.vehicles = append(b.vehicles, v)
	return v, nil
}

// AddIncome appends a new income record with a fresh id. The vehicle must
// exist: the entry form only offers known vehicles, so an unknown id here
// is a caller mistake (imports are more tolerant, see Import).
func (b *Book) AddIncome(vehicleID, date string, amount decimal.Decimal, note string) (Income, error) {
	if b.Vehicle(vehicleID) == nil {
		return Income{}, fmt.Errorf("unknown vehicle %q: %w", vehicleID, ErrNotFound)
	}
	in := Income{ID: b.mint("i"), VehicleID: vehicleID, Date: date, Amount: amount, Note: strings.TrimSpace(note)}
	b.incomes = append(b.incomes, in)
	return in, nil
}

// UpdateIncome replaces the mutable fields of the income with this id.
func (b *Book) UpdateIncome(id, vehicleID, date string, amount decimal.Decimal, note string) error {
	for i := range b.incomes {
		if b.incomes[i].ID == id {
			if b.Vehicle(vehicleID) == nil {
				return fmt.Errorf("unknown vehicle %q: %w", vehicleID, ErrNotFound)
			}
			b.incomes[i].VehicleID = vehicleID
			b.incomes[i].Date = date
			b.incomes[i].Amount = amount
			b.incomes[i].Note = strings.TrimSpace(note)
			return nil
		}
	}
	return fmt.Errorf("income %q: %w", id, ErrNotFound)
}

// DeleteIncome removes the income with this id.
func (b *Book) DeleteIncome(id string) error {
	for i := range b.incomes {
		if b.incomes[i].ID == id {
			b.incomes = slices.Delete(b.incomes, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("income %q: %w", id, ErrNotFound)
}

// Vehicles returns an iterator over the vehicles in insertion order.
func (b *Book) Vehicles() iter.Seq[Vehicle] {
	return func(yield func(Vehicle) bool) {
		for _, v := range b.vehicles {
			if !yield(v) {
				return
			}
		}
	}
}

// Incomes returns the incomes belonging to the given month, in insertion
// order. The zero Month selects everything (identity).
func (b *Book) Incomes(month Month) []Income {
	out := make([]Income, 0, len(b.incomes))
	for _, in := range b.incomes {
		if month.Matches(in.Date) {
			out = append(out, in)
		}
	}
	return out
}

// VehicleIncomes returns the month-filtered incomes of one vehicle, sorted
// by date ascending (empty dates first).
func (b *Book) VehicleIncomes(vehicleID string, month Month) []Income {
	var out []Income
	for _, in := range b.Incomes(month) {
		if in.VehicleID == vehicleID {
			out = append(out, in)
		}
	}
	slices.SortStableFunc(out, func(a, b Income) int {
		return strings.Compare(a.Date, b.Date)
	})
	return out
}

// Counts returns the number of vehicles and incomes in the book.
func (b *Book) Counts() (vehicles, incomes int) {
	return len(b.vehicles), len(b.incomes)
}

// Summary aggregates the month-filtered incomes per vehicle. Vehicles keep
// their insertion order; every vehicle appears, even with a zero total.
type Summary struct {
	Month      Month
	Vehicles   []VehicleTotal
	GrandTotal decimal.Decimal
}

// VehicleTotal is the income total of one vehicle.
type VehicleTotal struct {
	Vehicle Vehicle
	Total   decimal.Decimal
}

// NewSummary computes the per-vehicle income summary for a month.
func (b *Book) NewSummary(month Month) *Summary {
	s := &Summary{Month: month}
	filtered := b.Incomes(month)
	for _, v := range b.vehicles {
		total := decimal.Zero
		for _, in := range filtered {
			if in.VehicleID == v.ID {
				total = total.Add(in.Amount)
			}
		}
		s.Vehicles = append(s.Vehicles, VehicleTotal{Vehicle: v, Total: total})
		s.GrandTotal = s.GrandTotal.Add(total)
	}
	return s
}

// Breakdown aggregates the month-filtered incomes per note-derived
// category. Categories with no income are omitted.
type Breakdown struct {
	Month      Month
	Categories []CategoryTotal
	Total      decimal.Decimal
}

// CategoryTotal is the income total of one category.
type CategoryTotal struct {
	Category Category
	Total    decimal.Decimal
}

// NewBreakdown computes the per-category income breakdown for a month.
func (b *Book) NewBreakdown(month Month) *Breakdown {
	totals := make(map[Category]decimal.Decimal)
	r := &Breakdown{Month: month}
	for _, in := range b.Incomes(month) {
		c := Classify(in.Note)
		totals[c] = totals[c].Add(in.Amount)
		r.Total = r.Total.Add(in.Amount)
	}
	for _, c := range Categories() {
		if t, ok := totals[c]; ok {
			r.Categories = append(r.Categories, CategoryTotal{Category: c, Total: t})
		}
	}
	return r
}

// ids returns the set of all ids in the book. Vehicles and incomes share
// one id space for collision purposes, like the legacy store did.
func (b *Book) ids() map[string]bool {
	set := make(map[string]bool, len(b.vehicles)+len(b.incomes))
	for _, v := range b.vehicles {
		set[v.ID] = true
	}
	for _, in := range b.incomes {
		set[in.ID] = true
	}
	return set
}

// mint generates a fresh id that collides with nothing in the book.
func (b *Book) mint(prefix string) string {
	return mintID(prefix, b.ids())
}
