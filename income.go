package fleetbook

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Income is one cash income record. VehicleID should reference a Vehicle
// in the same book for display purposes, but referential integrity is not
// enforced: a dangling reference is tolerated and rendered as "-".
type Income struct {
	ID        string          `json:"id"`
	VehicleID string          `json:"vehicleId"`
	Date      string          `json:"date"` // "YYYY-MM-DD" or empty
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"`
}

// Category is the income category derived from the note text.
type Category string

const (
	CategoryRental  Category = "Noleggio"
	CategorySale    Category = "Vendita"
	CategoryService Category = "Servizio"
	CategoryFuel    Category = "Carburante"
	CategoryOther   Category = "Altro"
)

// categoryKeywords drives Classify. Order matters: the first category with
// a matching keyword wins.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryRental, []string{"nolegg"}},
	{CategorySale, []string{"vend"}},
	{CategoryService, []string{"serviz", "manutenz", "ripar"}},
	{CategoryFuel, []string{"carbur", "benz", "diesel"}},
}

// Classify derives the income category from a free-text note by
// case-insensitive substring match. An empty or unmatched note classifies
// as Altro.
func Classify(note string) Category {
	if note == "" {
		return CategoryOther
	}
	s := strings.ToLower(note)
	for _, c := range categoryKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(s, kw) {
				return c.category
			}
		}
	}
	return CategoryOther
}

// Categories returns all categories in a stable order.
func Categories() []Category {
	return []Category{CategoryRental, CategorySale, CategoryService, CategoryFuel, CategoryOther}
}
