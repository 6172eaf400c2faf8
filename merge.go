package fleetbook

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// This file implements the reconciliation engine: parsing of untrusted
// import documents, per-record normalization of the legacy field naming
// convention, and the replace/merge policies with id re-keying.
//
// Reconciliation never fails half-way: all shape validation happens in the
// Parse*Document functions, before any store is touched.

// mintID generates a fresh id of the form "<prefix>_<unix-ms>_<random>",
// retrying until it collides with nothing in taken. The fresh id is added
// to taken so ids minted in the same operation stay unique.
func mintID(prefix string, taken map[string]bool) string {
	for {
		id := fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixMilli(), rand.IntN(1000))
		if !taken[id] {
			taken[id] = true
			return id
		}
	}
}

// rawVehicle tolerates both the canonical and the legacy export fields.
type rawVehicle struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Nome  string `json:"nome"`
	Plate string `json:"plate"`
	Targa string `json:"targa"`
}

// normalize maps a raw vehicle to the canonical shape, minting an id when
// none was carried. A vehicle without a name gets the legacy placeholder.
func (rv rawVehicle) normalize(mint func() string) Vehicle {
	v := Vehicle{
		ID:    rv.ID,
		Name:  firstOf(rv.Name, rv.Nome, "Veicolo"),
		Plate: firstOf(rv.Plate, rv.Targa),
	}
	if v.ID == "" {
		v.ID = mint()
	}
	return v
}

// rawVehicleRef is the embedded vehicle object some exports carry instead
// of a bare foreign key.
type rawVehicleRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Plate string `json:"plate"`
}

// rawIncome tolerates both the canonical and the legacy export fields,
// including the auxiliary hint fields used for foreign-key recovery.
type rawIncome struct {
	ID        string          `json:"id"`
	VehicleID string          `json:"vehicleId"`
	VeicoloID string          `json:"veicoloId"`
	Vehicle   *rawVehicleRef  `json:"vehicle"`
	Date      string          `json:"date"`
	Data      string          `json:"data"`
	Amount    json.RawMessage `json:"amount"`
	Importo   json.RawMessage `json:"importo"`
	Note      string          `json:"note"`
	Nota      string          `json:"nota"`
	HintName  string          `json:"_vehicleName"`
	HintPlate string          `json:"_vehiclePlate"`
}

// vehicleHint carries the name and plate an income knew its vehicle by, so
// the merge can recover a foreign key broken by re-keying.
type vehicleHint struct {
	name  string
	plate string
}

func (ri rawIncome) normalize(mint func() string) (Income, vehicleHint) {
	in := Income{
		ID:        ri.ID,
		VehicleID: ri.VehicleID,
		Date:      firstOf(ri.Date, ri.Data),
		Amount:    coerceAmount(ri.Amount, ri.Importo),
		Note:      firstOf(ri.Note, ri.Nota),
	}
	if in.VehicleID == "" {
		in.VehicleID = ri.VeicoloID
	}
	if in.VehicleID == "" && ri.Vehicle != nil {
		in.VehicleID = ri.Vehicle.ID
	}
	if in.ID == "" {
		in.ID = mint()
	}
	hint := vehicleHint{name: ri.HintName, plate: ri.HintPlate}
	if ri.Vehicle != nil {
		hint.name = firstOf(ri.Vehicle.Name, hint.name)
		hint.plate = firstOf(ri.Vehicle.Plate, hint.plate)
	}
	return in, hint
}

// rawFine tolerates both the canonical and the legacy export fields.
type rawFine struct {
	ID            string          `json:"id"`
	Cf            string          `json:"cf"`
	CodiceFiscale string          `json:"codiceFiscale"`
	Vehicle       string          `json:"vehicle"`
	Veicolo       string          `json:"veicolo"`
	Date          string          `json:"date"`
	Data          string          `json:"data"`
	Amount        json.RawMessage `json:"amount"`
	Importo       json.RawMessage `json:"importo"`
	Note          string          `json:"note"`
	Nota          string          `json:"nota"`
	Paid          json.RawMessage `json:"paid"`
	Pagato        json.RawMessage `json:"pagato"`
}

// normalize maps a raw fine to the canonical shape. The fiscal code is
// upper-cased but deliberately not validated: the 16-character rule only
// applies to the entry form.
func (rf rawFine) normalize(mint func() string) Fine {
	fine := Fine{
		ID:      rf.ID,
		Cf:      strings.ToUpper(firstOf(rf.Cf, rf.CodiceFiscale)),
		Vehicle: firstOf(rf.Vehicle, rf.Veicolo),
		Date:    firstOf(rf.Date, rf.Data),
		Amount:  coerceAmount(rf.Amount, rf.Importo),
		Note:    firstOf(rf.Note, rf.Nota),
		Paid:    coerceBool(rf.Paid) || coerceBool(rf.Pagato),
	}
	if fine.ID == "" {
		fine.ID = mint()
	}
	return fine
}

// firstOf returns the first non-empty string.
func firstOf(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}

// coerceAmount turns the first present candidate into a decimal. A missing
// or unparseable amount coerces to zero, like the legacy tool did.
func coerceAmount(raws ...json.RawMessage) decimal.Decimal {
	for _, raw := range raws {
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}
		var d decimal.Decimal
		if err := d.UnmarshalJSON(raw); err == nil {
			return d
		}
		return decimal.Zero
	}
	return decimal.Zero
}

// coerceBool turns a loosely-typed flag into a strict boolean: JSON
// booleans as-is, numbers by zero test, strings via ParseBool, anything
// else false.
func coerceBool(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		b, err := strconv.ParseBool(t)
		return err == nil && b
	default:
		return false
	}
}

// BookDocument is a parsed, not yet reconciled, income-book import.
type BookDocument struct {
	vehicles []rawVehicle
	incomes  []rawIncome
}

// ParseBookDocument parses an import document for the income book. The
// document must be a JSON object carrying both the vehicles and the
// incomes arrays (canonical or legacy names); anything else is rejected
// with ErrBadFormat before any store is touched.
func ParseBookDocument(data []byte) (*BookDocument, error) {
	var raw struct {
		Vehicles json.RawMessage `json:"vehicles"`
		Veicoli  json.RawMessage `json:"veicoli"`
		Incomes  json.RawMessage `json:"incomes"`
		Incassi  json.RawMessage `json:"incassi"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	doc := &BookDocument{}
	vehicles := firstRaw(raw.Vehicles, raw.Veicoli)
	incomes := firstRaw(raw.Incomes, raw.Incassi)
	if vehicles == nil || incomes == nil {
		return nil, fmt.Errorf(`%w: document must contain the "vehicles" and "incomes" arrays`, ErrBadFormat)
	}
	if err := json.Unmarshal(vehicles, &doc.vehicles); err != nil {
		return nil, fmt.Errorf(`%w: "vehicles" is not an array of vehicles: %v`, ErrBadFormat, err)
	}
	if err := json.Unmarshal(incomes, &doc.incomes); err != nil {
		return nil, fmt.Errorf(`%w: "incomes" is not an array of incomes: %v`, ErrBadFormat, err)
	}
	return doc, nil
}

// Counts returns the number of vehicles and incomes carried by the document.
func (doc *BookDocument) Counts() (vehicles, incomes int) {
	return len(doc.vehicles), len(doc.incomes)
}

func firstRaw(raws ...json.RawMessage) json.RawMessage {
	for _, raw := range raws {
		if len(raw) != 0 && string(raw) != "null" {
			return raw
		}
	}
	return nil
}

// Import reconciles a parsed document into the book under the given
// policy.
//
// Under Replace the current collections are discarded for the normalized
// import. Under Merge the import is appended; any id colliding with an
// existing or just-minted id is re-keyed with a fresh one, and an income
// whose vehicle reference matches nothing in the union of existing and
// imported vehicles is re-pointed, best effort, at an imported vehicle
// with the same name and plate as carried in the hint fields. When that
// heuristic finds nothing the dangling reference is kept as-is: re-keying
// is inherently ambiguous and guessing further would silently corrupt the
// books.
func (b *Book) Import(doc *BookDocument, policy MergePolicy) {
	if policy == Replace {
		taken := make(map[string]bool)
		vehicles := make([]Vehicle, 0, len(doc.vehicles))
		for _, rv := range doc.vehicles {
			vehicles = append(vehicles, rv.normalize(func() string { return mintID("v", taken) }))
		}
		incomes := make([]Income, 0, len(doc.incomes))
		for _, ri := range doc.incomes {
			in, _ := ri.normalize(func() string { return mintID("i", taken) })
			incomes = append(incomes, in)
		}
		b.vehicles = vehicles
		b.incomes = incomes
		return
	}

	// Merge. One collision set covers vehicles and incomes together, and
	// every id (imported or minted) joins it immediately.
	taken := b.ids()
	var newVehicles []Vehicle
	for _, rv := range doc.vehicles {
		v := rv.normalize(func() string { return mintID("v", taken) })
		if taken[v.ID] {
			v.ID = mintID("v", taken)
		}
		taken[v.ID] = true
		newVehicles = append(newVehicles, v)
	}

	findImported := func(id string) *Vehicle {
		for i := range newVehicles {
			if newVehicles[i].ID == id {
				return &newVehicles[i]
			}
		}
		return nil
	}

	var newIncomes []Income
	for _, ri := range doc.incomes {
		in, hint := ri.normalize(func() string { return mintID("i", taken) })
		if taken[in.ID] {
			in.ID = mintID("i", taken)
		}
		taken[in.ID] = true
		if b.Vehicle(in.VehicleID) == nil && findImported(in.VehicleID) == nil {
			// Broken reference: try to recover it through the name+plate
			// hints against the vehicles imported in this same operation.
			for i := range newVehicles {
				if newVehicles[i].Name == hint.name && newVehicles[i].Plate == hint.plate {
					in.VehicleID = newVehicles[i].ID
					break
				}
			}
		}
		newIncomes = append(newIncomes, in)
	}

	b.vehicles = append(b.vehicles, newVehicles...)
	b.incomes = append(b.incomes, newIncomes...)
}

// FinesDocument is a parsed, not yet reconciled, fine-register import.
type FinesDocument struct {
	fines []rawFine
}

// ParseFinesDocument parses an import document for the fine register. The
// document must be a bare JSON array of fines.
func ParseFinesDocument(data []byte) (*FinesDocument, error) {
	doc := &FinesDocument{}
	if err := json.Unmarshal(data, &doc.fines); err != nil {
		return nil, fmt.Errorf("%w: expected an array of fines: %v", ErrBadFormat, err)
	}
	return doc, nil
}

// Count returns the number of fines carried by the document.
func (doc *FinesDocument) Count() int { return len(doc.fines) }

// Import reconciles a parsed document into the register under the given
// policy, re-keying id collisions under Merge.
func (f *Fines) Import(doc *FinesDocument, policy MergePolicy) {
	if policy == Replace {
		taken := make(map[string]bool)
		fines := make([]Fine, 0, len(doc.fines))
		for _, rf := range doc.fines {
			fines = append(fines, rf.normalize(func() string { return mintID("f", taken) }))
		}
		f.fines = fines
		return
	}

	taken := f.ids()
	for _, rf := range doc.fines {
		fine := rf.normalize(func() string { return mintID("f", taken) })
		if taken[fine.ID] {
			fine.ID = mintID("f", taken)
		}
		taken[fine.ID] = true
		f.fines = append(f.fines, fine)
	}
}
