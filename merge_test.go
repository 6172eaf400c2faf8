package fleetbook

import (
	"errors"
	"reflect"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMintID(t *testing.T) {
	re := regexp.MustCompile(`^v_\d+_\d{1,3}$`)
	taken := make(map[string]bool)
	seen := make(map[string]bool)
	for range 100 {
		id := mintID("v", taken)
		if !re.MatchString(id) {
			t.Fatalf("mintID produced %q, want <prefix>_<ms>_<n>", id)
		}
		if seen[id] {
			t.Fatalf("mintID produced duplicate %q within one taken set", id)
		}
		seen[id] = true
	}
}

func TestParseBookDocument(t *testing.T) {
	testCases := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"canonical names", `{"vehicles":[],"incomes":[]}`, false},
		{"legacy names", `{"veicoli":[],"incassi":[]}`, false},
		{"mixed names", `{"vehicles":[],"incassi":[]}`, false},
		{"missing incomes", `{"vehicles":[]}`, true},
		{"missing vehicles", `{"incomes":[]}`, true},
		{"vehicles not an array", `{"vehicles":{},"incomes":[]}`, true},
		{"top-level array", `[1,2,3]`, true},
		{"not json", `nonsense`, true},
		{"null arrays", `{"vehicles":null,"incomes":null}`, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseBookDocument([]byte(tc.data))
			if tc.wantErr && !errors.Is(err, ErrBadFormat) {
				t.Errorf("ParseBookDocument(%s) error = %v, want ErrBadFormat", tc.data, err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("ParseBookDocument(%s) error = %v, want nil", tc.data, err)
			}
		})
	}
}

func TestBookImport_LegacyFields(t *testing.T) {
	data := `{
		"veicoli":[{"id":"v1","nome":"Panda","targa":"AB123CD"}],
		"incassi":[{"id":"i1","veicoloId":"v1","data":"2025-01-05","importo":"50","nota":"Noleggio weekend"}]
	}`
	doc, err := ParseBookDocument([]byte(data))
	if err != nil {
		t.Fatalf("ParseBookDocument() error = %v", err)
	}
	b := NewBook()
	b.Import(doc, Merge)

	wantVehicles := []Vehicle{{ID: "v1", Name: "Panda", Plate: "AB123CD"}}
	if !reflect.DeepEqual(b.vehicles, wantVehicles) {
		t.Errorf("vehicles = %+v, want %+v", b.vehicles, wantVehicles)
	}
	if len(b.incomes) != 1 {
		t.Fatalf("got %d incomes, want 1", len(b.incomes))
	}
	in := b.incomes[0]
	if in.ID != "i1" || in.VehicleID != "v1" || in.Date != "2025-01-05" || in.Note != "Noleggio weekend" {
		t.Errorf("income = %+v", in)
	}
	if !in.Amount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("amount = %s, want 50", in.Amount)
	}
}

func TestBookImport_AmountCoercion(t *testing.T) {
	testCases := []struct {
		name string
		json string
		want string
	}{
		{"number", `12.5`, "12.5"},
		{"quoted number", `"12.50"`, "12.5"},
		{"integer string", `"50"`, "50"},
		{"garbage string", `"abc"`, "0"},
		{"null", `null`, "0"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := ParseBookDocument([]byte(`{"vehicles":[],"incomes":[{"id":"i1","amount":` + tc.json + `}]}`))
			if err != nil {
				t.Fatalf("ParseBookDocument() error = %v", err)
			}
			b := NewBook()
			b.Import(doc, Replace)
			want := decimal.RequireFromString(tc.want)
			if !b.incomes[0].Amount.Equal(want) {
				t.Errorf("amount = %s, want %s", b.incomes[0].Amount, want)
			}
		})
	}
}

func TestBookImport_Replace(t *testing.T) {
	b := NewBook()
	b.vehicles = []Vehicle{{ID: "v_old", Name: "Old"}}
	b.incomes = []Income{{ID: "i_old", VehicleID: "v_old", Amount: decimal.NewFromInt(10)}}

	doc, err := ParseBookDocument([]byte(`{
		"vehicles":[{"id":"v1","name":"Panda","plate":"AB123CD"}],
		"incomes":[{"id":"i1","vehicleId":"v1","date":"2025-02-01","amount":30,"note":"vendita accessori"}]
	}`))
	if err != nil {
		t.Fatalf("ParseBookDocument() error = %v", err)
	}
	b.Import(doc, Replace)

	if len(b.vehicles) != 1 || b.vehicles[0].ID != "v1" {
		t.Errorf("replace kept old vehicles: %+v", b.vehicles)
	}
	if len(b.incomes) != 1 || b.incomes[0].ID != "i1" {
		t.Errorf("replace kept old incomes: %+v", b.incomes)
	}
}

func TestBookImport_MergeRekeysCollisions(t *testing.T) {
	b := NewBook()
	b.vehicles = []Vehicle{{ID: "v1", Name: "Existing", Plate: "XX000XX"}}
	b.incomes = []Income{{ID: "i1", VehicleID: "v1", Amount: decimal.NewFromInt(10)}}

	doc, err := ParseBookDocument([]byte(`{
		"vehicles":[{"id":"v1","name":"Imported","plate":"YY111YY"}],
		"incomes":[{"id":"i1","vehicleId":"v1","amount":20}]
	}`))
	if err != nil {
		t.Fatalf("ParseBookDocument() error = %v", err)
	}
	b.Import(doc, Merge)

	if len(b.vehicles) != 2 || len(b.incomes) != 2 {
		t.Fatalf("got %d vehicles %d incomes, want 2 and 2", len(b.vehicles), len(b.incomes))
	}
	// Every id must be unique across the whole book.
	seen := make(map[string]bool)
	for _, v := range b.vehicles {
		if seen[v.ID] {
			t.Errorf("duplicate vehicle id %q after merge", v.ID)
		}
		seen[v.ID] = true
	}
	for _, in := range b.incomes {
		if seen[in.ID] {
			t.Errorf("duplicate income id %q after merge", in.ID)
		}
		seen[in.ID] = true
	}
	// The pre-existing records keep their ids.
	if b.vehicles[0].ID != "v1" || b.incomes[0].ID != "i1" {
		t.Errorf("merge re-keyed pre-existing records: %+v %+v", b.vehicles[0], b.incomes[0])
	}
	// The colliding income reference still resolves: "v1" is the existing
	// vehicle, so the imported income now reads against it.
	if b.incomes[1].VehicleID != "v1" {
		t.Errorf("imported income vehicleId = %q, want v1", b.incomes[1].VehicleID)
	}
}

func TestBookImport_SharedIDSpace(t *testing.T) {
	// A vehicle and an income may not share an id after a merge, even when
	// the collision crosses record kinds.
	b := NewBook()
	b.vehicles = []Vehicle{{ID: "x1", Name: "Existing"}}

	doc, err := ParseBookDocument([]byte(`{"vehicles":[],"incomes":[{"id":"x1","amount":5}]}`))
	if err != nil {
		t.Fatalf("ParseBookDocument() error = %v", err)
	}
	b.Import(doc, Merge)

	if b.incomes[0].ID == "x1" {
		t.Errorf("income kept id %q already held by a vehicle", b.incomes[0].ID)
	}
}

func TestBookImport_HintRemap(t *testing.T) {
	b := NewBook()
	doc, err := ParseBookDocument([]byte(`{
		"vehicles":[{"id":"v9","name":"Panda","plate":"AB123CD"}],
		"incomes":[{"id":"i9","vehicleId":"gone","amount":40,"_vehicleName":"Panda","_vehiclePlate":"AB123CD"}]
	}`))
	if err != nil {
		t.Fatalf("ParseBookDocument() error = %v", err)
	}
	b.Import(doc, Merge)

	if b.incomes[0].VehicleID != "v9" {
		t.Errorf("vehicleId = %q, want remap to v9 via name+plate hints", b.incomes[0].VehicleID)
	}
}

func TestBookImport_HintRemapThroughEmbeddedVehicle(t *testing.T) {
	b := NewBook()
	doc, err := ParseBookDocument([]byte(`{
		"vehicles":[{"id":"v9","name":"Panda","plate":"AB123CD"}],
		"incomes":[{"id":"i9","vehicle":{"id":"gone","name":"Panda","plate":"AB123CD"},"amount":40}]
	}`))
	if err != nil {
		t.Fatalf("ParseBookDocument() error = %v", err)
	}
	b.Import(doc, Merge)

	if b.incomes[0].VehicleID != "v9" {
		t.Errorf("vehicleId = %q, want remap to v9 via embedded vehicle", b.incomes[0].VehicleID)
	}
}

func TestBookImport_DanglingReferenceKept(t *testing.T) {
	b := NewBook()
	doc, err := ParseBookDocument([]byte(`{
		"vehicles":[],
		"incomes":[{"id":"i9","vehicleId":"gone","amount":40}]
	}`))
	if err != nil {
		t.Fatalf("ParseBookDocument() error = %v", err)
	}
	b.Import(doc, Merge)

	if b.incomes[0].VehicleID != "gone" {
		t.Errorf("vehicleId = %q, want dangling reference preserved", b.incomes[0].VehicleID)
	}
	if got := b.VehicleLabel("gone"); got != "-" {
		t.Errorf("VehicleLabel(gone) = %q, want -", got)
	}
}

func TestBookImport_MintsMissingIDs(t *testing.T) {
	b := NewBook()
	doc, err := ParseBookDocument([]byte(`{
		"vehicles":[{"name":"Panda"}],
		"incomes":[{"amount":5}]
	}`))
	if err != nil {
		t.Fatalf("ParseBookDocument() error = %v", err)
	}
	b.Import(doc, Merge)

	if b.vehicles[0].ID == "" || b.incomes[0].ID == "" {
		t.Errorf("import left empty ids: %+v %+v", b.vehicles[0], b.incomes[0])
	}
}

func TestBookImport_DefaultsVehicleName(t *testing.T) {
	b := NewBook()
	doc, err := ParseBookDocument([]byte(`{"vehicles":[{"id":"v1"}],"incomes":[]}`))
	if err != nil {
		t.Fatalf("ParseBookDocument() error = %v", err)
	}
	b.Import(doc, Replace)

	if b.vehicles[0].Name != "Veicolo" {
		t.Errorf("name = %q, want placeholder Veicolo", b.vehicles[0].Name)
	}
}

func TestParseFinesDocument(t *testing.T) {
	if _, err := ParseFinesDocument([]byte(`[]`)); err != nil {
		t.Errorf("ParseFinesDocument([]) error = %v", err)
	}
	if _, err := ParseFinesDocument([]byte(`{"fines":[]}`)); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFinesDocument(object) error = %v, want ErrBadFormat", err)
	}
}

func TestFinesImport_LegacyFields(t *testing.T) {
	doc, err := ParseFinesDocument([]byte(`[
		{"id":"f1","codiceFiscale":"rssmra80a01h501u","veicolo":"Panda","data":"2025-03-01","importo":"120","nota":"divieto di sosta","pagato":true}
	]`))
	if err != nil {
		t.Fatalf("ParseFinesDocument() error = %v", err)
	}
	f := NewFines()
	f.Import(doc, Merge)

	if f.Len() != 1 {
		t.Fatalf("got %d fines, want 1", f.Len())
	}
	fine := f.fines[0]
	if fine.Cf != "RSSMRA80A01H501U" {
		t.Errorf("cf = %q, want upper-cased fiscal code", fine.Cf)
	}
	if fine.Vehicle != "Panda" || fine.Date != "2025-03-01" || !fine.Paid {
		t.Errorf("fine = %+v", fine)
	}
	if !fine.Amount.Equal(decimal.NewFromInt(120)) {
		t.Errorf("amount = %s, want 120", fine.Amount)
	}
}

func TestFinesImport_Policies(t *testing.T) {
	f := NewFines()
	f.fines = []Fine{{ID: "f1", Cf: "RSSMRA80A01H501U"}}

	doc, err := ParseFinesDocument([]byte(`[{"id":"f1","cf":"VRDLGI85B02F205X"}]`))
	if err != nil {
		t.Fatalf("ParseFinesDocument() error = %v", err)
	}

	f.Import(doc, Merge)
	if f.Len() != 2 {
		t.Fatalf("merge: got %d fines, want 2", f.Len())
	}
	if f.fines[1].ID == "f1" {
		t.Errorf("merge kept colliding id %q", f.fines[1].ID)
	}

	f.Import(doc, Replace)
	if f.Len() != 1 || f.fines[0].Cf != "VRDLGI85B02F205X" {
		t.Errorf("replace: fines = %+v", f.fines)
	}
}
