package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/altinukshini/fieldops/internal/model"
)

func TestStoreKeepsOrderAndCopies(t *testing.T) {
	in := []model.Client{
		{ID: 3, Name: "C"},
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	}
	s := New(in)
	in[0].Name = "mutated"

	got := s.All()
	want := []model.Client{{ID: 3, Name: "C"}, {ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}

	got[0].Name = "also mutated"
	if again := s.All(); again[0].Name != "C" {
		t.Errorf("All() must return a copy, store now has %q", again[0].Name)
	}
}

func TestStoreLookup(t *testing.T) {
	s := New([]model.Job{{ID: 7, Title: "Fix"}})

	if j, ok := s.Lookup(7); !ok || j.Title != "Fix" {
		t.Errorf("Lookup(7) = %+v, %v", j, ok)
	}
	if _, ok := s.Lookup(8); ok {
		t.Error("Lookup(8) should not find anything")
	}
}

const yamlData = `
clients:
  - id: 1
    name: John Smith
    email: john.smith@email.com
    total_spent: "$2,450"
    status: active
quotes:
  - id: 1
    number: Q-1
    amount: "$450.00"
    status: pending
locations:
  - id: 4
    name: Depot
    status: scheduled
    latitude: 40.5
    longitude: -73.9
`

const jsoncData = `{
  // same data as the YAML fixture
  "clients": [
    {"id": 1, "name": "John Smith", "email": "john.smith@email.com", "total_spent": "$2,450", "status": "active"},
  ],
  "quotes": [
    {"id": 1, "number": "Q-1", "amount": "$450.00", "status": "pending"},
  ],
  "locations": [
    {"id": 4, "name": "Depot", "status": "scheduled", "latitude": 40.5, "longitude": -73.9}, /* trailing comma */
  ],
}`

func TestLoadDatasetFormats(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "data.yaml")
	jsoncPath := filepath.Join(dir, "data.jsonc")
	if err := os.WriteFile(yamlPath, []byte(yamlData), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(jsoncPath, []byte(jsoncData), 0o644); err != nil {
		t.Fatal(err)
	}

	fromYAML, err := LoadDataset(yamlPath)
	if err != nil {
		t.Fatalf("LoadDataset(yaml): %v", err)
	}
	fromJSONC, err := LoadDataset(jsoncPath)
	if err != nil {
		t.Fatalf("LoadDataset(jsonc): %v", err)
	}

	if diff := cmp.Diff(fromYAML, fromJSONC); diff != "" {
		t.Errorf("yaml and jsonc datasets differ (-yaml +jsonc):\n%s", diff)
	}
	if fromYAML.Clients[0].Status != model.ClientActive {
		t.Errorf("client status = %q", fromYAML.Clients[0].Status)
	}
	if fromYAML.Locations[0].Latitude != 40.5 {
		t.Errorf("latitude = %v", fromYAML.Locations[0].Latitude)
	}
}

func TestParseDatasetRejectsDuplicateIDs(t *testing.T) {
	data := []byte(`{"jobs": [{"id": 1}, {"id": 1}]}`)
	_, err := ParseDataset(data, ".json")
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("err = %v, want ErrDuplicateID", err)
	}
}

func TestParseDatasetUnknownExtension(t *testing.T) {
	if _, err := ParseDataset([]byte("x"), ".toml"); err == nil {
		t.Fatal("expected error for .toml")
	}
}

func TestLoadDatasetMissingFile(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
}
