package model

import "testing"

func TestFieldLookup(t *testing.T) {
	ds := SeedDataset()

	tests := []struct {
		name   string
		rec    Record
		field  string
		want   string
		wantOK bool
	}{
		{name: "client status", rec: ds.Clients[2], field: "status", want: "inactive", wantOK: true},
		{name: "client int field", rec: ds.Clients[0], field: "totalJobs", want: "12", wantOK: true},
		{name: "job priority", rec: ds.Jobs[0], field: "priority", want: "high", wantOK: true},
		{name: "quote amount", rec: ds.Quotes[1], field: "amount", want: "$780.00", wantOK: true},
		{name: "service rating", rec: ds.Services[0], field: "rating", want: "4.8", wantOK: true},
		{name: "location latitude", rec: ds.Locations[0], field: "latitude", want: "40.7128", wantOK: true},
		{name: "unknown field", rec: ds.Clients[0], field: "nope", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.rec.Field(tt.field)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Field(%q) = %q, %v; want %q, %v", tt.field, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSeedIDsUniquePerKind(t *testing.T) {
	ds := SeedDataset()
	check := func(kind Kind, ids []int64) {
		seen := make(map[int64]bool)
		for _, id := range ids {
			if seen[id] {
				t.Errorf("%s: duplicate id %d", kind, id)
			}
			seen[id] = true
		}
	}

	var ids []int64
	for _, c := range ds.Clients {
		ids = append(ids, c.ID)
	}
	check(KindClient, ids)

	ids = ids[:0]
	for _, l := range ds.Locations {
		ids = append(ids, l.ID)
	}
	check(KindLocation, ids)

	for _, k := range Kinds {
		if ds.Len(k) != 5 {
			t.Errorf("seed %s count = %d, want 5", k, ds.Len(k))
		}
	}
}

func TestLocationCoordinatesUnmodified(t *testing.T) {
	loc := Location{ID: 9, Latitude: 51.5, Longitude: -0.12}
	var located Located = loc
	lat, lng := located.Coordinates()
	if lat != 51.5 || lng != -0.12 {
		t.Errorf("Coordinates() = %v, %v", lat, lng)
	}
}
