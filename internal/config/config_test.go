package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/altinukshini/fieldops/internal/viewmode"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldops.yaml")
	content := `data: ./records.yaml
start_page: jobs
log_file: /tmp/fieldops.log
verbose: true
views:
  clients: list
  map: list
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataPath != "./records.yaml" || cfg.StartPage != "jobs" || !cfg.Verbose {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if m, ok := cfg.ViewMode("clients"); !ok || m != viewmode.List {
		t.Errorf("ViewMode(clients) = %s, %v", m, ok)
	}
	if _, ok := cfg.ViewMode("jobs"); ok {
		t.Error("ViewMode(jobs) should be unset")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"overview start page", Config{StartPage: "overview"}, false},
		{"unknown start page", Config{StartPage: "calendar"}, true},
		{"unknown view page", Config{Views: map[string]string{"calendar": "grid"}}, true},
		{"bad view mode", Config{Views: map[string]string{"jobs": "table"}}, true},
		{"valid views", Config{Views: map[string]string{"services": "list"}}, false},
		{"map view on clients", Config{Views: map[string]string{"clients": "map"}}, true},
		{"grid view on map", Config{Views: map[string]string{"map": "grid"}}, true},
		{"map view on map", Config{Views: map[string]string{"map": "map"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
