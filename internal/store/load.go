package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/altinukshini/fieldops/internal/model"
)

// ErrDuplicateID is returned when two records of one kind share an id.
var ErrDuplicateID = errors.New("duplicate record id")

// LoadDataset reads a dataset file. YAML (.yaml, .yml) and JSON with
// comments (.json, .jsonc) are supported.
func LoadDataset(path string) (model.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("reading %s: %w", path, err)
	}

	ds, err := ParseDataset(data, filepath.Ext(path))
	if err != nil {
		return model.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// ParseDataset decodes data according to the file extension ext and checks
// that ids are unique per kind.
func ParseDataset(data []byte, ext string) (model.Dataset, error) {
	var ds model.Dataset
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &ds); err != nil {
			return ds, fmt.Errorf("parsing yaml: %w", err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &ds); err != nil {
			return ds, fmt.Errorf("parsing json: %w", err)
		}
	default:
		return ds, fmt.Errorf("unsupported data file extension %q", ext)
	}

	if err := Validate(ds); err != nil {
		return ds, err
	}
	return ds, nil
}

// Validate checks the per-kind id uniqueness the stores rely on.
func Validate(ds model.Dataset) error {
	if err := uniqueIDs(model.KindClient, ds.Clients); err != nil {
		return err
	}
	if err := uniqueIDs(model.KindJob, ds.Jobs); err != nil {
		return err
	}
	if err := uniqueIDs(model.KindQuote, ds.Quotes); err != nil {
		return err
	}
	if err := uniqueIDs(model.KindService, ds.Services); err != nil {
		return err
	}
	return uniqueIDs(model.KindLocation, ds.Locations)
}

func uniqueIDs[R model.Record](kind model.Kind, records []R) error {
	seen := make(map[int64]bool, len(records))
	for _, r := range records {
		id := r.RecordID()
		if seen[id] {
			return fmt.Errorf("%s %d: %w", kind, id, ErrDuplicateID)
		}
		seen[id] = true
	}
	return nil
}
