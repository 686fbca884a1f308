package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"foodhub/internal/domain"
)

type catalogFile struct {
	Stores   []domain.Store   `json:"stores"`
	Products []domain.Product `json:"products"`
}

// FromFile builds a Catalog from a JSON document instead of the built-in
// data. Every product must reference a listed store.
func FromFile(path string, fallbackFee int64) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(file.Stores) == 0 {
		return nil, fmt.Errorf("catalog file %s lists no stores", path)
	}

	known := make(map[string]bool, len(file.Stores))
	for _, s := range file.Stores {
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("store entry missing id or name in %s", path)
		}
		if known[s.ID] {
			return nil, fmt.Errorf("duplicate store id %q in %s", s.ID, path)
		}
		known[s.ID] = true
	}
	for _, p := range file.Products {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("product entry missing id or name in %s", path)
		}
		if !known[p.StoreID] {
			return nil, fmt.Errorf("product %q references unknown store %q", p.ID, p.StoreID)
		}
	}

	return &Catalog{
		stores:      file.Stores,
		products:    file.Products,
		fallbackFee: fallbackFee,
	}, nil
}
