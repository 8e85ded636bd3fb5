package memory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Hashimp6/broperty/internal/model"
)

// Seed is the fixture document accepted by LoadSeed.
type Seed struct {
	Users      []model.User     `json:"users"`
	Properties []model.Property `json:"properties"`
}

// LoadSeed reads users and properties from a JSON file.
func LoadSeed(path string) (*Seed, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var s Seed
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode seed %s: %w", path, err)
	}
	for i, p := range s.Properties {
		if !p.Location.Valid() {
			return nil, fmt.Errorf("seed property %q: coordinates out of range", p.ID)
		}
		if p.Location.Type == "" {
			s.Properties[i].Location.Type = "Point"
		}
	}
	return &s, nil
}
