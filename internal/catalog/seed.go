package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed/novels.yaml
var defaultSeed []byte

// ErrEmptySeed is returned by ParseSeed for a document with no records.
var ErrEmptySeed = errors.New("seed document has no records")

// SeedRecord is one row of the seed table, not yet validated.
type SeedRecord struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Year   int    `yaml:"year"`
}

// ParseSeed decodes a YAML list of {title, author, year} records, keeping
// document order.
func ParseSeed(data []byte) ([]SeedRecord, error) {
	var records []SeedRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptySeed
	}
	return records, nil
}

// DefaultSeed returns the records of the embedded seed table.
func DefaultSeed() ([]SeedRecord, error) {
	return ParseSeed(defaultSeed)
}
