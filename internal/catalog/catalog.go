package catalog

import (
	"errors"
	"fmt"
	"slices"

	"bookstore/internal/novel"
	"bookstore/internal/validation"
)

// ErrInvariantViolation signals a defect in the seed data or the population
// routine. Callers should not retry on it.
var ErrInvariantViolation = errors.New("catalog invariant violated")

// Catalog is an ordered, read-only collection of novels. Nothing mutates it
// after New returns, so a single instance may be shared between goroutines.
type Catalog struct {
	name    string
	entries []novel.Novel
}

// New creates a catalog called name and populates it from the embedded seed
// table.
func New(name string) (*Catalog, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	records, err := DefaultSeed()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}
	return NewFromSeed(name, records)
}

// NewFromSeed creates a catalog called name holding records in order.
func NewFromSeed(name string, records []SeedRecord) (*Catalog, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	entries, err := populate(records)
	if err != nil {
		return nil, err
	}
	if err := checkEntries(entries); err != nil {
		return nil, err
	}

	return &Catalog{name: name, entries: entries}, nil
}

func validateName(name string) error {
	if err := validation.Var("name", name, "notblank"); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	return nil
}

func populate(records []SeedRecord) ([]novel.Novel, error) {
	entries := make([]novel.Novel, 0, len(records))
	for i, r := range records {
		n, err := novel.New(r.Title, r.Author, r.Year)
		if err != nil {
			return nil, fmt.Errorf("%w: seed record %d: %w", ErrInvariantViolation, i, err)
		}
		entries = append(entries, n)
	}
	return entries, nil
}

func checkEntries(entries []novel.Novel) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: catalog must contain novels", ErrInvariantViolation)
	}
	for i, n := range entries {
		if n.IsZero() {
			return fmt.Errorf("%w: entry %d is missing", ErrInvariantViolation, i)
		}
	}
	return nil
}

func (c *Catalog) Name() string { return c.name }

func (c *Catalog) Len() int { return len(c.entries) }

// Entries returns a copy of the catalog in order. Changing the returned
// slice does not affect the catalog.
func (c *Catalog) Entries() []novel.Novel {
	return slices.Clone(c.entries)
}
