package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotFound is returned by Get for an unknown instrument id.
// Callers should treat it as a user-input error, not a crash.
var ErrNotFound = errors.New("instrument not found")

// Catalog is an immutable registry of diagnostic instruments.
type Catalog struct {
	instruments []Instrument
	byID        map[string]*Instrument
}

// New builds a Catalog from the given instruments, validating every
// structural invariant. Returns a combined error describing all problems.
func New(instruments []Instrument) (*Catalog, error) {
	if err := validateInstruments(instruments); err != nil {
		return nil, err
	}

	c := &Catalog{
		instruments: instruments,
		byID:        make(map[string]*Instrument, len(instruments)),
	}
	for i := range c.instruments {
		c.byID[c.instruments[i].ID] = &c.instruments[i]
	}
	return c, nil
}

// Get returns the instrument with the given id, or an error wrapping
// ErrNotFound.
func (c *Catalog) Get(id string) (Instrument, error) {
	in, ok := c.byID[id]
	if !ok {
		return Instrument{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return *in, nil
}

// All returns every instrument in catalog order.
func (c *Catalog) All() []Instrument {
	return slices.Clone(c.instruments)
}

// Len returns the number of instruments.
func (c *Catalog) Len() int {
	return len(c.instruments)
}

// defaultCatalog is the build-time catalog, set by init() in seed.go.
var defaultCatalog *Catalog

// Default returns the built-in instrument catalog.
func Default() *Catalog {
	return defaultCatalog
}
