// Package catalog holds the static hotel inventory the concierge tools
// operate on. The catalog is built once at startup and injected into every
// component that needs it; nothing mutates it afterwards, so it is safe to
// share across requests without locking.
package catalog

import (
	"fmt"
	"strings"
)

// Hotel is a single inventory record. Records are immutable after load;
// a hotel has no identity beyond its name within a location.
type Hotel struct {
	Name          string   `json:"name" yaml:"name"`
	Rating        float64  `json:"rating" yaml:"rating"`
	PricePerNight int      `json:"price_per_night" yaml:"price_per_night"`
	Amenities     []string `json:"amenities" yaml:"amenities"`
	Availability  bool     `json:"availability" yaml:"availability"`
}

// Catalog maps normalized location keys to ordered hotel lists. The key
// order is fixed at construction so Locations() is stable across runs,
// which in turn keeps tool output and cache keys deterministic.
type Catalog struct {
	keys    []string
	entries map[string][]Hotel
}

// NotFoundError is returned when a location key is absent. It is a
// recoverable condition: callers serialize it into a structured error
// payload for the model rather than failing the request.
type NotFoundError struct {
	Location  string
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no hotels found for location: %s. Available locations: %s",
		e.Location, strings.Join(e.Available, ", "))
}

// NormalizeLocation converts free-form user input into a catalog key:
// lowercase with spaces replaced by underscores ("New York" -> "new_york").
func NormalizeLocation(location string) string {
	return strings.ReplaceAll(strings.ToLower(location), " ", "_")
}

// New builds a catalog from an ordered list of (key, hotels) entries.
func New(entries []Entry) *Catalog {
	c := &Catalog{entries: make(map[string][]Hotel, len(entries))}
	for _, e := range entries {
		key := NormalizeLocation(e.Location)
		if _, exists := c.entries[key]; !exists {
			c.keys = append(c.keys, key)
		}
		c.entries[key] = e.Hotels
	}
	return c
}

// Entry pairs a location with its hotels, preserving declaration order.
type Entry struct {
	Location string  `yaml:"location"`
	Hotels   []Hotel `yaml:"hotels"`
}

// Lookup normalizes the given location and returns its hotel list along with
// the normalized key. A miss returns a *NotFoundError listing the valid keys.
func (c *Catalog) Lookup(location string) ([]Hotel, string, *NotFoundError) {
	key := NormalizeLocation(location)
	hotels, ok := c.entries[key]
	if !ok {
		return nil, key, &NotFoundError{Location: location, Available: c.Locations()}
	}
	return hotels, key, nil
}

// Locations returns the catalog keys in their configured order.
func (c *Catalog) Locations() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Len returns the number of locations in the catalog.
func (c *Catalog) Len() int {
	return len(c.keys)
}
