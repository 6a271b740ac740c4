package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a catalog override. Locations are a
// YAML sequence, not a mapping, so their order survives the round trip.
type catalogFile struct {
	Locations []Entry `yaml:"locations"`
}

// LoadFile reads a catalog override from a YAML file. This lets operators
// swap the inventory without a rebuild; the embedded Default() remains the
// fallback when no file is configured.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if len(file.Locations) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no locations", path)
	}

	return New(file.Locations), nil
}
