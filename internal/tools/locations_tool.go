package tools

import (
	"github.com/dileep-u-k/hotel-concierge/internal/catalog"
)

// LocationsTool lists every bookable location in catalog order.
type LocationsTool struct {
	catalog *catalog.Catalog
}

var _ ToolExecutor = (*LocationsTool)(nil)

func NewLocationsTool(c *catalog.Catalog) *LocationsTool {
	return &LocationsTool{catalog: c}
}

func (lt *LocationsTool) Definition() Tool {
	return NewFunctionTool(
		"get_available_locations",
		"Get all available booking locations.",
		JSONSchema{
			Type:       "object",
			Properties: map[string]*JSONSchema{},
		},
	)
}

type locationsResult struct {
	AvailableLocations []string `json:"available_locations"`
	TotalLocations     int      `json:"total_locations"`
}

// Execute takes no parameters; the arguments string is ignored.
func (lt *LocationsTool) Execute(arguments string) (string, error) {
	return marshalResult(locationsResult{
		AvailableLocations: lt.catalog.Locations(),
		TotalLocations:     lt.catalog.Len(),
	})
}
