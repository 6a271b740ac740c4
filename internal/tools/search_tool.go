package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dileep-u-k/hotel-concierge/internal/catalog"
)

// SearchTool finds available hotels in a location, optionally capped by a
// nightly price. It reads the injected catalog and nothing else.
type SearchTool struct {
	catalog *catalog.Catalog
}

var _ ToolExecutor = (*SearchTool)(nil)

func NewSearchTool(c *catalog.Catalog) *SearchTool {
	return &SearchTool{catalog: c}
}

func (st *SearchTool) Definition() Tool {
	return NewFunctionTool(
		"search_hotels",
		"Search for available hotels in a specific location, optionally filtered by a maximum price per night.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"location": {
					Type:        "string",
					Description: "The city/location to search for hotels (e.g., 'new_york', 'paris', 'tokyo', 'london', 'dubai').",
				},
				"max_price": {
					Type:        "number",
					Description: "Optional maximum price per night filter in USD.",
				},
			},
			Required: []string{"location"},
		},
	)
}

// searchResult preserves catalog order in Hotels; no sorting, no pagination.
type searchResult struct {
	Location       string          `json:"location"`
	TotalAvailable int             `json:"total_available"`
	Hotels         []catalog.Hotel `json:"hotels"`
}

func (st *SearchTool) Execute(arguments string) (string, error) {
	var args struct {
		Location string   `json:"location"`
		MaxPrice *float64 `json:"max_price"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("invalid arguments for search_hotels: %w", err)
	}

	hotels, _, nfErr := st.catalog.Lookup(args.Location)
	if nfErr != nil {
		return errorResult(fmt.Sprintf("No hotels found for location: %s. Available locations: %s",
			args.Location, strings.Join(nfErr.Available, ", ")))
	}

	available := make([]catalog.Hotel, 0, len(hotels))
	for _, hotel := range hotels {
		if !hotel.Availability {
			continue
		}
		if args.MaxPrice != nil && float64(hotel.PricePerNight) > *args.MaxPrice {
			continue
		}
		available = append(available, hotel)
	}

	return marshalResult(searchResult{
		Location:       args.Location,
		TotalAvailable: len(available),
		Hotels:         available,
	})
}
