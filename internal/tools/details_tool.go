package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dileep-u-k/hotel-concierge/internal/catalog"
)

// DetailsTool looks up a single hotel by name within a location and adds
// derived weekly and monthly cost estimates.
type DetailsTool struct {
	catalog *catalog.Catalog
}

var _ ToolExecutor = (*DetailsTool)(nil)

func NewDetailsTool(c *catalog.Catalog) *DetailsTool {
	return &DetailsTool{catalog: c}
}

func (dt *DetailsTool) Definition() Tool {
	return NewFunctionTool(
		"get_hotel_details",
		"Get detailed information about a specific hotel, including estimated weekly and monthly costs.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"location": {
					Type:        "string",
					Description: "The city/location of the hotel.",
				},
				"hotel_name": {
					Type:        "string",
					Description: "The name of the hotel.",
				},
			},
			Required: []string{"location", "hotel_name"},
		},
	)
}

type detailsResult struct {
	Location             string        `json:"location"`
	HotelDetails         catalog.Hotel `json:"hotel_details"`
	EstimatedWeeklyCost  int           `json:"estimated_weekly_cost"`
	EstimatedMonthlyCost int           `json:"estimated_monthly_cost"`
}

func (dt *DetailsTool) Execute(arguments string) (string, error) {
	var args struct {
		Location  string `json:"location"`
		HotelName string `json:"hotel_name"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("invalid arguments for get_hotel_details: %w", err)
	}

	hotels, _, nfErr := dt.catalog.Lookup(args.Location)
	if nfErr != nil {
		return errorResult(fmt.Sprintf("Location '%s' not found", args.Location))
	}

	// Case-insensitive exact match; the first hit wins when names collide.
	for _, hotel := range hotels {
		if strings.EqualFold(hotel.Name, args.HotelName) {
			return marshalResult(detailsResult{
				Location:             args.Location,
				HotelDetails:         hotel,
				EstimatedWeeklyCost:  hotel.PricePerNight * 7,
				EstimatedMonthlyCost: hotel.PricePerNight * 30,
			})
		}
	}

	return errorResult(fmt.Sprintf("Hotel '%s' not found in %s", args.HotelName, args.Location))
}
