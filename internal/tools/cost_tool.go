package tools

import (
	"encoding/json"
	"fmt"
	"math"
)

// defaultTaxRate applies when the model omits tax_rate.
const defaultTaxRate = 0.12

// CostTool computes a booking cost breakdown. Pure arithmetic over its
// arguments; negative inputs flow through unvalidated.
type CostTool struct{}

var _ ToolExecutor = (*CostTool)(nil)

func NewCostTool() *CostTool {
	return &CostTool{}
}

func (ct *CostTool) Definition() Tool {
	return NewFunctionTool(
		"calculate_booking_cost",
		"Calculate the total cost of a hotel booking including taxes.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"price_per_night": {
					Type:        "number",
					Description: "Price per night in USD.",
				},
				"nights": {
					Type:        "integer",
					Description: "Number of nights.",
				},
				"tax_rate": {
					Type:        "number",
					Description: "Tax rate as a fraction (default 0.12, i.e. 12%).",
				},
			},
			Required: []string{"price_per_night", "nights"},
		},
	)
}

type costResult struct {
	PricePerNight float64 `json:"price_per_night"`
	Nights        int     `json:"nights"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	TotalCost     float64 `json:"total_cost"`
}

func (ct *CostTool) Execute(arguments string) (string, error) {
	var args struct {
		PricePerNight float64  `json:"price_per_night"`
		Nights        int      `json:"nights"`
		TaxRate       *float64 `json:"tax_rate"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("invalid arguments for calculate_booking_cost: %w", err)
	}

	taxRate := defaultTaxRate
	if args.TaxRate != nil {
		taxRate = *args.TaxRate
	}

	subtotal := args.PricePerNight * float64(args.Nights)
	tax := round2(subtotal * taxRate)
	total := round2(subtotal + tax)

	return marshalResult(costResult{
		PricePerNight: args.PricePerNight,
		Nights:        args.Nights,
		Subtotal:      subtotal,
		Tax:           tax,
		TotalCost:     total,
	})
}

// round2 rounds to two decimal places, matching currency display.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
