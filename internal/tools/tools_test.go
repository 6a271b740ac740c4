package tools_test

import (
	"encoding/json"
	"testing"

	"github.com/dileep-u-k/hotel-concierge/internal/catalog"
	"github.com/dileep-u-k/hotel-concierge/internal/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchResult struct {
	Location       string          `json:"location"`
	TotalAvailable int             `json:"total_available"`
	Hotels         []catalog.Hotel `json:"hotels"`
	Error          string          `json:"error"`
}

type detailsResult struct {
	Location             string        `json:"location"`
	HotelDetails         catalog.Hotel `json:"hotel_details"`
	EstimatedWeeklyCost  int           `json:"estimated_weekly_cost"`
	EstimatedMonthlyCost int           `json:"estimated_monthly_cost"`
	Error                string        `json:"error"`
}

type costResult struct {
	PricePerNight float64 `json:"price_per_night"`
	Nights        int     `json:"nights"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	TotalCost     float64 `json:"total_cost"`
}

type locationsResult struct {
	AvailableLocations []string `json:"available_locations"`
	TotalLocations     int      `json:"total_locations"`
}

func TestSearchHotels_AvailabilityFilter(t *testing.T) {
	tool := tools.NewSearchTool(catalog.Default())

	out, err := tool.Execute(`{"location": "tokyo"}`)
	require.NoError(t, err)

	var res searchResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Empty(t, res.Error)
	assert.Equal(t, "tokyo", res.Location)
	// The capsule hotel is unavailable and must be excluded; catalog order
	// is preserved for the rest.
	require.Equal(t, 2, res.TotalAvailable)
	assert.Equal(t, "The Ritz-Carlton Tokyo", res.Hotels[0].Name)
	assert.Equal(t, "Shibuya Excel Hotel Tokyu", res.Hotels[1].Name)
}

func TestSearchHotels_MaxPrice(t *testing.T) {
	tool := tools.NewSearchTool(catalog.Default())

	out, err := tool.Execute(`{"location": "tokyo", "max_price": 300}`)
	require.NoError(t, err)

	var res searchResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	// 520 filtered by price, 80 by availability; only the 290 record remains.
	require.Equal(t, 1, res.TotalAvailable)
	require.Len(t, res.Hotels, 1)
	assert.Equal(t, "Shibuya Excel Hotel Tokyu", res.Hotels[0].Name)
	assert.Equal(t, 290, res.Hotels[0].PricePerNight)
}

func TestSearchHotels_UnknownLocation(t *testing.T) {
	tool := tools.NewSearchTool(catalog.Default())

	out, err := tool.Execute(`{"location": "gotham"}`)
	require.NoError(t, err)

	var res searchResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Contains(t, res.Error, "gotham")
	assert.Contains(t, res.Error, "new_york, paris, tokyo, london, dubai")
}

func TestSearchHotels_NormalizesLocation(t *testing.T) {
	tool := tools.NewSearchTool(catalog.Default())

	out, err := tool.Execute(`{"location": "New York"}`)
	require.NoError(t, err)

	var res searchResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Empty(t, res.Error)
	assert.Equal(t, 2, res.TotalAvailable)
}

func TestSearchHotels_MalformedArguments(t *testing.T) {
	tool := tools.NewSearchTool(catalog.Default())

	_, err := tool.Execute(`{"location": `)
	assert.Error(t, err)
}

func TestHotelDetails_CaseInsensitiveMatch(t *testing.T) {
	tool := tools.NewDetailsTool(catalog.Default())

	out, err := tool.Execute(`{"location": "london", "hotel_name": "the savoy"}`)
	require.NoError(t, err)

	var res detailsResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Empty(t, res.Error)
	assert.Equal(t, "The Savoy", res.HotelDetails.Name)
	assert.Equal(t, 590, res.HotelDetails.PricePerNight)
	assert.Equal(t, 590*7, res.EstimatedWeeklyCost)
	assert.Equal(t, 590*30, res.EstimatedMonthlyCost)
}

func TestHotelDetails_UnknownHotel(t *testing.T) {
	tool := tools.NewDetailsTool(catalog.Default())

	out, err := tool.Execute(`{"location": "london", "hotel_name": "Hotel California"}`)
	require.NoError(t, err)

	var res detailsResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Hotel 'Hotel California' not found in london", res.Error)
}

func TestHotelDetails_UnknownLocation(t *testing.T) {
	tool := tools.NewDetailsTool(catalog.Default())

	out, err := tool.Execute(`{"location": "gotham", "hotel_name": "The Savoy"}`)
	require.NoError(t, err)

	var res detailsResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Location 'gotham' not found", res.Error)
}

func TestCalculateBookingCost(t *testing.T) {
	tool := tools.NewCostTool()

	out, err := tool.Execute(`{"price_per_night": 100, "nights": 5, "tax_rate": 0.12}`)
	require.NoError(t, err)

	var res costResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 100.0, res.PricePerNight)
	assert.Equal(t, 5, res.Nights)
	assert.Equal(t, 500.0, res.Subtotal)
	assert.Equal(t, 60.0, res.Tax)
	assert.Equal(t, 560.0, res.TotalCost)
}

func TestCalculateBookingCost_DefaultTaxRate(t *testing.T) {
	tool := tools.NewCostTool()

	out, err := tool.Execute(`{"price_per_night": 290, "nights": 3}`)
	require.NoError(t, err)

	var res costResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 870.0, res.Subtotal)
	assert.Equal(t, 104.4, res.Tax)
	assert.Equal(t, 974.4, res.TotalCost)
}

func TestCalculateBookingCost_RoundsToCents(t *testing.T) {
	tool := tools.NewCostTool()

	out, err := tool.Execute(`{"price_per_night": 333, "nights": 1, "tax_rate": 0.0333}`)
	require.NoError(t, err)

	var res costResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 11.09, res.Tax)
	assert.Equal(t, 344.09, res.TotalCost)
}

func TestAvailableLocations(t *testing.T) {
	tool := tools.NewLocationsTool(catalog.Default())

	out, err := tool.Execute(`{}`)
	require.NoError(t, err)

	var res locationsResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []string{"new_york", "paris", "tokyo", "london", "dubai"}, res.AvailableLocations)
	assert.Equal(t, 5, res.TotalLocations)
}

// Tools hold no hidden state: the same arguments must produce byte-identical
// output on every invocation.
func TestIdempotence(t *testing.T) {
	c := catalog.Default()
	cases := []struct {
		tool tools.ToolExecutor
		args string
	}{
		{tools.NewSearchTool(c), `{"location": "tokyo", "max_price": 300}`},
		{tools.NewDetailsTool(c), `{"location": "london", "hotel_name": "the savoy"}`},
		{tools.NewCostTool(), `{"price_per_night": 100, "nights": 5}`},
		{tools.NewLocationsTool(c), `{}`},
	}

	for _, tc := range cases {
		name := tc.tool.Definition().Function.Name
		first, err := tc.tool.Execute(tc.args)
		require.NoError(t, err, name)
		second, err := tc.tool.Execute(tc.args)
		require.NoError(t, err, name)
		assert.Equal(t, first, second, name)
	}
}
