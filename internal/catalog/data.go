package catalog

// Default returns the embedded five-city inventory the concierge ships with.
// Fifteen records total: three hotels per city, declared in a fixed order so
// every run of the process exposes the same catalog.
func Default() *Catalog {
	return New([]Entry{
		{
			Location: "new_york",
			Hotels: []Hotel{
				{
					Name:          "The Plaza Hotel",
					Rating:        4.5,
					PricePerNight: 450,
					Amenities:     []string{"WiFi", "Pool", "Spa", "Gym", "Restaurant"},
					Availability:  true,
				},
				{
					Name:          "The Standard High Line",
					Rating:        4.2,
					PricePerNight: 320,
					Amenities:     []string{"WiFi", "Bar", "Gym", "Pet-friendly"},
					Availability:  true,
				},
				{
					Name:          "Pod Hotel Brooklyn",
					Rating:        4.0,
					PricePerNight: 180,
					Amenities:     []string{"WiFi", "Restaurant", "Rooftop Bar"},
					Availability:  false,
				},
			},
		},
		{
			Location: "paris",
			Hotels: []Hotel{
				{
					Name:          "Hotel Plaza Athenee",
					Rating:        4.8,
					PricePerNight: 680,
					Amenities:     []string{"WiFi", "Spa", "Restaurant", "Concierge", "Bar"},
					Availability:  true,
				},
				{
					Name:          "Le Marais Hotel",
					Rating:        4.1,
					PricePerNight: 280,
					Amenities:     []string{"WiFi", "Restaurant", "Historic Building"},
					Availability:  true,
				},
				{
					Name:          "Hotel des Grands Boulevards",
					Rating:        4.3,
					PricePerNight: 350,
					Amenities:     []string{"WiFi", "Restaurant", "Bar", "Garden"},
					Availability:  true,
				},
			},
		},
		{
			Location: "tokyo",
			Hotels: []Hotel{
				{
					Name:          "The Ritz-Carlton Tokyo",
					Rating:        4.7,
					PricePerNight: 520,
					Amenities:     []string{"WiFi", "Spa", "Pool", "Multiple Restaurants", "City View"},
					Availability:  true,
				},
				{
					Name:          "Shibuya Excel Hotel Tokyu",
					Rating:        4.2,
					PricePerNight: 290,
					Amenities:     []string{"WiFi", "Restaurant", "City Center", "Shopping Access"},
					Availability:  true,
				},
				{
					Name:          "Capsule Hotel Shinjuku 510",
					Rating:        3.8,
					PricePerNight: 80,
					Amenities:     []string{"WiFi", "Shared Bath", "Lockers"},
					Availability:  false,
				},
			},
		},
		{
			Location: "london",
			Hotels: []Hotel{
				{
					Name:          "The Savoy",
					Rating:        4.6,
					PricePerNight: 590,
					Amenities:     []string{"WiFi", "Spa", "Multiple Restaurants", "Theatre District", "River View"},
					Availability:  true,
				},
				{
					Name:          "Premier Inn London City",
					Rating:        4.0,
					PricePerNight: 120,
					Amenities:     []string{"WiFi", "Restaurant", "24/7 Reception"},
					Availability:  true,
				},
				{
					Name:          "The Zetter Townhouse",
					Rating:        4.4,
					PricePerNight: 380,
					Amenities:     []string{"WiFi", "Bar", "Boutique Style", "Historic"},
					Availability:  true,
				},
			},
		},
		{
			Location: "dubai",
			Hotels: []Hotel{
				{
					Name:          "Burj Al Arab Jumeirah",
					Rating:        4.9,
					PricePerNight: 1200,
					Amenities:     []string{"WiFi", "Multiple Pools", "Spa", "Private Beach", "Butler Service"},
					Availability:  true,
				},
				{
					Name:          "Atlantis The Palm",
					Rating:        4.5,
					PricePerNight: 480,
					Amenities:     []string{"WiFi", "Water Park", "Aquarium", "Multiple Restaurants", "Beach"},
					Availability:  true,
				},
				{
					Name:          "Rove Downtown Dubai",
					Rating:        4.1,
					PricePerNight: 150,
					Amenities:     []string{"WiFi", "Pool", "Gym", "Restaurant", "City Center"},
					Availability:  false,
				},
			},
		},
	})
}
