package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const flightReply = `FLIGHT RECOMMENDATIONS:
Premium: ANA - $2100 (13h 45m, Direct)
Standard: Korean Air - $1320 (19h 10m, 1 stop (Seoul))
Budget: Korean Air - $1320 (19h 10m, 1 stop (Seoul))

BEST CHOICE: Standard
REASON: Best balance of price and duration.`

const hotelReply = `HOTEL RECOMMENDATIONS:
Luxury: Le Meurice - $950 (1st Arrondissement, 3 nights = $2850)
Mid-Range: Hotel des Grands Boulevards - $180 (2nd Arr., 3 nights = $540)
Budget: Generator Paris - $45 (10th Arr., 3 nights = $135)

BEST CHOICE: Mid-Range
REASON: Great location for the price.`

const activityReply = `ACTIVITY PLAN:
Day 1: Louvre Museum + Eiffel Tower - Cost: $46
Day 2: Seine River Cruise + Versailles Palace - Cost: $35
Day 3: Free walking tour + Montmartre - Cost: $39

TOTAL ACTIVITIES: $120
HIGHLIGHTS: Louvre, Eiffel Tower, Versailles`

func TestExtractFlightRecommendation(t *testing.T) {
	rec := ExtractRecommendation(flightReply, CategoryFlight, 3)

	assert.Equal(t, 1320, rec.Cost)
	assert.Equal(t, "Standard: Korean Air - $1320 (19h 10m, 1 stop (Seoul))", rec.Details)
}

func TestExtractHotelRecommendationWithTotal(t *testing.T) {
	rec := ExtractRecommendation(hotelReply, CategoryHotel, 3)

	assert.Equal(t, 540, rec.Cost)
	assert.Equal(t, "Mid-Range: Hotel des Grands Boulevards - $180 (2nd Arr., 3 nights = $540)", rec.Details)
}

func TestExtractHotelRecommendationPerNightFallback(t *testing.T) {
	reply := `HOTEL RECOMMENDATIONS:
Mid-Range: Hotel des Grands Boulevards - $180 (City Center)

BEST CHOICE: Mid-Range
REASON: Good value.`

	rec := ExtractRecommendation(reply, CategoryHotel, 3)

	assert.Equal(t, 540, rec.Cost, "per-night rate should be multiplied by nights")
	assert.Equal(t, "Mid-Range: Hotel des Grands Boulevards - $180 (City Center)", rec.Details)
}

func TestExtractActivityPlan(t *testing.T) {
	rec := ExtractRecommendation(activityReply, CategoryActivity, 3)

	assert.Equal(t, 120, rec.Cost)
	assert.Equal(t, "Activity plan created", rec.Details)
}

func TestExtractActivityIgnoresBestChoice(t *testing.T) {
	reply := activityReply + "\nBEST CHOICE: Day 2"

	rec := ExtractRecommendation(reply, CategoryActivity, 3)

	assert.Equal(t, 120, rec.Cost)
	assert.Equal(t, "Activity plan created", rec.Details)
}

func TestExtractDegradesToSentinel(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		category Category
	}{
		{
			name:     "missing BEST CHOICE line",
			reply:    "Premium: ANA - $2100 (13h 45m, Direct)\nStandard: Korean Air - $1320 (19h 10m, 1 stop)",
			category: CategoryFlight,
		},
		{
			name:     "no priced lines",
			reply:    "BEST CHOICE: Standard\nREASON: cheap",
			category: CategoryFlight,
		},
		{
			name:     "agent boundary error string",
			reply:    "Error: Unable to get recommendation from FlightAgent",
			category: CategoryFlight,
		},
		{
			name:     "empty reply",
			reply:    "",
			category: CategoryFlight,
		},
		{
			name:     "whitespace only",
			reply:    "  \n\t\n  ",
			category: CategoryHotel,
		},
		{
			name:     "hotel line with dollar sign but no amount",
			reply:    "Mid-Range: Hotel X - $ (City Center)\nBEST CHOICE: Mid-Range",
			category: CategoryHotel,
		},
		{
			name:     "activity reply without total line",
			reply:    "Day 1: Museum - Cost: $20\nHIGHLIGHTS: Museum",
			category: CategoryActivity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ExtractRecommendation(tt.reply, tt.category, 3)
			assert.Equal(t, 0, rec.Cost)
			assert.Equal(t, "No details available", rec.Details)
		})
	}
}

func TestExtractTakesFirstDigitRunAfterDollar(t *testing.T) {
	reply := `Premium: United Airlines - $1,850 (14h 20m, Direct)
BEST CHOICE: Premium`

	rec := ExtractRecommendation(reply, CategoryFlight, 3)

	// Thousands separators are not supported; the first digit run wins.
	assert.Equal(t, 1, rec.Cost)
}

func TestExtractLabelMatchIsCaseInsensitive(t *testing.T) {
	reply := `STANDARD: Korean Air - $1320 (19h 10m, 1 stop)
BEST CHOICE: Standard`

	rec := ExtractRecommendation(reply, CategoryFlight, 3)

	assert.Equal(t, 1320, rec.Cost)
}
