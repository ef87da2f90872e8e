package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wander/internal/models/request_models"
	"wander/internal/repositories"
	"wander/pkg/memcache"
	"wander/pkg/utils"
)

// scriptedClient returns a canned reply per category, keyed off the role
// instruction, and can fail a single category to exercise failure isolation.
type scriptedClient struct {
	flightReply   string
	hotelReply    string
	activityReply string
	failFlight    bool
	failHotel     bool
	failActivity  bool
}

func (s *scriptedClient) Consult(ctx context.Context, systemPrompt string, userMessage string) (string, error) {
	switch {
	case strings.Contains(systemPrompt, "flight booking specialist"):
		if s.failFlight {
			return "", errors.New("flight advisor down")
		}
		return s.flightReply, nil
	case strings.Contains(systemPrompt, "hotel booking specialist"):
		if s.failHotel {
			return "", errors.New("hotel advisor down")
		}
		return s.hotelReply, nil
	default:
		if s.failActivity {
			return "", errors.New("activity advisor down")
		}
		return s.activityReply, nil
	}
}

func newTestPlanner(client *scriptedClient) PlannerServiceInterface {
	advisor := NewAdvisorService(client, memcache.NewConsultationCache())
	return NewPlannerService(repositories.NewStaticCatalogRepository(), advisor)
}

func tokyoTripRequest(budget float64) request_models.PlanTripRequest {
	return request_models.PlanTripRequest{
		Budget:      budget,
		Origin:      "New York",
		Destination: "Tokyo",
		Nights:      3,
	}
}

func tokyoScriptedClient() *scriptedClient {
	return &scriptedClient{
		flightReply: `FLIGHT RECOMMENDATIONS:
Premium: ANA - $2100 (13h 45m, Direct)
Standard: Korean Air - $1320 (19h 10m, 1 stop (Seoul))
Budget: Korean Air - $1320 (19h 10m, 1 stop (Seoul))
BEST CHOICE: Standard
REASON: Best balance.`,
		hotelReply: `HOTEL RECOMMENDATIONS:
Luxury: Park Hyatt Tokyo - $450 (Shinjuku, 3 nights = $1350)
Mid-Range: Tokyo Station Hotel - $95 (Tokyo Station, 3 nights = $285)
Budget: Capsule Inn Akihabara - $35 (Akihabara, 3 nights = $105)
BEST CHOICE: Mid-Range
REASON: Central and affordable.`,
		activityReply: `ACTIVITY PLAN:
Day 1: Senso-ji Temple + Tokyo Skytree - Cost: $25
Day 2: Tsukiji Market Tour - Cost: $45
Day 3: teamLab Borderless - Cost: $35
TOTAL ACTIVITIES: $105
HIGHLIGHTS: Senso-ji, Skytree, teamLab`,
	}
}

func TestPlanTripAggregatesCategoryCosts(t *testing.T) {
	planner := newTestPlanner(tokyoScriptedClient())

	result, err := planner.PlanTrip(context.Background(), tokyoTripRequest(3500))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 1320, result.FlightCost)
	assert.Equal(t, 285, result.HotelCost)
	assert.Equal(t, 105, result.ActivityCost)
	assert.Equal(t, 1710, result.TotalCost)
	assert.Equal(t, float64(1790), result.RemainingBudget)
	assert.True(t, result.WithinBudget)
	assert.Equal(t, "Standard: Korean Air - $1320 (19h 10m, 1 stop (Seoul))", result.FlightRecommendation)
	assert.Equal(t, "Mid-Range: Tokyo Station Hotel - $95 (Tokyo Station, 3 nights = $285)", result.HotelRecommendation)
	assert.Equal(t, "Activity plan created", result.ActivityRecommendation)
	assert.Contains(t, result.Summary, "TRIP SUMMARY")
	assert.Contains(t, result.Summary, "COST BREAKDOWN:")
}

func TestPlanTripExactBudgetCountsAsWithin(t *testing.T) {
	planner := newTestPlanner(tokyoScriptedClient())

	result, err := planner.PlanTrip(context.Background(), tokyoTripRequest(1710))
	require.NoError(t, err)

	assert.Equal(t, 1710, result.TotalCost)
	assert.Equal(t, float64(0), result.RemainingBudget)
	assert.True(t, result.WithinBudget)
}

func TestPlanTripOverBudget(t *testing.T) {
	client := &scriptedClient{
		flightReply: `Budget: Cheapo Air - $500 (9h, Direct)
BEST CHOICE: Budget`,
		hotelReply: `Budget: City Hostel - $200 (Center, 3 nights = $600)
BEST CHOICE: Budget`,
		activityReply: `Day 1: Walking tour - Cost: $100
TOTAL ACTIVITIES: $100`,
	}
	planner := newTestPlanner(client)

	result, err := planner.PlanTrip(context.Background(), tokyoTripRequest(1000))
	require.NoError(t, err)

	assert.Equal(t, 1200, result.TotalCost)
	assert.Equal(t, float64(-200), result.RemainingBudget)
	assert.False(t, result.WithinBudget)
	assert.Contains(t, result.Summary, "Over budget by $200")
}

func TestPlanTripIsolatesSingleAdvisorFailure(t *testing.T) {
	client := tokyoScriptedClient()
	client.failHotel = true
	planner := newTestPlanner(client)

	result, err := planner.PlanTrip(context.Background(), tokyoTripRequest(3500))
	require.NoError(t, err, "one failed consultation must not abort the run")

	assert.Equal(t, 1320, result.FlightCost)
	assert.Equal(t, 0, result.HotelCost)
	assert.Equal(t, "No details available", result.HotelRecommendation)
	assert.Equal(t, 105, result.ActivityCost)
	assert.Equal(t, 1425, result.TotalCost)
	assert.True(t, result.WithinBudget)
}

func TestPlanTripAllAdvisorsFailingStillCompletes(t *testing.T) {
	client := tokyoScriptedClient()
	client.failFlight = true
	client.failHotel = true
	client.failActivity = true
	planner := newTestPlanner(client)

	result, err := planner.PlanTrip(context.Background(), tokyoTripRequest(3500))
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalCost)
	assert.Equal(t, float64(3500), result.RemainingBudget)
	assert.True(t, result.WithinBudget)
}

func TestPlanTripRejectsInvalidRequests(t *testing.T) {
	planner := newTestPlanner(tokyoScriptedClient())

	tests := []struct {
		name string
		req  request_models.PlanTripRequest
	}{
		{"zero budget", request_models.PlanTripRequest{Budget: 0, Origin: "New York", Destination: "Tokyo", Nights: 3}},
		{"negative budget", request_models.PlanTripRequest{Budget: -100, Origin: "New York", Destination: "Tokyo", Nights: 3}},
		{"zero nights", request_models.PlanTripRequest{Budget: 3500, Origin: "New York", Destination: "Tokyo", Nights: 0}},
		{"blank origin", request_models.PlanTripRequest{Budget: 3500, Origin: "   ", Destination: "Tokyo", Nights: 3}},
		{"blank destination", request_models.PlanTripRequest{Budget: 3500, Origin: "New York", Destination: "\t", Nights: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := planner.PlanTrip(context.Background(), tt.req)
			assert.Nil(t, result, "no partial result on validation failure")
			assert.ErrorIs(t, err, utils.ErrInvalidTripRequest)
		})
	}
}

func TestPlanTripTrimsOriginAndDestination(t *testing.T) {
	planner := newTestPlanner(tokyoScriptedClient())

	req := request_models.PlanTripRequest{
		Budget:      3500,
		Origin:      "  New York  ",
		Destination: " Tokyo ",
		Nights:      3,
	}
	result, err := planner.PlanTrip(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, result.Summary, "New York -> Tokyo")
}
