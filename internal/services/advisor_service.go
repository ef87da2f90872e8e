package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"wander/internal/models/db_models"
	"wander/pkg/memcache"
	"wander/pkg/utils"
)

const replyCacheTTL = time.Hour

// AdvisorServiceInterface runs one advisory consultation per category. Replies
// are raw text; a provider failure is absorbed into a fixed error reply that no
// extraction pattern matches, so callers never see an error from here.
type AdvisorServiceInterface interface {
	RecommendFlights(ctx context.Context, origin string, destination string, budget float64, flights []db_models.Flight) string
	RecommendHotels(ctx context.Context, destination string, nights int, budget float64, hotels []db_models.Hotel) string
	PlanActivities(ctx context.Context, destination string, nights int, budget float64, activities []db_models.Activity) string
}

type AdvisorService struct {
	client utils.AdvisorClientInterface
	cache  *memcache.ConsultationCache
}

func NewAdvisorService(client utils.AdvisorClientInterface, cache *memcache.ConsultationCache) AdvisorServiceInterface {
	return &AdvisorService{
		client: client,
		cache:  cache,
	}
}

func (a *AdvisorService) RecommendFlights(ctx context.Context, origin string, destination string, budget float64, flights []db_models.Flight) string {
	systemPrompt := fmt.Sprintf(`You are a flight booking specialist for trips from %s to %s.
Budget: $%.0f

When given flight options, analyze them and respond in this EXACT format:

FLIGHT RECOMMENDATIONS:
Premium: [Airline] - $[price] ([duration], [stops])
Standard: [Airline] - $[price] ([duration], [stops])
Budget: [Airline] - $[price] ([duration], [stops])

BEST CHOICE: [Premium/Standard/Budget]
REASON: [Brief explanation]

Always recommend the option that best balances price, duration, and convenience within budget.`, origin, destination, budget)

	task := fmt.Sprintf("Please recommend flights from %s to %s", origin, destination)
	message := task + "\n\n" + formatFlightOptions(flights)

	return a.consult(ctx, "FlightAgent", systemPrompt, message)
}

func (a *AdvisorService) RecommendHotels(ctx context.Context, destination string, nights int, budget float64, hotels []db_models.Hotel) string {
	systemPrompt := fmt.Sprintf(`You are a hotel booking specialist for %s.
Trip length: %d nights
Total budget: $%.0f

When given hotel options, analyze them and respond in this EXACT format:

HOTEL RECOMMENDATIONS:
Luxury: [Hotel Name] - $[price per night] ([location], %d nights = $[total])
Mid-Range: [Hotel Name] - $[price per night] ([location], %d nights = $[total])
Budget: [Hotel Name] - $[price per night] ([location], %d nights = $[total])

BEST CHOICE: [Luxury/Mid-Range/Budget]
REASON: [Brief explanation considering location and value]

Consider total cost for %d nights and recommend based on best value.`, destination, nights, budget, nights, nights, nights, nights)

	task := fmt.Sprintf("Please recommend hotels in %s for %d nights", destination, nights)
	message := task + "\n\n" + formatHotelOptions(hotels)

	return a.consult(ctx, "HotelAgent", systemPrompt, message)
}

func (a *AdvisorService) PlanActivities(ctx context.Context, destination string, nights int, budget float64, activities []db_models.Activity) string {
	systemPrompt := fmt.Sprintf(`You are an activities specialist for %s.
Trip length: %d days
Budget: $%.0f

When given activity options, create a %d-day plan in this EXACT format:

ACTIVITY PLAN:
Day 1: [Activity 1] + [Activity 2] - Cost: $[total]
Day 2: [Activity 1] + [Activity 2] - Cost: $[total]
Day 3: [Activity 1] + [Activity 2] - Cost: $[total]

TOTAL ACTIVITIES: $[sum of all days]
HIGHLIGHTS: [Top 3 must-see activities]

Mix free and paid activities. Prioritize must-see attractions while staying within budget.`, destination, nights, budget, nights)

	task := fmt.Sprintf("Please create a %d-day activity plan for %s", nights, destination)
	message := task + "\n\n" + formatActivityOptions(activities)

	return a.consult(ctx, "ActivityAgent", systemPrompt, message)
}

// consult sends one consultation through the cache and the chat client. Client
// errors are logged and converted to a fixed error reply; extraction will
// degrade it to the zero-cost sentinel.
func (a *AdvisorService) consult(ctx context.Context, agentName string, systemPrompt string, message string) string {
	key := memcache.Key(systemPrompt, message)
	if reply, ok := a.cache.Get(key); ok {
		log.Printf("Cache hit for %s consultation", agentName)
		return reply
	}

	reply, err := a.client.Consult(ctx, systemPrompt, message)
	if err != nil {
		log.Printf("Error getting recommendation from %s: %v", agentName, err)
		return fmt.Sprintf("Error: Unable to get recommendation from %s", agentName)
	}

	a.cache.Set(key, reply, replyCacheTTL)
	return reply
}

func formatFlightOptions(flights []db_models.Flight) string {
	if len(flights) == 0 {
		return "No data available"
	}

	var b strings.Builder
	b.WriteString("Available Options:\n")
	for i, f := range flights {
		fmt.Fprintf(&b, "%d. Airline: %s | Price: $%d | Duration: %s | Stops: %s\n", i+1, f.Airline, f.Price, f.Duration, f.Stops)
	}
	return b.String()
}

func formatHotelOptions(hotels []db_models.Hotel) string {
	if len(hotels) == 0 {
		return "No data available"
	}

	var b strings.Builder
	b.WriteString("Available Options:\n")
	for i, h := range hotels {
		fmt.Fprintf(&b, "%d. Name: %s | Price per night: $%d | Rating: %.1f | Location: %s\n", i+1, h.Name, h.PricePerNight, h.Rating, h.Location)
	}
	return b.String()
}

func formatActivityOptions(activities []db_models.Activity) string {
	if len(activities) == 0 {
		return "No data available"
	}

	var b strings.Builder
	b.WriteString("Available Options:\n")
	for i, act := range activities {
		fmt.Fprintf(&b, "%d. Name: %s | Price: $%d | Category: %s\n", i+1, act.Name, act.Price, act.Category)
	}
	return b.String()
}
