package repositories

import (
	"context"
	"fmt"

	"wander/internal/models/db_models"
)

type CatalogRepository interface {
	GetFlights(ctx context.Context, origin string, destination string) ([]db_models.Flight, error)
	GetHotels(ctx context.Context, destination string) ([]db_models.Hotel, error)
	GetActivities(ctx context.Context, destination string) ([]db_models.Activity, error)
}

type route struct {
	origin      string
	destination string
}

// Static inventory mirroring the mock travel APIs. Unknown keys fall back to a
// single generic entry so callers always get a non-empty list.
var flightTable = map[route][]db_models.Flight{
	{"New York", "Tokyo"}: {
		{Origin: "New York", Destination: "Tokyo", Airline: "United Airlines", Price: 1850, Duration: "14h 20m", Stops: "Direct"},
		{Origin: "New York", Destination: "Tokyo", Airline: "ANA", Price: 2100, Duration: "13h 45m", Stops: "Direct"},
		{Origin: "New York", Destination: "Tokyo", Airline: "Korean Air", Price: 1320, Duration: "19h 10m", Stops: "1 stop (Seoul)"},
	},
	{"London", "Paris"}: {
		{Origin: "London", Destination: "Paris", Airline: "British Airways", Price: 180, Duration: "1h 25m", Stops: "Direct"},
		{Origin: "London", Destination: "Paris", Airline: "Air France", Price: 165, Duration: "1h 20m", Stops: "Direct"},
		{Origin: "London", Destination: "Paris", Airline: "Lufthansa", Price: 220, Duration: "3h 45m", Stops: "1 stop (Frankfurt)"},
	},
}

var hotelTable = map[string][]db_models.Hotel{
	"Tokyo": {
		{Destination: "Tokyo", Name: "Park Hyatt Tokyo", PricePerNight: 450, Rating: 4.8, Location: "Shinjuku"},
		{Destination: "Tokyo", Name: "Tokyo Station Hotel", PricePerNight: 95, Rating: 4.2, Location: "Tokyo Station"},
		{Destination: "Tokyo", Name: "Capsule Inn Akihabara", PricePerNight: 35, Rating: 3.8, Location: "Akihabara"},
	},
	"Paris": {
		{Destination: "Paris", Name: "Le Meurice", PricePerNight: 950, Rating: 4.9, Location: "1st Arrondissement"},
		{Destination: "Paris", Name: "Hotel des Grands Boulevards", PricePerNight: 180, Rating: 4.3, Location: "2nd Arr."},
		{Destination: "Paris", Name: "Generator Paris", PricePerNight: 45, Rating: 4.1, Location: "10th Arr."},
	},
}

var activityTable = map[string][]db_models.Activity{
	"Tokyo": {
		{Destination: "Tokyo", Name: "Senso-ji Temple", Price: 0, Category: "Cultural"},
		{Destination: "Tokyo", Name: "Tokyo Skytree", Price: 25, Category: "Sightseeing"},
		{Destination: "Tokyo", Name: "Tsukiji Market Tour", Price: 45, Category: "Food"},
		{Destination: "Tokyo", Name: "teamLab Borderless", Price: 35, Category: "Art"},
	},
	"Paris": {
		{Destination: "Paris", Name: "Louvre Museum", Price: 17, Category: "Museum"},
		{Destination: "Paris", Name: "Eiffel Tower", Price: 29, Category: "Sightseeing"},
		{Destination: "Paris", Name: "Seine River Cruise", Price: 15, Category: "Sightseeing"},
		{Destination: "Paris", Name: "Versailles Palace", Price: 20, Category: "Historical"},
	},
}

func genericFlight(origin, destination string) db_models.Flight {
	return db_models.Flight{Origin: origin, Destination: destination, Airline: "Generic Airways", Price: 800, Duration: "8h", Stops: "Direct"}
}

func genericHotel(destination string) db_models.Hotel {
	return db_models.Hotel{Destination: destination, Name: fmt.Sprintf("Hotel %s", destination), PricePerNight: 120, Rating: 4.0, Location: "City Center"}
}

func genericActivity(destination string) db_models.Activity {
	return db_models.Activity{Destination: destination, Name: fmt.Sprintf("%s City Tour", destination), Price: 30, Category: "Sightseeing"}
}

func NewStaticCatalogRepository() CatalogRepository {
	return &StaticCatalogRepository{}
}

type StaticCatalogRepository struct{}

func (r *StaticCatalogRepository) GetFlights(ctx context.Context, origin string, destination string) ([]db_models.Flight, error) {
	if flights, ok := flightTable[route{origin, destination}]; ok {
		return flights, nil
	}
	return []db_models.Flight{genericFlight(origin, destination)}, nil
}

func (r *StaticCatalogRepository) GetHotels(ctx context.Context, destination string) ([]db_models.Hotel, error) {
	if hotels, ok := hotelTable[destination]; ok {
		return hotels, nil
	}
	return []db_models.Hotel{genericHotel(destination)}, nil
}

func (r *StaticCatalogRepository) GetActivities(ctx context.Context, destination string) ([]db_models.Activity, error) {
	if activities, ok := activityTable[destination]; ok {
		return activities, nil
	}
	return []db_models.Activity{genericActivity(destination)}, nil
}
