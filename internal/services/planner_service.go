package services

import (
	"context"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type PlannerServiceInterface interface {
	PlanTrip(ctx context.Context, req request_models.PlanTripRequest) (*response_models.TripPlanResult, error)
}

type PlannerService struct {
	catalog  repositories.CatalogRepository
	advisor  AdvisorServiceInterface
	validate *validator.Validate
}

func NewPlannerService(catalog repositories.CatalogRepository, advisor AdvisorServiceInterface) PlannerServiceInterface {
	return &PlannerService{
		catalog:  catalog,
		advisor:  advisor,
		validate: validator.New(),
	}
}

// PlanTrip coordinates the three advisory consultations against the budget.
// The three categories are independent: one failed or malformed consultation
// contributes a zero cost and the run still produces a complete result. Only a
// bad request or an unexpected internal failure yields no result at all.
func (p *PlannerService) PlanTrip(ctx context.Context, req request_models.PlanTripRequest) (*response_models.TripPlanResult, error) {
	req.Origin = strings.TrimSpace(req.Origin)
	req.Destination = strings.TrimSpace(req.Destination)

	if err := p.validate.Struct(req); err != nil {
		return nil, utils.ErrInvalidTripRequest
	}
	if req.Origin == "" || req.Destination == "" {
		return nil, utils.ErrInvalidTripRequest
	}

	log.Printf("Planning trip %s -> %s, %d nights, $%.0f budget", req.Origin, req.Destination, req.Nights, req.Budget)

	flights, err := p.catalog.GetFlights(ctx, req.Origin, req.Destination)
	if err != nil {
		log.Printf("Flight catalog lookup failed: %v", err)
		return nil, utils.ErrPlanningFailed
	}
	hotels, err := p.catalog.GetHotels(ctx, req.Destination)
	if err != nil {
		log.Printf("Hotel catalog lookup failed: %v", err)
		return nil, utils.ErrPlanningFailed
	}
	activities, err := p.catalog.GetActivities(ctx, req.Destination)
	if err != nil {
		log.Printf("Activity catalog lookup failed: %v", err)
		return nil, utils.ErrPlanningFailed
	}

	log.Printf("Found %d flights, %d hotels, %d activities", len(flights), len(hotels), len(activities))

	flightReply := p.advisor.RecommendFlights(ctx, req.Origin, req.Destination, req.Budget, flights)
	hotelReply := p.advisor.RecommendHotels(ctx, req.Destination, req.Nights, req.Budget, hotels)
	activityReply := p.advisor.PlanActivities(ctx, req.Destination, req.Nights, req.Budget, activities)

	flight := ExtractRecommendation(flightReply, CategoryFlight, req.Nights)
	hotel := ExtractRecommendation(hotelReply, CategoryHotel, req.Nights)
	activity := ExtractRecommendation(activityReply, CategoryActivity, req.Nights)

	totalCost := flight.Cost + hotel.Cost + activity.Cost

	result := &response_models.TripPlanResult{
		TotalCost:              totalCost,
		RemainingBudget:        req.Budget - float64(totalCost),
		WithinBudget:           float64(totalCost) <= req.Budget,
		FlightCost:             flight.Cost,
		HotelCost:              hotel.Cost,
		ActivityCost:           activity.Cost,
		FlightRecommendation:   flight.Details,
		HotelRecommendation:    hotel.Details,
		ActivityRecommendation: activity.Details,
	}
	result.Summary = BuildTripSummary(req, result, flightReply, hotelReply, activityReply)

	return result, nil
}
