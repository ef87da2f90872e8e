package services

import (
	"context"
	"log"

	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type CatalogServiceInterface interface {
	ListFlights(ctx context.Context, origin string, destination string) ([]response_models.FlightOption, error)
	ListHotels(ctx context.Context, destination string) ([]response_models.HotelOption, error)
	ListActivities(ctx context.Context, destination string) ([]response_models.ActivityOption, error)
}

type CatalogService struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogServiceInterface {
	return &CatalogService{
		catalogRepo: catalogRepo,
	}
}

func (s *CatalogService) ListFlights(ctx context.Context, origin string, destination string) ([]response_models.FlightOption, error) {
	flights, err := s.catalogRepo.GetFlights(ctx, origin, destination)
	if err != nil {
		log.Printf("Flight catalog lookup failed: %v", err)
		return nil, utils.ErrCatalogUnavailable
	}

	options := make([]response_models.FlightOption, 0, len(flights))
	for _, f := range flights {
		options = append(options, response_models.FlightOption{
			Airline:  f.Airline,
			Price:    f.Price,
			Duration: f.Duration,
			Stops:    f.Stops,
		})
	}
	return options, nil
}

func (s *CatalogService) ListHotels(ctx context.Context, destination string) ([]response_models.HotelOption, error) {
	hotels, err := s.catalogRepo.GetHotels(ctx, destination)
	if err != nil {
		log.Printf("Hotel catalog lookup failed: %v", err)
		return nil, utils.ErrCatalogUnavailable
	}

	options := make([]response_models.HotelOption, 0, len(hotels))
	for _, h := range hotels {
		options = append(options, response_models.HotelOption{
			Name:          h.Name,
			PricePerNight: h.PricePerNight,
			Rating:        h.Rating,
			Location:      h.Location,
		})
	}
	return options, nil
}

func (s *CatalogService) ListActivities(ctx context.Context, destination string) ([]response_models.ActivityOption, error) {
	activities, err := s.catalogRepo.GetActivities(ctx, destination)
	if err != nil {
		log.Printf("Activity catalog lookup failed: %v", err)
		return nil, utils.ErrCatalogUnavailable
	}

	options := make([]response_models.ActivityOption, 0, len(activities))
	for _, a := range activities {
		options = append(options, response_models.ActivityOption{
			Name:     a.Name,
			Price:    a.Price,
			Category: a.Category,
		})
	}
	return options, nil
}
