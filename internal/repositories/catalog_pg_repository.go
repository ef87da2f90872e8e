package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"wander/internal/models/db_models"
)

// PostgresCatalogRepository serves the same catalog contract from Postgres. The
// tables are migrated and seeded from the static inventory on first start, so a
// fresh database behaves exactly like the static repository.
type PostgresCatalogRepository struct {
	db *gorm.DB
}

func NewPostgresCatalogRepository(db *gorm.DB) (CatalogRepository, error) {
	if err := db.AutoMigrate(&db_models.Flight{}, &db_models.Hotel{}, &db_models.Activity{}); err != nil {
		return nil, fmt.Errorf("catalog migration failed: %w", err)
	}

	if err := seedCatalog(db); err != nil {
		return nil, fmt.Errorf("catalog seeding failed: %w", err)
	}

	return &PostgresCatalogRepository{db: db}, nil
}

func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&db_models.Flight{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, flights := range flightTable {
			if err := tx.Create(&flights).Error; err != nil {
				return err
			}
		}
		for _, hotels := range hotelTable {
			if err := tx.Create(&hotels).Error; err != nil {
				return err
			}
		}
		for _, activities := range activityTable {
			if err := tx.Create(&activities).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PostgresCatalogRepository) GetFlights(ctx context.Context, origin string, destination string) ([]db_models.Flight, error) {
	var flights []db_models.Flight
	err := r.db.WithContext(ctx).
		Where("origin = ? AND destination = ?", origin, destination).
		Find(&flights).Error
	if err != nil {
		return nil, err
	}

	if len(flights) == 0 {
		return []db_models.Flight{genericFlight(origin, destination)}, nil
	}
	return flights, nil
}

func (r *PostgresCatalogRepository) GetHotels(ctx context.Context, destination string) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	err := r.db.WithContext(ctx).
		Where("destination = ?", destination).
		Find(&hotels).Error
	if err != nil {
		return nil, err
	}

	if len(hotels) == 0 {
		return []db_models.Hotel{genericHotel(destination)}, nil
	}
	return hotels, nil
}

func (r *PostgresCatalogRepository) GetActivities(ctx context.Context, destination string) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	err := r.db.WithContext(ctx).
		Where("destination = ?", destination).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}

	if len(activities) == 0 {
		return []db_models.Activity{genericActivity(destination)}, nil
	}
	return activities, nil
}
