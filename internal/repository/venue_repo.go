package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yash6314/invigilationMailService/internal/model"
)

// VenueRepository resolves venue reference data.
type VenueRepository interface {
	GetByID(ctx context.Context, id string) (*model.Venue, error)
}

type venueRepo struct {
	db *gorm.DB
}

// NewVenueRepo creates the GORM-backed VenueRepository.
func NewVenueRepo(db *gorm.DB) VenueRepository {
	return &venueRepo{db: db}
}

func (r *venueRepo) GetByID(ctx context.Context, id string) (*model.Venue, error) {
	var venue model.Venue
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", id).
		First(&venue).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}
