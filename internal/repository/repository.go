package repository

import "gorm.io/gorm"

// Repository aggregates all repository interfaces.
type Repository struct {
	Invigilation InvigilationRepository
	Hall         HallRepository
	Venue        VenueRepository
	Person       PersonRepository
}

// NewRepository builds the aggregate with GORM-backed implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Invigilation: NewInvigilationRepo(db),
		Hall:         NewHallRepo(db),
		Venue:        NewVenueRepo(db),
		Person:       NewPersonRepo(db),
	}
}
