package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yash6314/invigilationMailService/internal/model"
)

// HallRepository resolves hall reference data.
type HallRepository interface {
	GetByID(ctx context.Context, id string) (*model.Hall, error)
}

type hallRepo struct {
	db *gorm.DB
}

// NewHallRepo creates the GORM-backed HallRepository.
func NewHallRepo(db *gorm.DB) HallRepository {
	return &hallRepo{db: db}
}

func (r *hallRepo) GetByID(ctx context.Context, id string) (*model.Hall, error) {
	var hall model.Hall
	err := r.db.WithContext(ctx).
		Where("hall_id = ?", id).
		First(&hall).Error
	if err != nil {
		return nil, err
	}
	return &hall, nil
}
