package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yash6314/invigilationMailService/internal/model"
)

// PersonRepository is the identity data access interface.
type PersonRepository interface {
	GetByQID(ctx context.Context, qid string) (*model.Person, error)
	GetStaffDetail(ctx context.Context, qid string) (*model.StaffDetail, error)
	GetStudentDetail(ctx context.Context, qid string) (*model.StudentDetail, error)
	// Reverse lookups for the single-recipient path.
	GetStaffDetailByEID(ctx context.Context, eid string) (*model.StaffDetail, error)
	GetStudentDetailByHTNO(ctx context.Context, htno string) (*model.StudentDetail, error)
}

type personRepo struct {
	db *gorm.DB
}

// NewPersonRepo creates the GORM-backed PersonRepository.
func NewPersonRepo(db *gorm.DB) PersonRepository {
	return &personRepo{db: db}
}

func (r *personRepo) GetByQID(ctx context.Context, qid string) (*model.Person, error) {
	var person model.Person
	err := r.db.WithContext(ctx).
		Where("qid = ?", qid).
		First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepo) GetStaffDetail(ctx context.Context, qid string) (*model.StaffDetail, error) {
	var detail model.StaffDetail
	err := r.db.WithContext(ctx).
		Where("qid = ?", qid).
		First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *personRepo) GetStudentDetail(ctx context.Context, qid string) (*model.StudentDetail, error) {
	var detail model.StudentDetail
	err := r.db.WithContext(ctx).
		Where("qid = ?", qid).
		First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *personRepo) GetStaffDetailByEID(ctx context.Context, eid string) (*model.StaffDetail, error) {
	var detail model.StaffDetail
	err := r.db.WithContext(ctx).
		Where("eid = ?", eid).
		First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *personRepo) GetStudentDetailByHTNO(ctx context.Context, htno string) (*model.StudentDetail, error) {
	var detail model.StudentDetail
	err := r.db.WithContext(ctx).
		Where("htno = ?", htno).
		First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}
