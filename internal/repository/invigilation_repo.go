package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yash6314/invigilationMailService/internal/model"
)

// InvigilationRepository is the duty-assignment data access interface.
type InvigilationRepository interface {
	// ListPending returns assignments in [from, to] still awaiting mail:
	// mail_sent = false OR force_resend = true.
	ListPending(ctx context.Context, from, to time.Time) ([]model.Invigilation, error)
	// ListRange returns every assignment in [from, to] regardless of
	// delivery state (roster export).
	ListRange(ctx context.Context, from, to time.Time) ([]model.Invigilation, error)
	// ListByPerson returns all assignments in [from, to] whose qids
	// column contains the given QID, regardless of delivery state.
	ListByPerson(ctx context.Context, from, to time.Time, qid string) ([]model.Invigilation, error)
	// MarkSent flips the delivery-state flags for the whole id set in a
	// single UPDATE. Callers rely on this being one set-scoped statement.
	MarkSent(ctx context.Context, ids []string, sentAt time.Time) error
}

type invigilationRepo struct {
	db *gorm.DB
}

// NewInvigilationRepo creates the GORM-backed InvigilationRepository.
func NewInvigilationRepo(db *gorm.DB) InvigilationRepository {
	return &invigilationRepo{db: db}
}

func (r *invigilationRepo) ListPending(ctx context.Context, from, to time.Time) ([]model.Invigilation, error) {
	var rows []model.Invigilation
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from, to).
		Where("mail_sent = false OR force_resend = true").
		Order("date, start_time").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *invigilationRepo) ListRange(ctx context.Context, from, to time.Time) ([]model.Invigilation, error) {
	var rows []model.Invigilation
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date, start_time").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *invigilationRepo) ListByPerson(ctx context.Context, from, to time.Time, qid string) ([]model.Invigilation, error) {
	var rows []model.Invigilation
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from, to).
		Where("qids @> ?", model.StringArray{qid}).
		Order("date, start_time").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *invigilationRepo) MarkSent(ctx context.Context, ids []string, sentAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.Invigilation{}).
		Where("invigilation_id IN ?", ids).
		Updates(map[string]interface{}{
			"mail_sent":    true,
			"mail_sent_at": sentAt,
			"force_resend": false,
		}).Error
}
