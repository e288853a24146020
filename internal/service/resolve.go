package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yash6314/invigilationMailService/internal/model"
	"github.com/yash6314/invigilationMailService/internal/repository"
)

// Generic identifier label used when no role-specific record exists.
const labelQID = "QID"

// Role-specific identifier labels.
const (
	labelEID  = "EID"
	labelHTNO = "HTNO"
)

// resolvedPerson is the identity-resolver output for one QID.
// An empty MailID marks the person unresolvable for dispatch.
type resolvedPerson struct {
	QID     string
	Name    string
	MailID  string
	IDLabel string
	IDValue string
}

func (p *resolvedPerson) contactable() bool { return p.MailID != "" }

// recipientBundle aggregates one person's duty records for a single run.
type recipientBundle struct {
	person *resolvedPerson
	duties []dutyRecord
}

// run owns all per-invocation state of the pipeline: the memo caches for
// identity and reference lookups, the aggregation map, and the failure
// count. A run value is created per pipeline invocation and discarded at
// its end; it is never shared between runs.
type run struct {
	repo   *repository.Repository
	logger *zap.Logger

	persons map[string]*resolvedPerson
	halls   map[string]*model.Hall  // nil entry = absent/unreadable
	venues  map[string]*model.Venue // nil entry = absent/unreadable

	bundles      map[string]*recipientBundle
	order        []string // QIDs in first-seen order, for stable dispatch
	contributing map[string]struct{}
	failed       int
}

func newRun(repo *repository.Repository, logger *zap.Logger) *run {
	return &run{
		repo:         repo,
		logger:       logger,
		persons:      make(map[string]*resolvedPerson),
		halls:        make(map[string]*model.Hall),
		venues:       make(map[string]*model.Venue),
		bundles:      make(map[string]*recipientBundle),
		contributing: make(map[string]struct{}),
	}
}

// resolvePerson resolves a QID to a person at most once per run. A person
// without a mail address (or whose base record cannot be read) is cached
// as unresolvable and counted as exactly one failure for the run.
func (r *run) resolvePerson(ctx context.Context, qid string) *resolvedPerson {
	if p, ok := r.persons[qid]; ok {
		return p
	}

	person, err := r.repo.Person.GetByQID(ctx, qid)
	if err != nil || person.MailID == nil || *person.MailID == "" {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Error("person lookup failed", zap.String("qid", qid), zap.Error(err))
		} else {
			r.logger.Error("mail address missing", zap.String("qid", qid))
		}
		r.failed++
		sentinel := &resolvedPerson{QID: qid}
		r.persons[qid] = sentinel
		return sentinel
	}

	resolved := &resolvedPerson{
		QID:     qid,
		Name:    person.Name,
		MailID:  *person.MailID,
		IDLabel: labelQID,
		IDValue: qid,
	}

	// Role-specific external identifier; any sub-record problem falls
	// back to the generic QID label.
	switch person.Type {
	case model.RoleStaff:
		detail, derr := r.repo.Person.GetStaffDetail(ctx, qid)
		switch {
		case derr == nil && detail.EID != "":
			resolved.IDLabel = labelEID
			resolved.IDValue = detail.EID
		case derr != nil && !errors.Is(derr, gorm.ErrRecordNotFound):
			r.logger.Warn("staff detail lookup failed", zap.String("qid", qid), zap.Error(derr))
		}
	case model.RoleStudent:
		detail, derr := r.repo.Person.GetStudentDetail(ctx, qid)
		switch {
		case derr == nil && detail.HTNO != "":
			resolved.IDLabel = labelHTNO
			resolved.IDValue = detail.HTNO
		case derr != nil && !errors.Is(derr, gorm.ErrRecordNotFound):
			r.logger.Warn("student detail lookup failed", zap.String("qid", qid), zap.Error(derr))
		}
	}

	r.persons[qid] = resolved
	return resolved
}

// resolveHall resolves a hall reference at most once per run. Absent or
// unreadable references resolve to nil; the renderer leaves blanks.
func (r *run) resolveHall(ctx context.Context, id *string) *model.Hall {
	if id == nil {
		return nil
	}
	if hall, ok := r.halls[*id]; ok {
		return hall
	}
	hall, err := r.repo.Hall.GetByID(ctx, *id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("hall lookup failed", zap.String("hall_id", *id), zap.Error(err))
		}
		hall = nil
	}
	r.halls[*id] = hall
	return hall
}

// resolveVenue resolves a venue reference at most once per run.
func (r *run) resolveVenue(ctx context.Context, id *string) *model.Venue {
	if id == nil {
		return nil
	}
	if venue, ok := r.venues[*id]; ok {
		return venue
	}
	venue, err := r.repo.Venue.GetByID(ctx, *id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("venue lookup failed", zap.String("venue_id", *id), zap.Error(err))
		}
		venue = nil
	}
	r.venues[*id] = venue
	return venue
}

// resolveIdentifier maps an external identifier value to a QID, trying the
// staff EID lookup first, then the student HTNO lookup. Lookup errors are
// treated as no-match so one bad sub-table cannot block the other.
func resolveIdentifier(ctx context.Context, repo *repository.Repository, idValue string) (qid, label string, err error) {
	if staff, serr := repo.Person.GetStaffDetailByEID(ctx, idValue); serr == nil {
		return staff.QID, labelEID, nil
	}
	if student, serr := repo.Person.GetStudentDetailByHTNO(ctx, idValue); serr == nil {
		return student.QID, labelHTNO, nil
	}
	return "", "", ErrIdentifierNotFound
}
