package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yash6314/invigilationMailService/config"
	"github.com/yash6314/invigilationMailService/internal/dto"
	"github.com/yash6314/invigilationMailService/internal/repository"
)

// ── notification errors ──

var (
	ErrIdentifierNotFound = errors.New("no person matches the given identifier")
	ErrNoContact          = errors.New("no mail address on record for the person")
	ErrNoDuties           = errors.New("no invigilation duties found in the given range")
	ErrSendFailed         = errors.New("mail dispatch failed")
)

// MailTransport is the outbound mail collaborator. pkg/mailer provides
// the SMTP implementation; tests substitute a recording fake.
type MailTransport interface {
	Send(ctx context.Context, from, to, subject, htmlBody, textBody string) error
}

// BulkReport summarizes one bulk pipeline run.
type BulkReport struct {
	Assignments  int  `json:"assignments"`
	Recipients   int  `json:"recipients"`
	Sent         int  `json:"sent"`
	Failed       int  `json:"failed"`
	FlagsUpdated bool `json:"flags_updated"`
}

// NotifyService runs the duty aggregation and dispatch pipeline.
type NotifyService interface {
	// SendBulk notifies every person assigned to a pending invigilation
	// inside [from, to]: one mail per person covering all their duties,
	// then an all-or-nothing delivery-flag commit.
	SendBulk(ctx context.Context, from, to time.Time) (*BulkReport, error)
	// SendToRecipient notifies a single person looked up by EID or HTNO,
	// covering all their duties in [from, to] regardless of delivery
	// state. Performs no flag reconciliation.
	SendToRecipient(ctx context.Context, idValue string, from, to time.Time) (*dto.SingleMailResponse, error)
}

type notifyService struct {
	repo      *repository.Repository
	transport MailTransport
	mailCfg   *config.MailConfig
	logger    *zap.Logger
}

// NewNotifyService creates a NotifyService instance.
func NewNotifyService(repo *repository.Repository, transport MailTransport, mailCfg *config.MailConfig, logger *zap.Logger) NotifyService {
	return &notifyService{
		repo:      repo,
		transport: transport,
		mailCfg:   mailCfg,
		logger:    logger,
	}
}

// ────────────────────── SendBulk ──────────────────────

func (s *notifyService) SendBulk(ctx context.Context, from, to time.Time) (*BulkReport, error) {
	s.logger.Info("bulk mail run started",
		zap.String("from", from.Format(dateLayout)),
		zap.String("to", to.Format(dateLayout)),
	)

	// Selection. A failure here aborts the run before any processing.
	pending, err := s.repo.Invigilation.ListPending(ctx, from, to)
	if err != nil {
		s.logger.Error("invigilation selection failed", zap.Error(err))
		return nil, err
	}
	if len(pending) == 0 {
		s.logger.Info("no pending invigilation records in range")
		return &BulkReport{}, nil
	}

	// Fan-out and aggregation over run-scoped caches.
	r := newRun(s.repo, s.logger)
	for i := range pending {
		r.fanOut(ctx, &pending[i])
	}

	report := &BulkReport{
		Assignments: len(pending),
		Recipients:  len(r.order),
		Failed:      r.failed, // unresolvable contacts
	}

	// Dispatch: one mail per aggregated person, failures stay local.
	opts := renderOptions{
		SemesterLabel: s.mailCfg.SemesterLabel,
		ContactEmail:  s.mailCfg.ContactEmail,
		Bulk:          true,
	}
	for _, qid := range r.order {
		bundle := r.bundles[qid]

		doc, err := renderDocument(bundle.person, bundle.duties, opts)
		if err != nil {
			s.logger.Error("render failed", zap.String("qid", qid), zap.Error(err))
			report.Failed++
			continue
		}

		if err := s.transport.Send(ctx, s.mailCfg.From, bundle.person.MailID, doc.Subject, doc.HTML, doc.Text); err != nil {
			s.logger.Error("mail failed",
				zap.String("to", bundle.person.MailID),
				zap.Error(err),
			)
			report.Failed++
			continue
		}

		report.Sent++
		s.logger.Info("bulk mail sent",
			zap.String("to", bundle.person.MailID),
			zap.Int("duties", len(bundle.duties)),
		)
	}

	// Reconciliation: flags are committed for the whole batch or not at
	// all. A single failed recipient leaves every assignment pending so
	// the next run re-selects the full set.
	if report.Failed == 0 && len(r.contributing) > 0 {
		ids := r.contributingIDs()
		if err := s.repo.Invigilation.MarkSent(ctx, ids, time.Now()); err != nil {
			s.logger.Error("delivery flag update failed", zap.Error(err))
			return report, err
		}
		report.FlagsUpdated = true
		s.logger.Info("bulk mails completed, delivery flags updated",
			zap.Int("assignments", len(ids)),
			zap.Int("sent", report.Sent),
		)
	} else {
		s.logger.Warn("delivery flags not updated",
			zap.Int("failed", report.Failed),
			zap.Int("contributing", len(r.contributing)),
		)
	}

	return report, nil
}

// ────────────────────── SendToRecipient ──────────────────────

func (s *notifyService) SendToRecipient(ctx context.Context, idValue string, from, to time.Time) (*dto.SingleMailResponse, error) {
	qid, label, err := resolveIdentifier(ctx, s.repo, idValue)
	if err != nil {
		return nil, err
	}

	person, err := s.repo.Person.GetByQID(ctx, qid)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("person lookup failed", zap.String("qid", qid), zap.Error(err))
		}
		return nil, ErrNoContact
	}
	if person.MailID == nil || *person.MailID == "" {
		return nil, ErrNoContact
	}

	invigilations, err := s.repo.Invigilation.ListByPerson(ctx, from, to, qid)
	if err != nil {
		s.logger.Error("invigilation selection failed", zap.String("qid", qid), zap.Error(err))
		return nil, err
	}
	if len(invigilations) == 0 {
		return nil, ErrNoDuties
	}

	// The reference caches still apply: a person invigilating the same
	// hall twice costs one hall lookup.
	r := newRun(s.repo, s.logger)
	duties := make([]dutyRecord, 0, len(invigilations))
	for i := range invigilations {
		duties = append(duties, r.dutyFromAssignment(ctx, &invigilations[i]))
	}

	recipient := &resolvedPerson{
		QID:     qid,
		Name:    person.Name,
		MailID:  *person.MailID,
		IDLabel: label,
		IDValue: idValue,
	}

	doc, err := renderDocument(recipient, duties, renderOptions{
		SemesterLabel: s.mailCfg.SemesterLabel,
		ContactEmail:  s.mailCfg.ContactEmail,
	})
	if err != nil {
		return nil, err
	}

	if err := s.transport.Send(ctx, s.mailCfg.From, recipient.MailID, doc.Subject, doc.HTML, doc.Text); err != nil {
		s.logger.Error("individual mail failed", zap.String("to", recipient.MailID), zap.Error(err))
		return nil, ErrSendFailed
	}

	s.logger.Info("individual mail sent",
		zap.String("to", recipient.MailID),
		zap.Int("duties", len(duties)),
	)

	return &dto.SingleMailResponse{
		Recipient: person.Name,
		Duties:    len(duties),
	}, nil
}
