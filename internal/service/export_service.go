package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/yash6314/invigilationMailService/internal/repository"
)

// ── export errors ──

var ErrNoAssignments = errors.New("no invigilation records in the given range")

// ExportService produces the duty roster as an Excel workbook.
//
// The roster is an operator-facing view: one row per assignment with the
// invigilator names, their external identifiers, and the mail delivery
// state. Built in memory and returned as a buffer; the handler sets the
// download headers.
type ExportService interface {
	ExportRoster(ctx context.Context, from, to time.Time) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

var rosterHeaders = []string{"Date", "Time", "Venue", "Hall", "Floor", "Invigilators", "Mail Sent", "Mail Sent At"}

func (s *exportService) ExportRoster(ctx context.Context, from, to time.Time) (*bytes.Buffer, string, error) {
	rows, err := s.repo.Invigilation.ListRange(ctx, from, to)
	if err != nil {
		s.logger.Error("roster query failed", zap.Error(err))
		return nil, "", err
	}
	if len(rows) == 0 {
		return nil, "", ErrNoAssignments
	}

	// Name and reference resolution share the pipeline's memo caches, so
	// a person on ten duties costs one lookup.
	r := newRun(s.repo, s.logger)

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Duty Roster"
	f.SetSheetName("Sheet1", sheet)

	for col, h := range rosterHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i := range rows {
		inv := &rows[i]
		duty := r.dutyFromAssignment(ctx, inv)

		names := make([]string, 0, len(inv.QIDs))
		for _, qid := range inv.QIDs {
			person := r.resolvePerson(ctx, qid)
			if person.Name == "" {
				names = append(names, qid)
				continue
			}
			names = append(names, fmt.Sprintf("%s (%s: %s)", person.Name, person.IDLabel, person.IDValue))
		}

		sentAt := ""
		if inv.MailSentAt != nil {
			sentAt = inv.MailSentAt.Format(time.RFC3339)
		}

		values := []interface{}{
			duty.Date, duty.TimeRange, duty.Venue, duty.Hall, duty.Floor,
			strings.Join(names, ", "), inv.MailSent, sentAt,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("roster workbook write failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("duty_roster_%s_%s.xlsx", from.Format(dateLayout), to.Format(dateLayout))
	return buf, filename, nil
}
