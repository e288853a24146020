package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/yash6314/invigilationMailService/internal/repository"
)

// CalendarService exports one person's duties as an iCalendar (RFC 5545)
// file, so invigilators can subscribe their duty slots into a personal
// calendar. Uses the same identifier resolution and per-person selection
// as the single-recipient mail path.
type CalendarService interface {
	BuildDutyCalendar(ctx context.Context, idValue string, from, to time.Time) ([]byte, string, error)
}

type calendarService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCalendarService creates a CalendarService instance.
func NewCalendarService(repo *repository.Repository, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, logger: logger}
}

func (s *calendarService) BuildDutyCalendar(ctx context.Context, idValue string, from, to time.Time) ([]byte, string, error) {
	qid, _, err := resolveIdentifier(ctx, s.repo, idValue)
	if err != nil {
		return nil, "", err
	}

	invigilations, err := s.repo.Invigilation.ListByPerson(ctx, from, to, qid)
	if err != nil {
		s.logger.Error("invigilation selection failed", zap.String("qid", qid), zap.Error(err))
		return nil, "", err
	}
	if len(invigilations) == 0 {
		return nil, "", ErrNoDuties
	}

	r := newRun(s.repo, s.logger)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Examination Cell//Invigilation Duties//EN")

	for i := range invigilations {
		inv := &invigilations[i]
		hall := r.resolveHall(ctx, inv.HallID)
		venue := r.resolveVenue(ctx, inv.VenueID)

		event := cal.AddEvent(fmt.Sprintf("%s@invigilation", inv.InvigilationID))
		event.SetDtStampTime(time.Now())
		event.SetStartAt(inv.StartTime)
		event.SetEndAt(inv.EndTime)
		event.SetSummary("Invigilation Duty")

		var location []string
		if venue != nil {
			location = append(location, venue.VenueName)
		}
		if hall != nil {
			location = append(location, hall.HallName)
			if hall.Floor != "" {
				location = append(location, "Floor "+hall.Floor)
			}
		}
		if len(location) > 0 {
			event.SetLocation(strings.Join(location, ", "))
		}
	}

	filename := fmt.Sprintf("duties_%s.ics", idValue)
	return []byte(cal.Serialize()), filename, nil
}
