package service

import (
	"context"
	"time"

	"github.com/yash6314/invigilationMailService/internal/model"
)

// dutyRecord is one rendered-table row, derived per (assignment, person)
// pair and never persisted.
type dutyRecord struct {
	Date      string
	TimeRange string
	Venue     string
	Hall      string
	Floor     string
}

const dateLayout = "2006-01-02"

// formatTimeRange renders clock times separated by an en dash,
// e.g. "9:30:00 AM – 12:30:00 PM".
func formatTimeRange(start, end time.Time) string {
	return start.Format("3:04:05 PM") + " – " + end.Format("3:04:05 PM")
}

// dutyFromAssignment builds the duty row shared by every person assigned
// to the given invigilation, resolving its references through the run's
// memo caches. Missing references leave their columns blank.
func (r *run) dutyFromAssignment(ctx context.Context, inv *model.Invigilation) dutyRecord {
	hall := r.resolveHall(ctx, inv.HallID)
	venue := r.resolveVenue(ctx, inv.VenueID)

	duty := dutyRecord{
		Date:      inv.Date.Format(dateLayout),
		TimeRange: formatTimeRange(inv.StartTime, inv.EndTime),
	}
	if venue != nil {
		duty.Venue = venue.VenueName
	}
	if hall != nil {
		duty.Hall = hall.HallName
		duty.Floor = hall.Floor
	}
	return duty
}

// fanOut expands one assignment into per-person duty records. Every
// assigned QID with a usable contact gets exactly one record appended to
// its bundle, and the assignment joins the contributing set as soon as
// any of its people resolves.
func (r *run) fanOut(ctx context.Context, inv *model.Invigilation) {
	duty := r.dutyFromAssignment(ctx, inv)

	for _, qid := range inv.QIDs {
		person := r.resolvePerson(ctx, qid)
		if !person.contactable() {
			continue
		}

		bundle, ok := r.bundles[qid]
		if !ok {
			bundle = &recipientBundle{person: person}
			r.bundles[qid] = bundle
			r.order = append(r.order, qid)
		}
		bundle.duties = append(bundle.duties, duty)

		r.contributing[inv.InvigilationID] = struct{}{}
	}
}

// contributingIDs returns the contributing assignment identifiers.
func (r *run) contributingIDs() []string {
	ids := make([]string, 0, len(r.contributing))
	for id := range r.contributing {
		ids = append(ids, id)
	}
	return ids
}
