package handler

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// parseDateRange validates and parses an inclusive [from, to] range.
func parseDateRange(fromStr, toStr string) (from, to time.Time, err error) {
	from, err = time.Parse(dateLayout, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from_date %q, expected YYYY-MM-DD", fromStr)
	}
	to, err = time.Parse(dateLayout, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to_date %q, expected YYYY-MM-DD", toStr)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("to_date must not precede from_date")
	}
	return from, to, nil
}
