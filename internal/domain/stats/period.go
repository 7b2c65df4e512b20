package stats

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/softbarber/internal/httperr"
	"github.com/BruksfildServices01/softbarber/internal/timezone"
)

type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
)

var ErrInvalidPeriod = httperr.Validation("invalid_period", "Periodo inválido.")

func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case Daily, Weekly, Monthly:
		return p, nil
	}
	return "", ErrInvalidPeriod
}

// Key truncates t to its period in loc. Keys of one period sort
// chronologically as strings.
func (p Period) Key(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	switch p {
	case Weekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case Monthly:
		return t.Format("2006-01")
	}
	return t.Format(timezone.DateLayout)
}

// Window is an inclusive time range.
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// DefaultWindow ends at now and covers the last 30 days, 12 ISO weeks or
// 12 months, the current one included.
func (p Period) DefaultWindow(now time.Time) Window {
	var from time.Time
	switch p {
	case Weekly:
		from = timezone.StartOfISOWeek(now).AddDate(0, 0, -7*11)
	case Monthly:
		from = timezone.StartOfMonth(now).AddDate(0, -11, 0)
	default:
		from = timezone.StartOfDay(now).AddDate(0, 0, -29)
	}
	return Window{From: from, To: now}
}

// Today spans the calendar day of now.
func Today(now time.Time) Window {
	return Window{
		From: timezone.StartOfDay(now),
		To:   timezone.EndOfDay(now),
	}
}
