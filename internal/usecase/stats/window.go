package stats

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/softbarber/internal/domain/cut"
	domain "github.com/BruksfildServices01/softbarber/internal/domain/stats"
	"github.com/BruksfildServices01/softbarber/internal/domain/user"
	"github.com/BruksfildServices01/softbarber/internal/httperr"
	"github.com/BruksfildServices01/softbarber/internal/timezone"
)

var (
	ErrInvalidDate  = httperr.Validation("invalid_date", "Fecha inválida.")
	ErrInvalidRange = httperr.Validation("invalid_range", "La fecha inicial es posterior a la final.")
)

// Clock is shared by every stats use case.
type Clock struct {
	Loc *time.Location
	Now func() time.Time
}

func NewClock(loc *time.Location) Clock {
	return Clock{Loc: loc, Now: time.Now}
}

func (c Clock) now() time.Time {
	return c.Now().In(c.Loc)
}

// window overrides def with whichever bounds were given. Plain dates are
// inclusive whole days.
func (c Clock) window(startDate, endDate string, def domain.Window) (domain.Window, error) {
	w := def

	if s := strings.TrimSpace(startDate); s != "" {
		from, err := timezone.ParseBound(s, c.Loc, false)
		if err != nil {
			return w, ErrInvalidDate
		}
		w.From = from
	}
	if s := strings.TrimSpace(endDate); s != "" {
		to, err := timezone.ParseBound(s, c.Loc, true)
		if err != nil {
			return w, ErrInvalidDate
		}
		w.To = to
	}

	if w.From.After(w.To) {
		return w, ErrInvalidRange
	}
	return w, nil
}

func filterFor(w domain.Window, barberID *uint) cut.Filter {
	from, to := w.From, w.To
	return cut.Filter{
		BarberID: barberID,
		From:     &from,
		To:       &to,
	}
}

func barberNames(
	ctx context.Context,
	users user.Repository,
	rows []cut.StatRow,
) (map[uint]string, error) {
	ids := domain.BarberIDs(rows)
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	list, err := users.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, u := range list {
		names[u.ID] = u.DisplayName()
	}
	return names, nil
}
