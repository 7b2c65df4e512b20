package stats

import (
	"context"

	"github.com/BruksfildServices01/softbarber/internal/domain/cut"
	domain "github.com/BruksfildServices01/softbarber/internal/domain/stats"
)

type PeriodInput struct {
	Period    string
	BarberID  *uint
	StartDate string
	EndDate   string
}

// PeriodStats groups cuts by day, ISO week or month in the shop timezone.
type PeriodStats struct {
	cuts  cut.Repository
	clock Clock
}

func NewPeriodStats(
	cuts cut.Repository,
	clock Clock,
) *PeriodStats {
	return &PeriodStats{
		cuts:  cuts,
		clock: clock,
	}
}

func (uc *PeriodStats) Execute(
	ctx context.Context,
	in PeriodInput,
) (*domain.Aggregate, error) {

	p, err := domain.ParsePeriod(in.Period)
	if err != nil {
		return nil, err
	}

	w, err := uc.clock.window(in.StartDate, in.EndDate, p.DefaultWindow(uc.clock.now()))
	if err != nil {
		return nil, err
	}

	var barberID *uint
	if in.BarberID != nil && *in.BarberID != 0 {
		barberID = in.BarberID
	}

	rows, err := uc.cuts.StatRows(ctx, filterFor(w, barberID))
	if err != nil {
		return nil, err
	}

	agg := domain.BuildAggregate(rows, p, w, uc.clock.Loc)
	return &agg, nil
}
