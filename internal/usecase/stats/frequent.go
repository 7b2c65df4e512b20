package stats

import (
	"context"

	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	"github.com/BruksfildServices01/softbarber/internal/domain/cut"
	domain "github.com/BruksfildServices01/softbarber/internal/domain/stats"
	"github.com/BruksfildServices01/softbarber/internal/timezone"
)

type FrequentInput struct {
	Identity  access.Identity
	BarberID  *uint
	StartDate string
	EndDate   string
	MinCuts   int
	Limit     int
}

type FrequentClients struct {
	cuts  cut.Repository
	clock Clock
}

func NewFrequentClients(
	cuts cut.Repository,
	clock Clock,
) *FrequentClients {
	return &FrequentClients{
		cuts:  cuts,
		clock: clock,
	}
}

// Execute covers all history unless bounds are given.
func (uc *FrequentClients) Execute(
	ctx context.Context,
	in FrequentInput,
) ([]domain.FrequentClient, error) {

	f := cut.Filter{
		BarberID: access.ScopeBarber(in.Identity, in.BarberID),
	}

	if in.StartDate != "" {
		from, err := timezone.ParseBound(in.StartDate, uc.clock.Loc, false)
		if err != nil {
			return nil, ErrInvalidDate
		}
		f.From = &from
	}
	if in.EndDate != "" {
		to, err := timezone.ParseBound(in.EndDate, uc.clock.Loc, true)
		if err != nil {
			return nil, ErrInvalidDate
		}
		f.To = &to
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return nil, ErrInvalidRange
	}

	rows, err := uc.cuts.StatRows(ctx, f)
	if err != nil {
		return nil, err
	}

	return domain.FrequentClients(rows, domain.FrequentOptions{
		MinCuts: in.MinCuts,
		Limit:   in.Limit,
	}), nil
}
