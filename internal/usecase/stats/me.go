package stats

import (
	"context"

	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	"github.com/BruksfildServices01/softbarber/internal/domain/cut"
	domain "github.com/BruksfildServices01/softbarber/internal/domain/stats"
)

type SelfStats struct {
	Today   domain.Summary  `json:"today"`
	History []domain.Bucket `json:"history"`
}

// MyStats is always scoped to the caller, admins included.
type MyStats struct {
	cuts  cut.Repository
	clock Clock
}

func NewMyStats(
	cuts cut.Repository,
	clock Clock,
) *MyStats {
	return &MyStats{
		cuts:  cuts,
		clock: clock,
	}
}

func (uc *MyStats) Execute(
	ctx context.Context,
	id access.Identity,
) (*SelfStats, error) {

	now := uc.clock.now()
	self := id.UserID

	history := domain.Daily.DefaultWindow(now)
	rows, err := uc.cuts.StatRows(ctx, filterFor(history, &self))
	if err != nil {
		return nil, err
	}

	today := domain.Today(now)
	var todays []cut.StatRow
	for _, r := range rows {
		if today.Contains(r.CreatedAt) {
			todays = append(todays, r)
		}
	}

	return &SelfStats{
		Today:   domain.Summarize(todays),
		History: domain.GroupByPeriod(rows, domain.Daily, uc.clock.Loc),
	}, nil
}
