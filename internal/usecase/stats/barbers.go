package stats

import (
	"context"

	"github.com/BruksfildServices01/softbarber/internal/domain/cut"
	domain "github.com/BruksfildServices01/softbarber/internal/domain/stats"
	"github.com/BruksfildServices01/softbarber/internal/domain/user"
)

type RangeInput struct {
	StartDate string
	EndDate   string
}

// BarberBreakdown defaults to today.
type BarberBreakdown struct {
	cuts  cut.Repository
	users user.Repository
	clock Clock
}

func NewBarberBreakdown(
	cuts cut.Repository,
	users user.Repository,
	clock Clock,
) *BarberBreakdown {
	return &BarberBreakdown{
		cuts:  cuts,
		users: users,
		clock: clock,
	}
}

func (uc *BarberBreakdown) Execute(
	ctx context.Context,
	in RangeInput,
) ([]domain.BarberIncome, error) {

	w, err := uc.clock.window(in.StartDate, in.EndDate, domain.Today(uc.clock.now()))
	if err != nil {
		return nil, err
	}

	rows, err := uc.cuts.StatRows(ctx, filterFor(w, nil))
	if err != nil {
		return nil, err
	}

	names, err := barberNames(ctx, uc.users, rows)
	if err != nil {
		return nil, err
	}

	return domain.GroupByBarber(rows, names), nil
}

// ======================================================
// DASHBOARD
// ======================================================

type TodayStats struct {
	TotalIncome float64 `json:"totalIncome"`
	TotalCuts   int     `json:"totalCuts"`
}

type DashboardResult struct {
	TodayStats     TodayStats            `json:"todayStats"`
	IncomeByBarber []domain.BarberIncome `json:"incomeByBarber"`
}

type Dashboard struct {
	cuts  cut.Repository
	users user.Repository
	clock Clock
}

func NewDashboard(
	cuts cut.Repository,
	users user.Repository,
	clock Clock,
) *Dashboard {
	return &Dashboard{
		cuts:  cuts,
		users: users,
		clock: clock,
	}
}

func (uc *Dashboard) Execute(ctx context.Context) (*DashboardResult, error) {
	rows, err := uc.cuts.StatRows(ctx, filterFor(domain.Today(uc.clock.now()), nil))
	if err != nil {
		return nil, err
	}

	names, err := barberNames(ctx, uc.users, rows)
	if err != nil {
		return nil, err
	}

	sum := domain.Summarize(rows)
	return &DashboardResult{
		TodayStats: TodayStats{
			TotalIncome: sum.TotalIncome,
			TotalCuts:   sum.TotalCuts,
		},
		IncomeByBarber: domain.GroupByBarber(rows, names),
	}, nil
}
