package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	"github.com/BruksfildServices01/softbarber/internal/domain/cut"
	domain "github.com/BruksfildServices01/softbarber/internal/domain/stats"
	"github.com/BruksfildServices01/softbarber/internal/mocks"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

var now = time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC)

func fixedClock() Clock {
	return Clock{Loc: time.UTC, Now: func() time.Time { return now }}
}

func at(day, hour int) time.Time {
	return time.Date(2026, 10, day, hour, 0, 0, 0, time.UTC)
}

func uintPtr(v uint) *uint { return &v }

func TestPeriodStats_DefaultDailyWindow(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cuts := mocks.NewMockCutRepository(ctrl)

	rows := []cut.StatRow{
		{BarberID: 2, Amount: 10.10, PaymentMethod: "efectivo", CreatedAt: at(17, 9)},
		{BarberID: 2, Amount: 20.20, PaymentMethod: "tarjeta", CreatedAt: at(17, 18)},
		{BarberID: 3, Amount: 5.05, PaymentMethod: "efectivo", CreatedAt: at(18, 10)},
	}

	cuts.EXPECT().
		StatRows(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, f cut.Filter) ([]cut.StatRow, error) {
			assert.Equal(t, time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC), *f.From)
			assert.Equal(t, now, *f.To)
			assert.Nil(t, f.BarberID)
			return rows, nil
		})

	agg, err := NewPeriodStats(cuts, fixedClock()).Execute(ctx, PeriodInput{Period: "daily"})
	require.NoError(t, err)

	assert.Equal(t, 3, agg.Count)
	assert.Equal(t, 35.35, agg.Total)
	require.Len(t, agg.Buckets, 2)
	assert.Equal(t, domain.Bucket{Period: "2026-10-17", Cuts: 2, Income: 30.30}, agg.Buckets[0])
	assert.Equal(t, domain.Bucket{Period: "2026-10-18", Cuts: 1, Income: 5.05}, agg.Buckets[1])
}

func TestPeriodStats_ExplicitRange(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cuts := mocks.NewMockCutRepository(ctrl)

	cuts.EXPECT().
		StatRows(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, f cut.Filter) ([]cut.StatRow, error) {
			assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *f.From)
			assert.Equal(t, time.Date(2026, 3, 31, 23, 59, 59, 999999999, time.UTC), *f.To)
			require.NotNil(t, f.BarberID)
			assert.Equal(t, uint(4), *f.BarberID)
			return nil, nil
		})

	uc := NewPeriodStats(cuts, fixedClock())
	agg, err := uc.Execute(ctx, PeriodInput{
		Period:    "monthly",
		BarberID:  uintPtr(4),
		StartDate: "2026-01-01",
		EndDate:   "2026-03-31",
	})
	require.NoError(t, err)
	assert.Empty(t, agg.Buckets)
	assert.Zero(t, agg.Total)

	_, err = uc.Execute(ctx, PeriodInput{Period: "yearly"})
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)

	_, err = uc.Execute(ctx, PeriodInput{Period: "weekly", StartDate: "2026-05-01", EndDate: "2026-04-01"})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cuts := mocks.NewMockCutRepository(ctrl)
	users := mocks.NewMockUserRepository(ctrl)

	cuts.EXPECT().StatRows(ctx, gomock.Any()).Return([]cut.StatRow{
		{BarberID: 3, Amount: 15000, PaymentMethod: "efectivo", CreatedAt: at(18, 9)},
		{BarberID: 2, Amount: 20000, PaymentMethod: "tarjeta", CreatedAt: at(18, 10)},
		{BarberID: 3, Amount: 10000, PaymentMethod: "efectivo", CreatedAt: at(18, 11)},
	}, nil)
	users.EXPECT().ListByIDs(ctx, []uint{3, 2}).Return([]models.User{
		{ID: 2, Name: "Ana", LastName: "Gomez"},
		{ID: 3, Name: "Juan", LastName: "Rios"},
	}, nil)

	got, err := NewDashboard(cuts, users, fixedClock()).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, TodayStats{TotalIncome: 45000, TotalCuts: 3}, got.TodayStats)
	assert.Equal(t, []domain.BarberIncome{
		{BarberID: 3, BarberName: "Juan Rios", TotalIncome: 25000, Cuts: 2},
		{BarberID: 2, BarberName: "Ana Gomez", TotalIncome: 20000, Cuts: 1},
	}, got.IncomeByBarber)
}

func TestBarberBreakdown_NoCuts(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cuts := mocks.NewMockCutRepository(ctrl)

	cuts.EXPECT().
		StatRows(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, f cut.Filter) ([]cut.StatRow, error) {
			assert.Equal(t, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), *f.From)
			return nil, nil
		})

	got, err := NewBarberBreakdown(cuts, mocks.NewMockUserRepository(ctrl), fixedClock()).
		Execute(ctx, RangeInput{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMyStats(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cuts := mocks.NewMockCutRepository(ctrl)

	cuts.EXPECT().
		StatRows(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, f cut.Filter) ([]cut.StatRow, error) {
			require.NotNil(t, f.BarberID)
			assert.Equal(t, uint(2), *f.BarberID)
			return []cut.StatRow{
				{BarberID: 2, Amount: 100, PaymentMethod: "tarjeta", CreatedAt: at(10, 9)},
				{BarberID: 2, Amount: 30, PaymentMethod: "tarjeta", CreatedAt: at(18, 9)},
				{BarberID: 2, Amount: 20, PaymentMethod: "efectivo", CreatedAt: at(18, 10)},
			}, nil
		})

	got, err := NewMyStats(cuts, fixedClock()).
		Execute(ctx, access.Identity{UserID: 2, Role: access.RoleBarbero})
	require.NoError(t, err)

	assert.Equal(t, 2, got.Today.TotalCuts)
	assert.Equal(t, 50.0, got.Today.TotalIncome)
	assert.Equal(t, 25.0, got.Today.AvgTicket)
	require.NotNil(t, got.Today.MostFrequentPayment)
	assert.Equal(t, "efectivo", *got.Today.MostFrequentPayment)
	assert.Len(t, got.History, 2)
}

func TestMyStats_NoCuts(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cuts := mocks.NewMockCutRepository(ctrl)
	cuts.EXPECT().StatRows(ctx, gomock.Any()).Return(nil, nil)

	got, err := NewMyStats(cuts, fixedClock()).
		Execute(ctx, access.Identity{UserID: 2, Role: access.RoleBarbero})
	require.NoError(t, err)
	assert.Zero(t, got.Today.AvgTicket)
	assert.Nil(t, got.Today.MostFrequentPayment)
}

func TestFrequentClients_Scoped(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cuts := mocks.NewMockCutRepository(ctrl)

	linked := uint(7)
	cuts.EXPECT().
		StatRows(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, f cut.Filter) ([]cut.StatRow, error) {
			require.NotNil(t, f.BarberID)
			assert.Equal(t, uint(2), *f.BarberID)
			assert.Nil(t, f.From)
			return []cut.StatRow{
				{BarberID: 2, ClientID: &linked, ClientName: "Luis", ClientLastName: "Perez", Amount: 10, CreatedAt: at(1, 9)},
				{BarberID: 2, ClientID: &linked, ClientName: "Luis", ClientLastName: "Perez", Amount: 10, CreatedAt: at(5, 9)},
				{BarberID: 2, ClientName: "Ana", ClientLastName: "Ruiz", Amount: 10, CreatedAt: at(6, 9)},
			}, nil
		})

	got, err := NewFrequentClients(cuts, fixedClock()).Execute(ctx, FrequentInput{
		Identity: access.Identity{UserID: 2, Role: access.RoleBarbero},
		BarberID: uintPtr(9),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Cuts)
	assert.Equal(t, at(5, 9), got[0].LastVisit)
}
