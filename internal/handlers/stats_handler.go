package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/softbarber/internal/domain/stats"
	"github.com/BruksfildServices01/softbarber/internal/httperr"
	"github.com/BruksfildServices01/softbarber/internal/httpresp"
	"github.com/BruksfildServices01/softbarber/internal/middleware"
	statsuc "github.com/BruksfildServices01/softbarber/internal/usecase/stats"
)

type StatsHandler struct {
	period    *statsuc.PeriodStats
	barbers   *statsuc.BarberBreakdown
	dashboard *statsuc.Dashboard
	me        *statsuc.MyStats
	frequent  *statsuc.FrequentClients
}

func NewStatsHandler(
	period *statsuc.PeriodStats,
	barbers *statsuc.BarberBreakdown,
	dashboard *statsuc.Dashboard,
	me *statsuc.MyStats,
	frequent *statsuc.FrequentClients,
) *StatsHandler {
	return &StatsHandler{
		period:    period,
		barbers:   barbers,
		dashboard: dashboard,
		me:        me,
		frequent:  frequent,
	}
}

func (h *StatsHandler) Dashboard(c *gin.Context) {
	res, err := h.dashboard.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, res)
}

// Period serves /stats/daily, /stats/weekly and /stats/monthly.
func (h *StatsHandler) Period(p domain.Period) gin.HandlerFunc {
	return func(c *gin.Context) {
		barberID, ok := optionalUint(c, "barberId")
		if !ok {
			return
		}

		agg, err := h.period.Execute(c.Request.Context(), statsuc.PeriodInput{
			Period:    string(p),
			BarberID:  barberID,
			StartDate: c.Query("startDate"),
			EndDate:   c.Query("endDate"),
		})
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		if agg.Buckets == nil {
			agg.Buckets = []domain.Bucket{}
		}
		httpresp.OK(c, agg)
	}
}

func (h *StatsHandler) Barbers(c *gin.Context) {
	rows, err := h.barbers.Execute(c.Request.Context(), statsuc.RangeInput{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Items(c, rows)
}

func (h *StatsHandler) Me(c *gin.Context) {
	res, err := h.me.Execute(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if res.History == nil {
		res.History = []domain.Bucket{}
	}
	httpresp.OK(c, res)
}

func (h *StatsHandler) FrequentClients(c *gin.Context) {
	barberID, ok := optionalUint(c, "barberId")
	if !ok {
		return
	}
	minCuts, ok := optionalInt(c, "minCuts")
	if !ok {
		return
	}
	limit, ok := optionalInt(c, "limit")
	if !ok {
		return
	}

	rows, err := h.frequent.Execute(c.Request.Context(), statsuc.FrequentInput{
		Identity:  middleware.IdentityFrom(c),
		BarberID:  barberID,
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		MinCuts:   minCuts,
		Limit:     limit,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Items(c, rows)
}
