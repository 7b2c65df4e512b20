package cut

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	"github.com/BruksfildServices01/softbarber/internal/domain/cut"
	"github.com/BruksfildServices01/softbarber/internal/models"
	"github.com/BruksfildServices01/softbarber/internal/timezone"
)

type ListCutsInput struct {
	Identity access.Identity

	BarberID      *uint
	StartDate     string
	EndDate       string
	PaymentMethod string
}

type ListCuts struct {
	repo cut.Repository
	loc  *time.Location
}

func NewListCuts(
	repo cut.Repository,
	loc *time.Location,
) *ListCuts {
	return &ListCuts{
		repo: repo,
		loc:  loc,
	}
}

// Execute lists cuts newest first. Date bounds are inclusive; a plain
// date as endDate covers the whole day.
func (uc *ListCuts) Execute(
	ctx context.Context,
	in ListCutsInput,
) ([]models.Cut, error) {

	f := cut.Filter{
		BarberID: access.ScopeBarber(in.Identity, in.BarberID),
	}

	if s := strings.TrimSpace(in.StartDate); s != "" {
		from, err := timezone.ParseBound(s, uc.loc, false)
		if err != nil {
			return nil, ErrInvalidDate
		}
		f.From = &from
	}
	if s := strings.TrimSpace(in.EndDate); s != "" {
		to, err := timezone.ParseBound(s, uc.loc, true)
		if err != nil {
			return nil, ErrInvalidDate
		}
		f.To = &to
	}

	if pm := strings.TrimSpace(in.PaymentMethod); pm != "" {
		method := cut.PaymentMethod(strings.ToLower(pm))
		if !method.Valid() {
			return nil, ErrInvalidPaymentMethod
		}
		f.PaymentMethod = method
	}

	return uc.repo.List(ctx, f)
}
