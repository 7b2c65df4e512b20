package cut

import (
	"context"
	"time"

	"github.com/BruksfildServices01/softbarber/internal/models"
)

//go:generate mockgen -source=repository.go -destination=../../mocks/cut_repository.go -package=mocks -mock_names=Repository=MockCutRepository

// Filter bounds are inclusive. Nil fields do not filter.
type Filter struct {
	BarberID      *uint
	ClientID      *uint
	From          *time.Time
	To            *time.Time
	PaymentMethod PaymentMethod
}

// StatRow is the projection the statistics are computed from.
type StatRow struct {
	BarberID       uint
	ClientID       *uint
	ClientName     string
	ClientLastName string
	Amount         float64
	PaymentMethod  string
	CreatedAt      time.Time
}

type Repository interface {
	Create(
		ctx context.Context,
		c *models.Cut,
	) error

	// CreateWithClient inserts nc and then c, linked to nc, in one
	// transaction. Neither row is kept when either insert fails.
	CreateWithClient(
		ctx context.Context,
		c *models.Cut,
		nc *models.Client,
	) error

	// List returns cuts newest first with Barber loaded.
	List(
		ctx context.Context,
		f Filter,
	) ([]models.Cut, error)

	// StatRows returns the projection oldest first.
	StatRows(
		ctx context.Context,
		f Filter,
	) ([]StatRow, error)
}
