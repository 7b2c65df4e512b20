package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/softbarber/internal/domain/client"
	domain "github.com/BruksfildServices01/softbarber/internal/domain/cut"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

type CutGormRepository struct {
	db *gorm.DB
}

func NewCutGormRepository(db *gorm.DB) *CutGormRepository {
	return &CutGormRepository{db: db}
}

func (r *CutGormRepository) Create(
	ctx context.Context,
	c *models.Cut,
) error {
	return r.db.WithContext(ctx).Omit("Barber").Create(c).Error
}

func (r *CutGormRepository) CreateWithClient(
	ctx context.Context,
	c *models.Cut,
	nc *models.Client,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(nc).Error; err != nil {
			if isUniqueViolation(err) {
				return client.ErrEmailTaken
			}
			return err
		}

		c.ClientID = &nc.ID
		return tx.Omit("Barber").Create(c).Error
	})
}

// --------------------------------------------------
// Filters
// --------------------------------------------------

func applyCutFilter(q *gorm.DB, f domain.Filter) *gorm.DB {
	if f.BarberID != nil {
		q = q.Where("barber_id = ?", *f.BarberID)
	}
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}
	if f.PaymentMethod != "" {
		q = q.Where("payment_method = ?", string(f.PaymentMethod))
	}
	return q
}

func (r *CutGormRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]models.Cut, error) {

	cuts := make([]models.Cut, 0)
	err := applyCutFilter(r.db.WithContext(ctx).Preload("Barber"), f).
		Order("created_at DESC").
		Find(&cuts).Error
	if err != nil {
		return nil, err
	}
	return cuts, nil
}

func (r *CutGormRepository) StatRows(
	ctx context.Context,
	f domain.Filter,
) ([]domain.StatRow, error) {

	rows := make([]domain.StatRow, 0)
	err := applyCutFilter(r.db.WithContext(ctx).Model(&models.Cut{}), f).
		Select(
			"barber_id",
			"client_id",
			"client_name",
			"client_last_name",
			"amount",
			"payment_method",
			"created_at",
		).
		Order("created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*CutGormRepository)(nil)
