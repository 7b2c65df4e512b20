package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/softbarber/internal/domain/client"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) Create(
	ctx context.Context,
	c *models.Client,
) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *ClientGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFoundAs(err, domain.ErrNotFound)
	}
	return &c, nil
}

func (r *ClientGormRepository) Update(
	ctx context.Context,
	c *models.Client,
) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *ClientGormRepository) Search(
	ctx context.Context,
	f domain.SearchFilter,
) ([]models.Client, error) {

	q := r.db.WithContext(ctx).Model(&models.Client{})

	if strings.TrimSpace(f.Name) != "" {
		q = q.Where("name ILIKE ?", containsPattern(f.Name))
	}
	if strings.TrimSpace(f.LastName) != "" {
		q = q.Where("last_name ILIKE ?", containsPattern(f.LastName))
	}

	clients := make([]models.Client, 0)
	if err := q.
		Order("last_name ASC, name ASC").
		Limit(domain.PageSize).
		Offset(f.Offset()).
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) FindByFullName(
	ctx context.Context,
	name string,
	lastName string,
) ([]models.Client, error) {

	clients := make([]models.Client, 0)
	if err := r.db.WithContext(ctx).
		Where(
			"LOWER(name) = ? AND LOWER(last_name) = ?",
			strings.ToLower(strings.TrimSpace(name)),
			strings.ToLower(strings.TrimSpace(lastName)),
		).
		Order("id ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
