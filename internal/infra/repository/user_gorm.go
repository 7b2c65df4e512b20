package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/softbarber/internal/domain/user"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(
	ctx context.Context,
	u *models.User,
) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFoundAs(err, domain.ErrNotFound)
	}
	return &u, nil
}

func (r *UserGormRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, notFoundAs(err, domain.ErrNotFound)
	}
	return &u, nil
}

func (r *UserGormRepository) EmailExists(
	ctx context.Context,
	email string,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserGormRepository) Update(
	ctx context.Context,
	u *models.User,
) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserGormRepository) ListByRole(
	ctx context.Context,
	role string,
	includeInactive bool,
) ([]models.User, error) {

	q := r.db.WithContext(ctx).Where("role = ?", role)
	if !includeInactive {
		q = q.Where("active = ?", true)
	}

	users := make([]models.User, 0)
	if err := q.
		Order("name ASC, last_name ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserGormRepository) ListByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.User, error) {

	users := make([]models.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
