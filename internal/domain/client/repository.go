package client

import (
	"context"

	"github.com/BruksfildServices01/softbarber/internal/httperr"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

//go:generate mockgen -source=repository.go -destination=../../mocks/client_repository.go -package=mocks -mock_names=Repository=MockClientRepository

// PageSize caps every search result.
const PageSize = 20

var (
	ErrNotFound   = httperr.NotFound("client_not_found", "Cliente no encontrado.")
	ErrEmailTaken = httperr.Conflict("client_email_exists", "Ya existe un cliente con ese email.")
)

type SearchFilter struct {
	Name     string
	LastName string
	Page     int
}

func (f SearchFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * PageSize
}

type Repository interface {
	Create(
		ctx context.Context,
		c *models.Client,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	Update(
		ctx context.Context,
		c *models.Client,
	) error

	// Search matches each non-empty field as a case-insensitive substring.
	Search(
		ctx context.Context,
		f SearchFilter,
	) ([]models.Client, error)

	// FindByFullName matches name and lastName exactly, ignoring case.
	FindByFullName(
		ctx context.Context,
		name string,
		lastName string,
	) ([]models.Client, error)
}
