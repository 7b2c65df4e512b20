package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/softbarber/internal/audit"
	"github.com/BruksfildServices01/softbarber/internal/domain/client"
	"github.com/BruksfildServices01/softbarber/internal/models"
	"github.com/BruksfildServices01/softbarber/internal/validators"
)

// UpdateClientInput only touches non-nil fields.
type UpdateClientInput struct {
	ActorID  uint
	ID       uint
	Name     *string
	LastName *string
	Email    *string
	Phone    *string
}

type UpdateClient struct {
	repo  client.Repository
	audit audit.Recorder
}

func NewUpdateClient(
	repo client.Repository,
	audit audit.Recorder,
) *UpdateClient {
	return &UpdateClient{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateClient) Execute(
	ctx context.Context,
	in UpdateClientInput,
) (*models.Client, error) {

	c, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.LastName != nil {
		c.LastName = strings.TrimSpace(*in.LastName)
	}
	if c.Name == "" || c.LastName == "" {
		return nil, ErrMissingName
	}

	if in.Email != nil {
		email := validators.NormalizeEmail(*in.Email)
		if email != "" && !validators.IsEmailSyntaxValid(email) {
			return nil, ErrInvalidEmail
		}
		c.Email = email
	}
	if in.Phone != nil {
		c.Phone = strings.TrimSpace(*in.Phone)
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &c.ID,
	})

	return c, nil
}
