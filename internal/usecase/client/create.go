package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/softbarber/internal/audit"
	"github.com/BruksfildServices01/softbarber/internal/domain/client"
	"github.com/BruksfildServices01/softbarber/internal/httperr"
	"github.com/BruksfildServices01/softbarber/internal/models"
	"github.com/BruksfildServices01/softbarber/internal/validators"
)

var (
	ErrMissingName  = httperr.Validation("missing_fields", "Nombre y apellido son requeridos.")
	ErrInvalidEmail = httperr.Validation("invalid_email", "El email no es válido.")
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateClientInput struct {
	ActorID  uint
	Name     string
	LastName string
	Email    string
	Phone    string
}

type CreateClientResult struct {
	Client *models.Client
	// PossibleDuplicates counts clients that already had the same full name.
	PossibleDuplicates int
}

// ======================================================
// USE CASE
// ======================================================

type CreateClient struct {
	repo  client.Repository
	audit audit.Recorder
}

func NewCreateClient(
	repo client.Repository,
	audit audit.Recorder,
) *CreateClient {
	return &CreateClient{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	in CreateClientInput,
) (*CreateClientResult, error) {

	c := &models.Client{
		Name:     strings.TrimSpace(in.Name),
		LastName: strings.TrimSpace(in.LastName),
		Phone:    strings.TrimSpace(in.Phone),
	}
	if c.Name == "" || c.LastName == "" {
		return nil, ErrMissingName
	}

	if email := validators.NormalizeEmail(in.Email); email != "" {
		if !validators.IsEmailSyntaxValid(email) {
			return nil, ErrInvalidEmail
		}
		c.Email = email
	}

	dupes, err := uc.repo.FindByFullName(ctx, c.Name, c.LastName)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &c.ID,
		Metadata: map[string]any{"possible_duplicates": len(dupes)},
	})

	return &CreateClientResult{
		Client:             c,
		PossibleDuplicates: len(dupes),
	}, nil
}
