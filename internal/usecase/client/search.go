package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/softbarber/internal/domain/client"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

type SearchClients struct {
	repo client.Repository
}

func NewSearchClients(repo client.Repository) *SearchClients {
	return &SearchClients{repo: repo}
}

// Execute returns at most client.PageSize matches.
func (uc *SearchClients) Execute(
	ctx context.Context,
	f client.SearchFilter,
) ([]models.Client, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.LastName = strings.TrimSpace(f.LastName)
	return uc.repo.Search(ctx, f)
}

type GetClient struct {
	repo client.Repository
}

func NewGetClient(repo client.Repository) *GetClient {
	return &GetClient{repo: repo}
}

func (uc *GetClient) Execute(ctx context.Context, id uint) (*models.Client, error) {
	return uc.repo.GetByID(ctx, id)
}
