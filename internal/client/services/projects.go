package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/adminclient/internal/client/client"
	"github.com/dmitrijs2005/adminclient/internal/client/models"
)

// ProjectService is a thin read-only view of the project endpoints.
type ProjectService struct {
	client client.Client
}

func NewProjectService(c client.Client) *ProjectService {
	return &ProjectService{client: c}
}

func (s *ProjectService) List(ctx context.Context, p models.Pagination) ([]models.Project, error) {
	projects, err := s.client.ListProjects(ctx, p.Page, p.PerPage)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	p, err := s.client.GetProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}
	return p, nil
}
