package service

import (
	"context"
	"fmt"

	"github.com/hearthside/backend/internal/model"
	"github.com/hearthside/backend/internal/repository"
)

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

func (s *projectServiceImpl) Create(ctx context.Context, project *model.Project) error {
	if err := s.repo.Create(ctx, project); err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (s *projectServiceImpl) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error) {
	return s.repo.List(ctx, opts)
}

func (s *projectServiceImpl) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectServiceImpl) Update(ctx context.Context, id int64, upd model.ProjectUpdate) error {
	if err := s.repo.Update(ctx, id, upd); err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

func (s *projectServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
