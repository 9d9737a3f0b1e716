package repository

import (
	"context"

	"github.com/hearthside/backend/internal/model"
)

// ProjectRepository defines the persistence interface for gallery projects.
type ProjectRepository interface {
	// Create inserts a new project and populates ID and timestamps.
	Create(ctx context.Context, project *model.Project) error
	// List returns projects ordered by display_order ascending.
	List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error)
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	// Update merges the non-nil fields of upd into the row and bumps
	// updated_at. Returns ErrNotFound when no row matches id.
	Update(ctx context.Context, id int64, upd model.ProjectUpdate) error
	// Delete removes the project. Returns ErrNotFound when no row matches id.
	Delete(ctx context.Context, id int64) error
}
