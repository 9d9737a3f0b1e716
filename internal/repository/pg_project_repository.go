package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/hearthside/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

const projectSelectCols = `id, title, description, project_type, service_category,
	COALESCE(location, ''), before_image_url, before_image_key, after_image_url, after_image_key,
	completion_date, featured, display_order, created_at, updated_at`

func scanProject(scan func(...any) error) (*model.Project, error) {
	var p model.Project
	if err := scan(
		&p.ID, &p.Title, &p.Description, &p.ProjectType, &p.ServiceCategory,
		&p.Location, &p.BeforeImageURL, &p.BeforeImageKey, &p.AfterImageURL, &p.AfterImageKey,
		&p.CompletionDate, &p.Featured, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new projects row and populates project.ID and timestamps
// from the RETURNING clause.
func (r *PgProjectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (
			title, description, project_type, service_category, location,
			before_image_url, before_image_key, after_image_url, after_image_key,
			completion_date, featured, display_order
		 ) VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at, updated_at`,
		project.Title, project.Description, project.ProjectType, project.ServiceCategory, project.Location,
		project.BeforeImageURL, project.BeforeImageKey, project.AfterImageURL, project.AfterImageKey,
		project.CompletionDate, project.Featured, project.DisplayOrder,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

// List returns gallery projects ordered by display_order ascending.
// The ordering guarantee lives here; callers never re-sort.
func (r *PgProjectRepository) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error) {
	query := `SELECT ` + projectSelectCols + ` FROM projects`
	if opts.FeaturedOnly {
		query += ` WHERE featured = TRUE`
	}
	query += ` ORDER BY display_order ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID returns the project or ErrNotFound.
func (r *PgProjectRepository) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectSelectCols+` FROM projects WHERE id = $1`, id,
	).Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// Update merges the non-nil fields of upd into the row. A no-op update (all
// fields nil) still bumps updated_at so the caller sees the write happened.
func (r *PgProjectRepository) Update(ctx context.Context, id int64, upd model.ProjectUpdate) error {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.ProjectType != nil {
		add("project_type", *upd.ProjectType)
	}
	if upd.ServiceCategory != nil {
		add("service_category", *upd.ServiceCategory)
	}
	if upd.Location != nil {
		add("location", *upd.Location)
	}
	if upd.BeforeImageURL != nil {
		add("before_image_url", *upd.BeforeImageURL)
	}
	if upd.BeforeImageKey != nil {
		add("before_image_key", *upd.BeforeImageKey)
	}
	if upd.AfterImageURL != nil {
		add("after_image_url", *upd.AfterImageURL)
	}
	if upd.AfterImageKey != nil {
		add("after_image_key", *upd.AfterImageKey)
	}
	if upd.CompletionDate != nil {
		add("completion_date", *upd.CompletionDate)
	}
	if upd.Featured != nil {
		add("featured", *upd.Featured)
	}
	if upd.DisplayOrder != nil {
		add("display_order", *upd.DisplayOrder)
	}

	query := `UPDATE projects SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the project row.
func (r *PgProjectRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
