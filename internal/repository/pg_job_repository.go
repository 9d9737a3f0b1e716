package repository

import (
	"context"
	"errors"

	"github.com/hearthside/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgJobSubmissionRepository is the PostgreSQL implementation of
// JobSubmissionRepository.
type PgJobSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgJobSubmissionRepository creates a PgJobSubmissionRepository backed by
// the given pool.
func NewPgJobSubmissionRepository(pool *pgxpool.Pool) *PgJobSubmissionRepository {
	return &PgJobSubmissionRepository{pool: pool}
}

var _ JobSubmissionRepository = (*PgJobSubmissionRepository)(nil)

const jobSelectCols = `id, client_name, client_email, client_phone, project_type,
	service_category, project_description, location,
	COALESCE(latitude, ''), COALESCE(longitude, ''),
	timeline_preference, budget_range,
	has_electrical, has_plumbing, has_gas_lines, has_load_bearing, requires_permits,
	status, COALESCE(notes, ''), created_at, updated_at`

func scanJob(scan func(...any) error) (*model.JobSubmission, error) {
	var j model.JobSubmission
	if err := scan(
		&j.ID, &j.ClientName, &j.ClientEmail, &j.ClientPhone, &j.ProjectType,
		&j.ServiceCategory, &j.ProjectDescription, &j.Location,
		&j.Latitude, &j.Longitude,
		&j.TimelinePreference, &j.BudgetRange,
		&j.HasElectrical, &j.HasPlumbing, &j.HasGasLines, &j.HasLoadBearing, &j.RequiresPermits,
		&j.Status, &j.Notes, &j.CreatedAt, &j.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &j, nil
}

// Create inserts a new job_submissions row and populates job.ID and
// timestamps from the RETURNING clause.
func (r *PgJobSubmissionRepository) Create(ctx context.Context, job *model.JobSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO job_submissions (
			client_name, client_email, client_phone, project_type,
			service_category, project_description, location,
			latitude, longitude, timeline_preference, budget_range,
			has_electrical, has_plumbing, has_gas_lines, has_load_bearing, requires_permits,
			status
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11, $12, $13, $14, $15, $16, $17)
		 RETURNING id, created_at, updated_at`,
		job.ClientName, job.ClientEmail, job.ClientPhone, job.ProjectType,
		job.ServiceCategory, job.ProjectDescription, job.Location,
		job.Latitude, job.Longitude, job.TimelinePreference, job.BudgetRange,
		job.HasElectrical, job.HasPlumbing, job.HasGasLines, job.HasLoadBearing, job.RequiresPermits,
		job.Status,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

// List returns job submissions, newest first, optionally filtered by status.
func (r *PgJobSubmissionRepository) List(ctx context.Context, opts model.JobListOptions) ([]*model.JobSubmission, error) {
	query := `SELECT ` + jobSelectCols + ` FROM job_submissions`
	var args []any
	if opts.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, opts.Status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*model.JobSubmission
	for rows.Next() {
		j, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// GetByID returns the submission or ErrNotFound.
func (r *PgJobSubmissionRepository) GetByID(ctx context.Context, id int64) (*model.JobSubmission, error) {
	j, err := scanJob(r.pool.QueryRow(ctx,
		`SELECT `+jobSelectCols+` FROM job_submissions WHERE id = $1`, id,
	).Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return j, err
}

// UpdateStatus overwrites the status field and bumps updated_at.
func (r *PgJobSubmissionRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE job_submissions SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
