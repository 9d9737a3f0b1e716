package repository

import (
	"context"
	"errors"

	"github.com/hearthside/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgUserRepository is the PostgreSQL implementation of UserRepository.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgUserRepository creates a PgUserRepository backed by the given pool.
func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

var _ UserRepository = (*PgUserRepository)(nil)

// Ping confirms database connectivity (DB interface).
func (r *PgUserRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

const userSelectCols = `id, open_id, COALESCE(name, ''), COALESCE(email, ''),
	COALESCE(login_method, ''), role, last_signed_in, created_at, updated_at`

func scanUser(scan func(...any) error) (*model.User, error) {
	var u model.User
	if err := scan(
		&u.ID, &u.OpenID, &u.Name, &u.Email,
		&u.LoginMethod, &u.Role, &u.LastSignedIn, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID returns the user or ErrNotFound.
func (r *PgUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userSelectCols+` FROM users WHERE id = $1`, id,
	).Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

// FindByOpenID returns the user for a provider subject or ErrNotFound.
func (r *PgUserRepository) FindByOpenID(ctx context.Context, loginMethod, openID string) (*model.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userSelectCols+` FROM users WHERE login_method = $1 AND open_id = $2`,
		loginMethod, openID,
	).Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

// Create inserts a new users row and populates user.ID and timestamps from
// the RETURNING clause. An empty role falls back to "user".
func (r *PgUserRepository) Create(ctx context.Context, user *model.User) error {
	role := user.Role
	if role == "" {
		role = model.RoleUser
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (open_id, name, email, login_method, role, last_signed_in)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, NOW())
		 RETURNING id, role, last_signed_in, created_at, updated_at`,
		user.OpenID, user.Name, user.Email, user.LoginMethod, role,
	).Scan(&user.ID, &user.Role, &user.LastSignedIn, &user.CreatedAt, &user.UpdatedAt)
	return err
}

// TouchLastSignedIn records a successful login.
func (r *PgUserRepository) TouchLastSignedIn(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET last_signed_in = NOW(), updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
