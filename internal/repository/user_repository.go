package repository

import (
	"context"
	"errors"

	"career-coach/internal/database"
	"career-coach/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository interface {
	Create(ctx context.Context, u user.User) error
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdateProfile runs against q so the profile transaction can scope it.
	UpdateProfile(ctx context.Context, q database.Querier, id uuid.UUID, p user.ProfileUpdate) (user.User, error)
}

const userColumns = `id, email, password_hash, industry, experience, bio, skills, created_at, updated_at`

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, bio, skills)
		 VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Email, u.PasswordHash, u.Bio, u.Skills,
	)
	return err
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, q database.Querier, id uuid.UUID, p user.ProfileUpdate) (user.User, error) {
	if q == nil {
		q = r.db
	}
	row := q.QueryRow(ctx,
		`UPDATE users
		 SET industry = $2, experience = $3, bio = $4, skills = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, p.Industry, p.Experience, p.Bio, p.Skills,
	)
	return scanUser(row)
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash,
		&u.Industry, &u.Experience, &u.Bio, &u.Skills,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
