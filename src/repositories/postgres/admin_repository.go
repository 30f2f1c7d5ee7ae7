package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sitevoice/complaints-server/src/models"
	"github.com/sitevoice/complaints-server/src/repositories"
)

// uniqueViolation is the Postgres error code for unique constraint violations
const uniqueViolation = "23505"

// AdminRepository is the pgx-backed implementation of repositories.AdminRepository
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query, admin.Email, admin.PasswordHash).Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repositories.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert admin: %w", err)
	}

	return nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM admins
		WHERE email = $1
	`

	var admin models.Admin
	err := r.pool.QueryRow(ctx, query, email).Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return &admin, nil
}

var _ repositories.AdminRepository = (*AdminRepository)(nil)
