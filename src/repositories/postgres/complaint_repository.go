package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sitevoice/complaints-server/src/models"
	"github.com/sitevoice/complaints-server/src/repositories"
)

// ComplaintRepository is the pgx-backed implementation of repositories.ComplaintRepository
type ComplaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(pool *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{pool: pool}
}

func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	query := `
		INSERT INTO complaints (location, name, phone, description, image_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		complaint.Location, complaint.Name, complaint.Phone, complaint.Description, complaint.ImagePath,
	).Scan(&complaint.ID, &complaint.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert complaint: %w", err)
	}

	return nil
}

func (r *ComplaintRepository) GetAll(ctx context.Context) ([]models.Complaint, error) {
	// id breaks ties so listing order is stable for equal timestamps
	query := `
		SELECT id, location, name, phone, description, image_path, created_at
		FROM complaints
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query complaints: %w", err)
	}
	defer rows.Close()

	complaints := []models.Complaint{}
	for rows.Next() {
		var c models.Complaint
		if err := rows.Scan(&c.ID, &c.Location, &c.Name, &c.Phone, &c.Description, &c.ImagePath, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan complaint: %w", err)
		}
		complaints = append(complaints, c)
	}

	return complaints, rows.Err()
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	query := `
		SELECT id, location, name, phone, description, image_path, created_at
		FROM complaints
		WHERE id = $1
	`

	var c models.Complaint
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Location, &c.Name, &c.Phone, &c.Description, &c.ImagePath, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	return &c, nil
}

func (r *ComplaintRepository) Delete(ctx context.Context, id int64) error {
	// Idempotent: zero rows affected is fine
	_, err := r.pool.Exec(ctx, "DELETE FROM complaints WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete complaint: %w", err)
	}
	return nil
}

var _ repositories.ComplaintRepository = (*ComplaintRepository)(nil)
