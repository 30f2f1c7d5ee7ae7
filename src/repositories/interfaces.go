package repositories

import (
	"context"

	"github.com/sitevoice/complaints-server/src/models"
)

// ComplaintRepository defines the interface for complaint data access
type ComplaintRepository interface {
	// Create inserts a complaint and fills the server-assigned ID and CreatedAt
	Create(ctx context.Context, complaint *models.Complaint) error
	// GetAll returns every complaint ordered by creation time ascending
	GetAll(ctx context.Context) ([]models.Complaint, error)
	// GetByID returns ErrNotFound when no complaint has that id
	GetByID(ctx context.Context, id int64) (*models.Complaint, error)
	// Delete removes a complaint; deleting an absent id is a no-op
	Delete(ctx context.Context, id int64) error
}

// AdminRepository defines the interface for admin data access
type AdminRepository interface {
	// Create inserts an admin; returns ErrDuplicateEmail when the email is taken
	Create(ctx context.Context, admin *models.Admin) error
	// GetByEmail returns ErrNotFound when no admin has that email
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// SessionRepository defines the interface for session data access.
// It is always an injected dependency, never package-level state.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	// GetByTokenHash returns ErrNotFound for absent or expired sessions
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error)
	// Delete removes a session; deleting an absent token is a no-op
	Delete(ctx context.Context, tokenHash string) error
	// DeleteExpired removes all expired sessions and reports how many
	DeleteExpired(ctx context.Context) (int64, error)
}
