package mock

import (
	"context"
	"sync"
	"time"

	"github.com/sitevoice/complaints-server/src/models"
	"github.com/sitevoice/complaints-server/src/repositories"
)

// AdminRepository is an in-memory implementation of repositories.AdminRepository
type AdminRepository struct {
	CreateFunc     func(ctx context.Context, admin *models.Admin) error
	GetByEmailFunc func(ctx context.Context, email string) (*models.Admin, error)

	// Call tracking
	Calls map[string][]interface{}

	mu     sync.Mutex
	admins map[string]models.Admin
	nextID int64
}

// NewAdminRepository creates a new mock admin repository
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{
		Calls:  make(map[string][]interface{}),
		admins: make(map[string]models.Admin),
		nextID: 1,
	}
}

func (m *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls["Create"] = append(m.Calls["Create"], admin)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, admin)
	}

	if _, exists := m.admins[admin.Email]; exists {
		return repositories.ErrDuplicateEmail
	}
	admin.ID = m.nextID
	m.nextID++
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now()
	}
	m.admins[admin.Email] = *admin
	return nil
}

func (m *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls["GetByEmail"] = append(m.Calls["GetByEmail"], email)
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}

	admin, ok := m.admins[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &admin, nil
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)
