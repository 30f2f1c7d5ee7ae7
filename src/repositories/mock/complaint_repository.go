package mock

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sitevoice/complaints-server/src/models"
	"github.com/sitevoice/complaints-server/src/repositories"
)

// ComplaintRepository is an in-memory implementation of repositories.ComplaintRepository.
// Default behavior mimics the real store; individual methods can be overridden
// with function stubs to force errors.
type ComplaintRepository struct {
	CreateFunc  func(ctx context.Context, complaint *models.Complaint) error
	GetAllFunc  func(ctx context.Context) ([]models.Complaint, error)
	GetByIDFunc func(ctx context.Context, id int64) (*models.Complaint, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	// Call tracking
	Calls map[string][]interface{}

	mu         sync.Mutex
	complaints map[int64]models.Complaint
	nextID     int64
}

// NewComplaintRepository creates a new mock complaint repository
func NewComplaintRepository() *ComplaintRepository {
	return &ComplaintRepository{
		Calls:      make(map[string][]interface{}),
		complaints: make(map[int64]models.Complaint),
		nextID:     1,
	}
}

func (m *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls["Create"] = append(m.Calls["Create"], complaint)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, complaint)
	}

	complaint.ID = m.nextID
	m.nextID++
	if complaint.CreatedAt.IsZero() {
		complaint.CreatedAt = time.Now()
	}
	m.complaints[complaint.ID] = *complaint
	return nil
}

func (m *ComplaintRepository) GetAll(ctx context.Context) ([]models.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls["GetAll"] = append(m.Calls["GetAll"], nil)
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}

	all := make([]models.Complaint, 0, len(m.complaints))
	for _, c := range m.complaints {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	return all, nil
}

func (m *ComplaintRepository) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}

	c, ok := m.complaints[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (m *ComplaintRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}

	delete(m.complaints, id)
	return nil
}

// Ensure ComplaintRepository implements the interface
var _ repositories.ComplaintRepository = (*ComplaintRepository)(nil)
