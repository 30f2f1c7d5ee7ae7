package mock

import (
	"context"
	"sync"
	"time"

	"github.com/sitevoice/complaints-server/src/models"
	"github.com/sitevoice/complaints-server/src/repositories"
)

// SessionRepository is an in-memory implementation of repositories.SessionRepository
type SessionRepository struct {
	CreateFunc         func(ctx context.Context, session *models.Session) error
	GetByTokenHashFunc func(ctx context.Context, tokenHash string) (*models.Session, error)
	DeleteFunc         func(ctx context.Context, tokenHash string) error
	DeleteExpiredFunc  func(ctx context.Context) (int64, error)

	// Call tracking
	Calls map[string][]interface{}

	mu       sync.Mutex
	sessions map[string]models.Session
}

// NewSessionRepository creates a new mock session repository
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		Calls:    make(map[string][]interface{}),
		sessions: make(map[string]models.Session),
	}
}

func (m *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls["Create"] = append(m.Calls["Create"], session)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}

	m.sessions[session.TokenHash] = *session
	return nil
}

func (m *SessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls["GetByTokenHash"] = append(m.Calls["GetByTokenHash"], tokenHash)
	if m.GetByTokenHashFunc != nil {
		return m.GetByTokenHashFunc(ctx, tokenHash)
	}

	s, ok := m.sessions[tokenHash]
	if !ok || s.Expired(time.Now()) {
		return nil, repositories.ErrNotFound
	}
	return &s, nil
}

func (m *SessionRepository) Delete(ctx context.Context, tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls["Delete"] = append(m.Calls["Delete"], tokenHash)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tokenHash)
	}

	delete(m.sessions, tokenHash)
	return nil
}

func (m *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls["DeleteExpired"] = append(m.Calls["DeleteExpired"], nil)
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}

	var removed int64
	now := time.Now()
	for hash, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, hash)
			removed++
		}
	}
	return removed, nil
}

// Ensure SessionRepository implements the interface
var _ repositories.SessionRepository = (*SessionRepository)(nil)
