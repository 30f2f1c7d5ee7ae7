package services

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/sitevoice/complaints-server/src/models"
	"github.com/sitevoice/complaints-server/src/repositories"
)

// SessionService manages server-side admin sessions. The client holds an
// opaque random token in a cookie; the store only ever sees its HMAC.
type SessionService struct {
	repo   repositories.SessionRepository
	secret []byte
}

// NewSessionService creates a new session service
func NewSessionService(repo repositories.SessionRepository, secret string) *SessionService {
	return &SessionService{repo: repo, secret: []byte(secret)}
}

// Issue creates a session for the admin and returns the raw cookie token
func (ss *SessionService) Issue(ctx context.Context, adminID int64) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	token := hex.EncodeToString(raw)

	now := time.Now()
	session := &models.Session{
		TokenHash: ss.hashToken(token),
		AdminID:   adminID,
		CreatedAt: now,
		ExpiresAt: now.Add(models.SessionTTL),
	}

	if err := ss.repo.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// Authenticate resolves a cookie token to its session.
// Absent, expired, and revoked tokens all return ErrSessionNotFound.
func (ss *SessionService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	session, err := ss.repo.GetByTokenHash(ctx, ss.hashToken(token))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	if session.Expired(time.Now()) {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// Revoke destroys the session bound to the token; unknown tokens are a no-op
func (ss *SessionService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := ss.repo.Delete(ctx, ss.hashToken(token)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired sweeps expired sessions and reports how many were removed
func (ss *SessionService) DeleteExpired(ctx context.Context) (int64, error) {
	return ss.repo.DeleteExpired(ctx)
}

func (ss *SessionService) hashToken(token string) string {
	mac := hmac.New(sha256.New, ss.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
