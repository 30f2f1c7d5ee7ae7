package models

import "time"

// SessionTTL bounds how long an admin session stays valid.
const SessionTTL = 24 * time.Hour

// Session is a server-side record binding a cookie token to an admin.
// Only the HMAC of the token is persisted; the raw token lives in the cookie.
type Session struct {
	TokenHash string
	AdminID   int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
