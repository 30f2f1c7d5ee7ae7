package models

import "time"

// Admin represents an administrator account
type Admin struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never expose
	CreatedAt    time.Time `json:"created_at"`
}
