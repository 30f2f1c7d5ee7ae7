package services

import "errors"

// Sentinel errors for explicit error handling.
// Callers distinguish failure modes with errors.Is() instead of string matching.

var (
	// ErrInvalidCredentials indicates authentication failed. Unknown email and
	// wrong password both map here so responses cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAdminExists indicates an admin with that email already exists
	ErrAdminExists = errors.New("admin already exists")

	// ErrInvalidAdminInput indicates the email or password failed validation
	ErrInvalidAdminInput = errors.New("invalid admin input")

	// ErrSessionNotFound indicates the session is absent, expired, or revoked
	ErrSessionNotFound = errors.New("session not found")

	// ErrFileTooLarge indicates the uploaded file exceeds the size limit
	ErrFileTooLarge = errors.New("file too large")

	// ErrNotAnImage indicates the uploaded file is not an image
	ErrNotAnImage = errors.New("only image files are allowed")
)
