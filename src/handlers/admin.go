package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sitevoice/complaints-server/src/middleware"
	"github.com/sitevoice/complaints-server/src/models"
	"github.com/sitevoice/complaints-server/src/services"
)

// AdminHandler handles admin authentication and provisioning
type AdminHandler struct {
	admins       *services.AdminService
	sessions     *services.SessionService
	cookieSecure bool
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(admins *services.AdminService, sessions *services.SessionService, cookieSecure bool) *AdminHandler {
	return &AdminHandler{
		admins:       admins,
		sessions:     sessions,
		cookieSecure: cookieSecure,
	}
}

// CredentialsRequest is the body for login and setup
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// adminView is the public shape of an admin record
type adminView struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// HandleLogin authenticates an admin and issues a session cookie
func (ah *AdminHandler) HandleLogin(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	admin, err := ah.admins.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	token, err := ah.sessions.Issue(c.Request.Context(), admin.ID)
	if err != nil {
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("failed to issue session")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	c.SetCookie(
		middleware.SessionCookieName,
		token,
		int(models.SessionTTL/time.Second),
		"/",
		"",
		ah.cookieSecure,
		true, // HttpOnly
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"admin":   adminView{ID: admin.ID, Email: admin.Email},
	})
}

// HandleLogout destroys the session server-side and clears the cookie.
// Logging out without a session is a no-op, not an error.
func (ah *AdminHandler) HandleLogout(c *gin.Context) {
	token, _ := c.Cookie(middleware.SessionCookieName)
	if err := ah.sessions.Revoke(c.Request.Context(), token); err != nil {
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("logout failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Logout failed"})
		return
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", ah.cookieSecure, true)

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// HandleMe confirms session validity and returns the bound admin id
func (ah *AdminHandler) HandleMe(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"adminId": adminID})
}

// HandleSetup bootstraps the first admin account. Intentionally unauthenticated
// (initial provisioning), but rate limited and rejecting duplicate emails.
func (ah *AdminHandler) HandleSetup(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	admin, err := ah.admins.CreateAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdminExists):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Admin already exists"})
		case errors.Is(err, services.ErrInvalidAdminInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
		default:
			log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("failed to create admin")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create admin"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin created successfully",
		"admin":   adminView{ID: admin.ID, Email: admin.Email},
	})
}
