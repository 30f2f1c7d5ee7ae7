package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sitevoice/complaints-server/src/middleware"
	"github.com/sitevoice/complaints-server/src/services"
)

// ComplaintHandler handles complaint intake and admin resolution
type ComplaintHandler struct {
	complaints *services.ComplaintService
	uploads    *services.UploadService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaints *services.ComplaintService, uploads *services.UploadService) *ComplaintHandler {
	return &ComplaintHandler{
		complaints: complaints,
		uploads:    uploads,
	}
}

// HandleCreateComplaint accepts a public multipart submission with an optional image.
// Field validation runs before the image is stored, so a rejected submission
// never leaves a file behind.
func (ch *ComplaintHandler) HandleCreateComplaint(c *gin.Context) {
	input := services.ComplaintInput{
		Location:    c.PostForm("location"),
		Name:        c.PostForm("name"),
		Phone:       c.PostForm("phone"),
		Description: c.PostForm("description"),
	}

	if fieldErrors := input.Validate(); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  fieldErrors,
		})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil && err != http.ErrMissingFile {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid image upload"})
		return
	}

	if fileHeader != nil {
		imagePath, err := ch.uploads.Save(fileHeader)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrFileTooLarge):
				c.JSON(http.StatusBadRequest, gin.H{
					"message": "Validation failed",
					"errors":  []services.FieldError{{Field: "image", Message: "Image must be at most 5MB"}},
				})
			case errors.Is(err, services.ErrNotAnImage):
				c.JSON(http.StatusBadRequest, gin.H{
					"message": "Validation failed",
					"errors":  []services.FieldError{{Field: "image", Message: "Only image files are allowed"}},
				})
			default:
				log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("failed to store uploaded image")
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create complaint"})
			}
			return
		}
		input.ImagePath = &imagePath
	}

	complaint, err := ch.complaints.Create(c.Request.Context(), input)
	if err != nil {
		// Do not leave the stored image orphaned by a failed insert
		if input.ImagePath != nil {
			if rmErr := ch.uploads.Remove(*input.ImagePath); rmErr != nil {
				log.Warn().Err(rmErr).Msg("failed to remove image after insert failure")
			}
		}
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("failed to create complaint")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create complaint"})
		return
	}

	c.JSON(http.StatusCreated, complaint)
}

// HandleListComplaints returns every complaint, oldest first. Admin only.
func (ch *ComplaintHandler) HandleListComplaints(c *gin.Context) {
	complaints, err := ch.complaints.GetAll(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("failed to fetch complaints")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch complaints"})
		return
	}

	c.JSON(http.StatusOK, complaints)
}

// HandleDeleteComplaint resolves a complaint by deleting its image and row. Admin only.
func (ch *ComplaintHandler) HandleDeleteComplaint(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid complaint ID"})
		return
	}

	if err := ch.complaints.Resolve(c.Request.Context(), id); err != nil {
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Int64("complaint_id", id).Msg("failed to delete complaint")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete complaint"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Complaint deleted successfully"})
}
