package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sitevoice/complaints-server/src/models"
	"github.com/sitevoice/complaints-server/src/repositories"
)

// ImageRemover deletes a stored image by its public path
type ImageRemover interface {
	Remove(imagePath string) error
}

// FieldError describes a single validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ComplaintInput carries the submitted form fields
type ComplaintInput struct {
	Location    string
	Name        string
	Phone       string
	Description string
	ImagePath   *string
}

// Validate checks the submission constraints and returns all violations
func (in *ComplaintInput) Validate() []FieldError {
	var errs []FieldError

	if in.Location == "" {
		errs = append(errs, FieldError{Field: "location", Message: "Location is required"})
	} else if len(in.Location) > 255 {
		errs = append(errs, FieldError{Field: "location", Message: "Location must be at most 255 characters"})
	}

	if in.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	} else if len(in.Name) > 255 {
		errs = append(errs, FieldError{Field: "name", Message: "Name must be at most 255 characters"})
	}

	if len(in.Phone) < 10 {
		errs = append(errs, FieldError{Field: "phone", Message: "Valid phone number is required"})
	} else if len(in.Phone) > 20 {
		errs = append(errs, FieldError{Field: "phone", Message: "Phone must be at most 20 characters"})
	}

	if len(in.Description) < 10 {
		errs = append(errs, FieldError{Field: "description", Message: "Description must be at least 10 characters"})
	}

	if in.ImagePath != nil && len(*in.ImagePath) > 500 {
		errs = append(errs, FieldError{Field: "imagePath", Message: "Image path must be at most 500 characters"})
	}

	return errs
}

// ComplaintService handles complaint intake and resolution
type ComplaintService struct {
	repo   repositories.ComplaintRepository
	images ImageRemover
}

// NewComplaintService creates a new complaint service
func NewComplaintService(repo repositories.ComplaintRepository, images ImageRemover) *ComplaintService {
	return &ComplaintService{repo: repo, images: images}
}

// Create persists a validated submission and returns the stored record
func (cs *ComplaintService) Create(ctx context.Context, input ComplaintInput) (*models.Complaint, error) {
	complaint := &models.Complaint{
		Location:    input.Location,
		Name:        input.Name,
		Phone:       input.Phone,
		Description: input.Description,
		ImagePath:   input.ImagePath,
	}

	if err := cs.repo.Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}

	return complaint, nil
}

// GetAll returns every complaint ordered by creation time ascending
func (cs *ComplaintService) GetAll(ctx context.Context) ([]models.Complaint, error) {
	return cs.repo.GetAll(ctx)
}

// Resolve deletes the complaint and its image file. The file is removed first
// and best-effort: a failed unlink is logged and the row delete proceeds, so a
// crash or unlink error can orphan a file on disk. The row, not the file, is
// the source of truth. Resolving an absent id is a silent no-op.
func (cs *ComplaintService) Resolve(ctx context.Context, id int64) error {
	complaint, err := cs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up complaint: %w", err)
	}

	if complaint.HasImage() && cs.images != nil {
		if err := cs.images.Remove(*complaint.ImagePath); err != nil {
			log.Warn().Err(err).Int64("complaint_id", id).Str("image_path", *complaint.ImagePath).
				Msg("failed to remove complaint image, continuing with row delete")
		}
	}

	if err := cs.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete complaint: %w", err)
	}

	return nil
}
