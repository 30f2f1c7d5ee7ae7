package models

import "time"

// Complaint represents a submitted report of an issue at a location.
// Complaints are never updated; an admin deleting one is its resolution.
type Complaint struct {
	ID          int64     `json:"id"`
	Location    string    `json:"location"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Description string    `json:"description"`
	ImagePath   *string   `json:"imagePath"` // relative URL under /uploads, nil if no photo
	CreatedAt   time.Time `json:"createdAt"`
}

// HasImage returns true if the complaint has an uploaded photo
func (c *Complaint) HasImage() bool {
	return c.ImagePath != nil && *c.ImagePath != ""
}
