package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sitevoice/complaints-server/src/database"
	"github.com/sitevoice/complaints-server/src/models"
	"github.com/sitevoice/complaints-server/src/repositories"
)

func TestComplaintRepository_CreateAndGetByID(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewComplaintRepository(tdb.Pool)
		ctx := context.Background()

		imagePath := "/uploads/abc.png"
		complaint := &models.Complaint{
			Location:    "Building A, Floor 2",
			Name:        "Jamie Doe",
			Phone:       "0123456789",
			Description: "The heating is broken and the room is freezing",
			ImagePath:   &imagePath,
		}

		if err := repo.Create(ctx, complaint); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if complaint.ID == 0 {
			t.Error("expected id to be assigned by the database")
		}
		if complaint.CreatedAt.IsZero() {
			t.Error("expected created_at to be assigned by the database")
		}

		got, err := repo.GetByID(ctx, complaint.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Location != complaint.Location || got.Description != complaint.Description {
			t.Errorf("expected stored fields to round-trip, got %+v", got)
		}
		if got.ImagePath == nil || *got.ImagePath != imagePath {
			t.Errorf("expected image_path %q, got %v", imagePath, got.ImagePath)
		}
	})
}

func TestComplaintRepository_GetByID_NotFound(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewComplaintRepository(tdb.Pool)

		_, err := repo.GetByID(context.Background(), 99999)
		if !errors.Is(err, repositories.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestComplaintRepository_GetAll_OrderedOldestFirst(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewComplaintRepository(tdb.Pool)
		ctx := context.Background()

		// Insert with explicit timestamps, newest first, to make sure
		// listing order comes from created_at rather than insert order.
		now := time.Now().UTC()
		for i, offset := range []time.Duration{0, -2 * time.Hour, -1 * time.Hour} {
			_, err := tdb.Pool.Exec(ctx, `
				INSERT INTO complaints (location, name, phone, description, created_at)
				VALUES ($1, $2, $3, $4, $5)
			`, "Lobby", "Reporter", "0123456789", "Broken elevator, stuck between floors", now.Add(offset))
			if err != nil {
				t.Fatalf("failed to seed complaint %d: %v", i, err)
			}
		}

		complaints, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(complaints) != 3 {
			t.Fatalf("expected 3 complaints, got %d", len(complaints))
		}
		for i := 1; i < len(complaints); i++ {
			if complaints[i].CreatedAt.Before(complaints[i-1].CreatedAt) {
				t.Errorf("expected ascending created_at, got %v then %v",
					complaints[i-1].CreatedAt, complaints[i].CreatedAt)
			}
		}
	})
}

func TestComplaintRepository_GetAll_Empty(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewComplaintRepository(tdb.Pool)

		complaints, err := repo.GetAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if complaints == nil {
			t.Error("expected empty slice, got nil")
		}
		if len(complaints) != 0 {
			t.Errorf("expected no complaints, got %d", len(complaints))
		}
	})
}

func TestComplaintRepository_Delete(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		repo := NewComplaintRepository(tdb.Pool)
		ctx := context.Background()

		id, err := tdb.CreateTestComplaint("Lobby", "Reporter", "0123456789", "Water leak near the entrance door", nil)
		if err != nil {
			t.Fatalf("failed to seed complaint: %v", err)
		}

		if err := repo.Delete(ctx, id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := repo.GetByID(ctx, id); !errors.Is(err, repositories.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}

		// Deleting an absent row is not an error
		if err := repo.Delete(ctx, id); err != nil {
			t.Errorf("expected idempotent delete, got %v", err)
		}
	})
}
