package repositories

import (
	"context"

	"github.com/G-Ostolaza/EngineerConnect/internal/models"
)

// ProfileRepository defines the interface for profile data access.
type ProfileRepository interface {
	// GetAll returns every profile with its owner's name and avatar inlined.
	GetAll(ctx context.Context) ([]models.Profile, error)
	// GetByUserID returns the profile owned by the given user, with the
	// owner's name and avatar inlined. Returns ErrNotFound if there is none.
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	// Upsert atomically creates the profile for userID from the patch, or
	// applies the patch to the existing one, and returns the resulting record.
	Upsert(ctx context.Context, userID string, patch *models.ProfilePatch) (*models.Profile, error)
	// DeleteWithUser removes the user's profile and then the user itself as a
	// single unit. A missing profile is not an error; the user is removed
	// regardless.
	DeleteWithUser(ctx context.Context, userID string) error
}
