package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/G-Ostolaza/EngineerConnect/internal/models"
)

// GORMProfileRepository is a GORM implementation of ProfileRepository.
type GORMProfileRepository struct {
	db *gorm.DB
}

// NewGORMProfileRepository creates a new instance of GORMProfileRepository.
func NewGORMProfileRepository(db *gorm.DB) *GORMProfileRepository {
	return &GORMProfileRepository{
		db: db,
	}
}

// withOwner limits the preloaded user to the fields the API exposes.
func withOwner(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "avatar")
}

// GetAll retrieves all profiles with their owners' name and avatar.
func (r *GORMProfileRepository) GetAll(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.WithContext(ctx).Preload("User", withOwner).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to get all profiles: %w", err)
	}
	return profiles, nil
}

// GetByUserID retrieves the profile owned by the given user.
func (r *GORMProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Preload("User", withOwner).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

// Upsert creates or patches the profile for userID inside a single
// transaction, so two concurrent writes from the same user cannot interleave
// a find with a stale write.
func (r *GORMProfileRepository) Upsert(ctx context.Context, userID string, patch *models.ProfilePatch) (*models.Profile, error) {
	var result models.Profile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Profile
		err := tx.First(&existing, "user_id = ?", userID).Error
		switch {
		case err == nil:
			patch.Apply(&existing)
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("failed to update profile: %w", err)
			}
			result = existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			created := models.Profile{
				ID:     uuid.New().String(),
				UserID: userID,
			}
			patch.Apply(&created)
			if err := tx.Create(&created).Error; err != nil {
				return fmt.Errorf("failed to create profile: %w", err)
			}
			result = created
			return nil
		default:
			return fmt.Errorf("failed to look up profile for user %s: %w", userID, err)
		}
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteWithUser removes the profile and then its owning user in one
// transaction. The profile references the user, so it goes first; the
// transaction guarantees we never end up with a profile pointing at a
// deleted user.
func (r *GORMProfileRepository) DeleteWithUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Profile{}, "user_id = ?", userID).Error; err != nil {
			return fmt.Errorf("failed to delete profile for user %s: %w", userID, err)
		}
		if err := tx.Delete(&models.User{}, "id = ?", userID).Error; err != nil {
			return fmt.Errorf("failed to delete user %s: %w", userID, err)
		}
		return nil
	})
}
