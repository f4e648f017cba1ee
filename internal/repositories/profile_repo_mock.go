package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/G-Ostolaza/EngineerConnect/internal/models"
)

// MockProfileRepository is an in-memory implementation of ProfileRepository.
// It shares a MockUserRepository so reads can inline owner fields and the
// cascading delete can remove the owner as well.
type MockProfileRepository struct {
	profiles map[string]models.Profile // keyed by owning user ID
	users    *MockUserRepository
	mu       sync.RWMutex
}

// NewMockProfileRepository creates a new instance of MockProfileRepository.
func NewMockProfileRepository(users *MockUserRepository) *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[string]models.Profile),
		users:    users,
	}
}

// owner returns the name/avatar view of the owning user, if known.
func (r *MockProfileRepository) owner(ctx context.Context, userID string) *models.User {
	if r.users == nil {
		return nil
	}
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return nil
	}
	return &models.User{ID: user.ID, Name: user.Name, Avatar: user.Avatar}
}

// GetAll returns all profiles.
func (r *MockProfileRepository) GetAll(ctx context.Context) ([]models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profileList := make([]models.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		p.User = r.owner(ctx, p.UserID)
		profileList = append(profileList, p)
	}
	return profileList, nil
}

// GetByUserID returns the profile owned by the given user.
func (r *MockProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	profile.User = r.owner(ctx, userID)
	return &profile, nil
}

// Upsert creates or patches the profile for userID under a single lock.
func (r *MockProfileRepository) Upsert(ctx context.Context, userID string, patch *models.ProfilePatch) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.profiles[userID]
	if !ok {
		profile = models.Profile{
			ID:     uuid.New().String(),
			UserID: userID,
		}
	}
	patch.Apply(&profile)
	r.profiles[userID] = profile
	return &profile, nil
}

// DeleteWithUser removes the profile and its owning user.
func (r *MockProfileRepository) DeleteWithUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	delete(r.profiles, userID)
	r.mu.Unlock()

	if r.users != nil {
		r.users.Delete(userID)
	}
	return nil
}
