package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/G-Ostolaza/EngineerConnect/internal/models"
	"github.com/G-Ostolaza/EngineerConnect/internal/repositories"
	"github.com/G-Ostolaza/EngineerConnect/pkg/rabbitmq"
)

// ProfileService handles business logic related to profiles.
type ProfileService struct {
	profileRepo  repositories.ProfileRepository
	mqClient     *rabbitmq.Client
	storeTimeout time.Duration // bound for each store operation
}

// NewProfileService creates a new ProfileService. mqClient may be nil, in
// which case event publication is skipped. storeTimeout <= 0 disables the
// per-operation deadline.
func NewProfileService(profileRepo repositories.ProfileRepository, mqClient *rabbitmq.Client, storeTimeout time.Duration) *ProfileService {
	return &ProfileService{
		profileRepo:  profileRepo,
		mqClient:     mqClient,
		storeTimeout: storeTimeout,
	}
}

// storeContext derives the bounded context used for a single store operation.
func (s *ProfileService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}

// GetAllProfiles retrieves all profiles with owner name/avatar inlined.
func (s *ProfileService) GetAllProfiles(ctx context.Context) ([]models.Profile, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()
	return s.profileRepo.GetAll(ctx)
}

// GetProfileByUserID retrieves the profile owned by the given user.
// A malformed user ID can never match a stored record, so it is reported the
// same way as an absent one instead of surfacing a store error.
func (s *ProfileService) GetProfileByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	if uuid.Validate(userID) != nil {
		return nil, repositories.ErrNotFound
	}
	ctx, cancel := s.storeContext(ctx)
	defer cancel()
	return s.profileRepo.GetByUserID(ctx, userID)
}

// ParseSkills splits a comma-separated skills string into a trimmed list,
// preserving the original order.
func ParseSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	parsed := make([]string, 0, len(parts))
	for _, p := range parts {
		parsed = append(parsed, strings.TrimSpace(p))
	}
	return parsed
}

// buildPatch translates the request body into the sparse update set: only
// fields present in the body make it into the patch.
func buildPatch(input *models.ProfileInput) *models.ProfilePatch {
	patch := &models.ProfilePatch{
		Company:        input.Company,
		Website:        input.Website,
		Location:       input.Location,
		Bio:            input.Bio,
		Status:         input.Status,
		GithubUsername: input.GithubUsername,
		Social: models.SocialPatch{
			Youtube:   input.Youtube,
			Twitter:   input.Twitter,
			Facebook:  input.Facebook,
			Linkedin:  input.Linkedin,
			Instagram: input.Instagram,
		},
	}
	if input.Skills != nil {
		patch.Skills = ParseSkills(*input.Skills)
	}
	return patch
}

// CreateOrUpdateProfile creates the caller's profile on first write and
// merge-patches it afterwards. The repository performs the create-or-update
// atomically, so two concurrent writes from the same caller cannot lose the
// race between the lookup and the write.
func (s *ProfileService) CreateOrUpdateProfile(ctx context.Context, userID string, input *models.ProfileInput) (*models.Profile, error) {
	patch := buildPatch(input)

	opCtx, cancel := s.storeContext(ctx)
	defer cancel()
	profile, err := s.profileRepo.Upsert(opCtx, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile for user %s: %w", userID, err)
	}

	s.publish("profile.updated", map[string]interface{}{
		"profileID": profile.ID,
		"userID":    profile.UserID,
		"status":    profile.Status,
	})

	return profile, nil
}

// DeleteAccount removes the caller's profile and then their user record in a
// single store transaction, so a failure partway through cannot leave a
// profile pointing at a deleted user. An account.deleted event is published
// afterwards so downstream consumers can clean up anything else that
// references the user.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID string) error {
	opCtx, cancel := s.storeContext(ctx)
	defer cancel()
	if err := s.profileRepo.DeleteWithUser(opCtx, userID); err != nil {
		return fmt.Errorf("failed to delete account for user %s: %w", userID, err)
	}

	s.publish("account.deleted", map[string]interface{}{
		"userID": userID,
	})

	return nil
}

// publish sends a best-effort event. Publication failures are logged, never
// surfaced to the caller: the store is the source of truth.
func (s *ProfileService) publish(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish("", routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
