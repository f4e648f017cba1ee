package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/G-Ostolaza/EngineerConnect/internal/models"
	"github.com/G-Ostolaza/EngineerConnect/internal/repositories"
	"github.com/G-Ostolaza/EngineerConnect/internal/services"
)

// MockProfileRepository is a mock implementation of repositories.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetAll(ctx context.Context) ([]models.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, userID string, patch *models.ProfilePatch) (*models.Profile, error) {
	args := m.Called(ctx, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) DeleteWithUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

const callerID = "9f3b2c1a-0d4e-4f5a-8b6c-7d8e9f0a1b2c"

func strPtr(s string) *string { return &s }

func TestParseSkills(t *testing.T) {
	assert.Equal(t, []string{"js", "node", "react"}, services.ParseSkills("js, node, react"))
	assert.Equal(t, []string{"go"}, services.ParseSkills("go"))
	assert.Equal(t, []string{"a", "b"}, services.ParseSkills("  a  ,b"))
	// Splitting keeps empty tokens; only whitespace is trimmed.
	assert.Equal(t, []string{"a", "", "b"}, services.ParseSkills("a,,b"))
}

func TestProfileService_GetAllProfiles(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	service := services.NewProfileService(mockRepo, nil, 0)

	expected := []models.Profile{
		{ID: "1", UserID: callerID, Status: "Developer", Skills: []string{"go"}},
		{ID: "2", UserID: "another-user", Status: "Student", Skills: []string{"js"}},
	}

	mockRepo.On("GetAll", mock.Anything).Return(expected, nil).Once()

	profiles, err := service.GetAllProfiles(context.Background())

	assert.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Equal(t, expected, profiles)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_GetProfileByUserID(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	service := services.NewProfileService(mockRepo, nil, 0)

	expected := &models.Profile{ID: "1", UserID: callerID, Status: "Developer"}

	// Successful retrieval
	mockRepo.On("GetByUserID", mock.Anything, callerID).Return(expected, nil).Once()
	profile, err := service.GetProfileByUserID(context.Background(), callerID)
	assert.NoError(t, err)
	assert.Equal(t, expected, profile)
	mockRepo.AssertExpectations(t)

	// Profile not found
	absentID := "19a0a273-54f1-4f5b-b1f0-1111e68f4a77"
	mockRepo.On("GetByUserID", mock.Anything, absentID).Return(nil, repositories.ErrNotFound).Once()
	profile, err = service.GetProfileByUserID(context.Background(), absentID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, profile)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_GetProfileByUserID_MalformedID(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	service := services.NewProfileService(mockRepo, nil, 0)

	// A malformed ID behaves exactly like an absent one and never reaches
	// the store.
	profile, err := service.GetProfileByUserID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, profile)
	mockRepo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
}

func TestProfileService_CreateOrUpdateProfile(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	service := services.NewProfileService(mockRepo, nil, 0)

	input := &models.ProfileInput{
		Status:  strPtr("Developer"),
		Skills:  strPtr("js, node, react"),
		Company: strPtr("Acme"),
		Twitter: strPtr("https://twitter.com/acme"),
	}

	stored := &models.Profile{
		ID:      "1",
		UserID:  callerID,
		Status:  "Developer",
		Company: "Acme",
		Skills:  []string{"js", "node", "react"},
		Social:  models.SocialLinks{Twitter: "https://twitter.com/acme"},
	}

	mockRepo.On("Upsert", mock.Anything, callerID, mock.MatchedBy(func(patch *models.ProfilePatch) bool {
		return patch.Status != nil && *patch.Status == "Developer" &&
			patch.Company != nil && *patch.Company == "Acme" &&
			patch.Bio == nil && // absent in the body, must stay absent in the patch
			patch.Social.Twitter != nil && patch.Social.Youtube == nil &&
			assert.ObjectsAreEqual([]string{"js", "node", "react"}, patch.Skills)
	})).Return(stored, nil).Once()

	profile, err := service.CreateOrUpdateProfile(context.Background(), callerID, input)
	assert.NoError(t, err)
	assert.Equal(t, stored, profile)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_CreateOrUpdateProfile_StoreError(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	service := services.NewProfileService(mockRepo, nil, 0)

	input := &models.ProfileInput{
		Status: strPtr("Developer"),
		Skills: strPtr("go"),
	}

	mockRepo.On("Upsert", mock.Anything, callerID, mock.Anything).Return(nil, fmt.Errorf("database error")).Once()

	profile, err := service.CreateOrUpdateProfile(context.Background(), callerID, input)
	assert.Error(t, err)
	assert.Nil(t, profile)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProfileService_DeleteAccount(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	service := services.NewProfileService(mockRepo, nil, 0)

	// Successful deletion
	mockRepo.On("DeleteWithUser", mock.Anything, callerID).Return(nil).Once()
	err := service.DeleteAccount(context.Background(), callerID)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Store failure
	mockRepo.On("DeleteWithUser", mock.Anything, callerID).Return(fmt.Errorf("database error")).Once()
	err = service.DeleteAccount(context.Background(), callerID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}
