package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/G-Ostolaza/EngineerConnect/internal/models"
	"github.com/G-Ostolaza/EngineerConnect/internal/repositories"
	"github.com/G-Ostolaza/EngineerConnect/internal/services"
)

// ProfileHandler handles HTTP requests for profiles.
type ProfileHandler struct {
	service  *services.ProfileService
	validate *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the profile routes with the Fiber app. This is the
// single authoritative route table; authGate protects the private routes.
//
// Status mapping is uniform across handlers: 400 for validation failures,
// 401 from the auth gate, 404 for absent (or malformed) lookups, 500 for
// store failures.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router, authGate fiber.Handler) {
	router.Get("/profiles", h.HandleGetAllProfiles)

	profileRoutes := router.Group("/profile")
	profileRoutes.Get("/me", authGate, h.HandleGetMyProfile)
	profileRoutes.Get("/user/:user_id", h.HandleGetProfileByUserID)
	profileRoutes.Post("/", authGate, h.HandleCreateOrUpdateProfile)
	profileRoutes.Delete("/", authGate, h.HandleDeleteAccount)
}

// callerID returns the authenticated user's ID placed in the locals by the
// auth gate.
func callerID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}

// HandleGetAllProfiles retrieves all profiles joined with owner name/avatar.
func (h *ProfileHandler) HandleGetAllProfiles(c *fiber.Ctx) error {
	profiles, err := h.service.GetAllProfiles(c.UserContext())
	if err != nil {
		log.Printf("Error getting all profiles: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve profiles",
		})
	}
	return c.JSON(profiles)
}

// HandleGetMyProfile retrieves the caller's own profile.
func (h *ProfileHandler) HandleGetMyProfile(c *fiber.Ctx) error {
	profile, err := h.service.GetProfileByUserID(c.UserContext(), callerID(c))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "There is no profile for this user",
			})
		}
		log.Printf("Error getting profile for user %s: %v", callerID(c), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve profile",
		})
	}
	return c.JSON(profile)
}

// HandleGetProfileByUserID retrieves the profile for a path-supplied user ID.
// Malformed IDs get the same response as absent ones.
func (h *ProfileHandler) HandleGetProfileByUserID(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	profile, err := h.service.GetProfileByUserID(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "There is no profile for this user",
			})
		}
		log.Printf("Error getting profile for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve profile",
		})
	}
	return c.JSON(profile)
}

// HandleCreateOrUpdateProfile creates the caller's profile or merge-patches
// the existing one. Validation runs before any store access.
func (h *ProfileHandler) HandleCreateOrUpdateProfile(c *fiber.Ctx) error {
	var input models.ProfileInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing profile request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationMessages(err),
		})
	}

	profile, err := h.service.CreateOrUpdateProfile(c.UserContext(), callerID(c), &input)
	if err != nil {
		log.Printf("Error upserting profile for user %s: %v", callerID(c), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save profile",
		})
	}
	return c.JSON(profile)
}

// HandleDeleteAccount deletes the caller's profile and user record.
func (h *ProfileHandler) HandleDeleteAccount(c *fiber.Ctx) error {
	if err := h.service.DeleteAccount(c.UserContext(), callerID(c)); err != nil {
		log.Printf("Error deleting account for user %s: %v", callerID(c), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete account",
		})
	}
	return c.JSON(fiber.Map{
		"message": "User deleted",
	})
}

// validationMessages turns validator errors into field-level messages.
func validationMessages(err error) []fiber.Map {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []fiber.Map{{"message": "Validation failed"}}
	}
	messages := make([]fiber.Map, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fiber.Map{
			"field":   e.Field(),
			"message": fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag()),
		})
	}
	return messages
}
