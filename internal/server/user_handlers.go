package server

import (
	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := s.userService.GetProfile(c.Context(), userID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Name         *string `json:"name"`
		Location     *string `json:"location"`
		Availability *string `json:"availability"`
		PhotoURL     *string `json:"photo_url"`
		IsPublic     *bool   `json:"is_public"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), userID, service.UpdateProfileInput{
		Name:         req.Name,
		Location:     req.Location,
		Availability: req.Availability,
		PhotoURL:     req.PhotoURL,
		IsPublic:     req.IsPublic,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	viewerID := c.Locals("userID").(uint)

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.userService.GetProfile(c.Context(), viewerID, targetID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// BrowseUsers handles GET /api/browse
// Supports search, location and skill query filters with pagination.
// Only public profiles are listed.
func (s *Server) BrowseUsers(c *fiber.Ctx) error {
	pagination := parsePagination(c, 20)

	result, err := s.userService.Browse(c.Context(), repository.BrowseFilter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		Skill:    c.Query("skill"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}
