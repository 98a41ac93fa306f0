package server

import (
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateRating handles POST /api/swaps/:id/ratings
func (s *Server) CreateRating(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	swapID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Score    int    `json:"score"`
		Feedback string `json:"feedback"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	rating, createErr := s.ratingService.Create(c.Context(), userID, service.CreateRatingInput{
		SwapID:   swapID,
		Score:    req.Score,
		Feedback: req.Feedback,
	})
	if createErr != nil {
		return respondServiceError(c, createErr)
	}
	return c.Status(fiber.StatusCreated).JSON(rating)
}

// GetUserRatings handles GET /api/users/:id/ratings
func (s *Server) GetUserRatings(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ratings, avg, listErr := s.ratingService.ListForUser(c.Context(), targetID)
	if listErr != nil {
		return respondServiceError(c, listErr)
	}
	return c.JSON(fiber.Map{
		"ratings": ratings,
		"average": avg,
	})
}
