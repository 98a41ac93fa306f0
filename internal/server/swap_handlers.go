package server

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateSwap handles POST /api/swaps
func (s *Server) CreateSwap(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		RecipientID      uint   `json:"recipient_id"`
		OfferedSkillID   uint   `json:"offered_skill_id"`
		RequestedSkillID uint   `json:"requested_skill_id"`
		Message          string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.RecipientID == 0 || req.OfferedSkillID == 0 || req.RequestedSkillID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Recipient, offered skill, and requested skill are required"))
	}

	swap, err := s.swapService.Create(c.Context(), userID, service.CreateSwapInput{
		RecipientID:      req.RecipientID,
		OfferedSkillID:   req.OfferedSkillID,
		RequestedSkillID: req.RequestedSkillID,
		Message:          req.Message,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(swap)
}

// GetMySwaps handles GET /api/swaps?status=pending&direction=sent
func (s *Server) GetMySwaps(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	swaps, err := s.swapService.List(c.Context(), userID, c.Query("status"), c.Query("direction"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"swaps": swaps})
}

// GetSwap handles GET /api/swaps/:id
func (s *Server) GetSwap(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	swapID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	swap, getErr := s.swapService.Get(c.Context(), userID, swapID)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}
	return c.JSON(swap)
}

// AcceptSwap handles POST /api/swaps/:id/accept
func (s *Server) AcceptSwap(c *fiber.Ctx) error {
	return s.transitionSwap(c, s.swapService.Accept)
}

// RejectSwap handles POST /api/swaps/:id/reject
func (s *Server) RejectSwap(c *fiber.Ctx) error {
	return s.transitionSwap(c, s.swapService.Reject)
}

// CancelSwap handles POST /api/swaps/:id/cancel
func (s *Server) CancelSwap(c *fiber.Ctx) error {
	return s.transitionSwap(c, s.swapService.Cancel)
}

// transitionSwap factors the shared parse/respond logic of the three
// lifecycle endpoints.
func (s *Server) transitionSwap(c *fiber.Ctx, fn func(ctx context.Context, userID, swapID uint) (*models.SwapRequest, error)) error {
	userID := c.Locals("userID").(uint)

	swapID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	swap, transitionErr := fn(c.Context(), userID, swapID)
	if transitionErr != nil {
		return respondServiceError(c, transitionErr)
	}
	return c.JSON(swap)
}
