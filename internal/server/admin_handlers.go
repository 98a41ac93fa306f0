package server

import (
	"bytes"
	"time"

	"skillswap/internal/cache"
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPlatformStats handles GET /api/admin/stats
func (s *Server) GetPlatformStats(c *fiber.Ctx) error {
	stats, err := s.adminService.Stats(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(stats)
}

// BanUser handles POST /api/admin/users/:id/ban
func (s *Server) BanUser(c *fiber.Ctx) error {
	adminID := c.Locals("userID").(uint)

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if banErr := s.adminService.BanUser(c.Context(), adminID, targetID); banErr != nil {
		return respondServiceError(c, banErr)
	}
	return c.JSON(fiber.Map{"message": "User banned"})
}

// UnbanUser handles POST /api/admin/users/:id/unban
func (s *Server) UnbanUser(c *fiber.Ctx) error {
	adminID := c.Locals("userID").(uint)

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if unbanErr := s.adminService.UnbanUser(c.Context(), adminID, targetID); unbanErr != nil {
		return respondServiceError(c, unbanErr)
	}
	return c.JSON(fiber.Map{"message": "User unbanned"})
}

// GetActiveMessages handles GET /api/messages/active
// Serves the active broadcast banners, cached in Redis with a short TTL.
func (s *Server) GetActiveMessages(c *fiber.Ctx) error {
	if cached := cache.GetActiveMessages(c.Context(), s.redis); cached != nil {
		return c.JSON(fiber.Map{"messages": cached})
	}

	messages, err := s.adminService.ListMessages(c.Context(), true)
	if err != nil {
		return respondServiceError(c, err)
	}

	cache.SetActiveMessages(c.Context(), s.redis, messages)
	return c.JSON(fiber.Map{"messages": messages})
}

// GetAllMessages handles GET /api/admin/messages
func (s *Server) GetAllMessages(c *fiber.Ctx) error {
	messages, err := s.adminService.ListMessages(c.Context(), false)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"messages": messages})
}

// CreateMessage handles POST /api/admin/messages
func (s *Server) CreateMessage(c *fiber.Ctx) error {
	var req struct {
		Title    string `json:"title"`
		Body     string `json:"body"`
		Severity string `json:"severity"`
		IsActive *bool  `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, err := s.adminService.CreateMessage(c.Context(), service.MessageInput{
		Title:    req.Title,
		Body:     req.Body,
		Severity: models.MessageSeverity(req.Severity),
		IsActive: req.IsActive,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	cache.InvalidateActiveMessages(c.Context(), s.redis)
	return c.Status(fiber.StatusCreated).JSON(message)
}

// UpdateMessage handles PUT /api/admin/messages/:id
func (s *Server) UpdateMessage(c *fiber.Ctx) error {
	messageID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title    string `json:"title"`
		Body     string `json:"body"`
		Severity string `json:"severity"`
		IsActive *bool  `json:"is_active"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, updateErr := s.adminService.UpdateMessage(c.Context(), messageID, service.MessageInput{
		Title:    req.Title,
		Body:     req.Body,
		Severity: models.MessageSeverity(req.Severity),
		IsActive: req.IsActive,
	})
	if updateErr != nil {
		return respondServiceError(c, updateErr)
	}

	cache.InvalidateActiveMessages(c.Context(), s.redis)
	return c.JSON(message)
}

// DeleteMessage handles DELETE /api/admin/messages/:id
func (s *Server) DeleteMessage(c *fiber.Ctx) error {
	messageID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if deleteErr := s.adminService.DeleteMessage(c.Context(), messageID); deleteErr != nil {
		return respondServiceError(c, deleteErr)
	}

	cache.InvalidateActiveMessages(c.Context(), s.redis)
	return c.JSON(fiber.Map{"message": "Message deleted"})
}

// UsersReport handles GET /api/admin/reports/users.csv
func (s *Server) UsersReport(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := s.adminService.WriteUsersReport(c.Context(), &buf); err != nil {
		return respondServiceError(c, err)
	}
	return s.sendCSV(c, "users-report", buf.Bytes())
}

// SwapsReport handles GET /api/admin/reports/swaps.csv
func (s *Server) SwapsReport(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := s.adminService.WriteSwapsReport(c.Context(), &buf); err != nil {
		return respondServiceError(c, err)
	}
	return s.sendCSV(c, "swaps-report", buf.Bytes())
}

func (s *Server) sendCSV(c *fiber.Ctx, name string, payload []byte) error {
	filename := name + "-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(payload)
}
