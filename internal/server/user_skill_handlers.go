package server

import (
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMySkills handles GET /api/users/me/skills
func (s *Server) GetMySkills(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	skills, err := s.userSkillService.List(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"skills": skills})
}

// AddMySkill handles POST /api/users/me/skills
func (s *Server) AddMySkill(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		SkillID     uint   `json:"skill_id"`
		Role        string `json:"role"`
		Level       string `json:"level"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.SkillID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Skill ID is required"))
	}

	assoc, err := s.userSkillService.Add(c.Context(), userID, service.AddSkillInput{
		SkillID:     req.SkillID,
		Role:        models.SkillRole(req.Role),
		Level:       req.Level,
		Description: req.Description,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(assoc)
}

// RemoveMySkill handles DELETE /api/users/me/skills/:skillId?role=offered
func (s *Server) RemoveMySkill(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	skillID, err := s.parseID(c, "skillId")
	if err != nil {
		return nil
	}

	role := models.SkillRole(c.Query("role"))
	if removeErr := s.userSkillService.Remove(c.Context(), userID, skillID, role); removeErr != nil {
		return respondServiceError(c, removeErr)
	}
	return c.JSON(fiber.Map{"message": "Skill removed"})
}
