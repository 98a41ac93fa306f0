package server

import (
	"strings"

	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetSkills handles GET /api/skills
// Lists the skill catalog grouped by category ordering.
func (s *Server) GetSkills(c *fiber.Ctx) error {
	skills, err := s.skillRepo.List(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"skills": skills})
}

// CreateSkill handles POST /api/admin/skills
func (s *Server) CreateSkill(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Category    string `json:"category"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Skill name is required"))
	}

	existing, err := s.skillRepo.GetByName(c.Context(), req.Name)
	if err != nil {
		return respondServiceError(c, err)
	}
	if existing != nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewConflictError("A skill with this name already exists"))
	}

	skill := &models.Skill{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	}
	if createErr := s.skillRepo.Create(c.Context(), skill); createErr != nil {
		return respondServiceError(c, createErr)
	}
	return c.Status(fiber.StatusCreated).JSON(skill)
}

// UpdateSkill handles PUT /api/admin/skills/:id
func (s *Server) UpdateSkill(c *fiber.Ctx) error {
	skillID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        *string `json:"name"`
		Category    *string `json:"category"`
		Description *string `json:"description"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	skill, getErr := s.skillRepo.GetByID(c.Context(), skillID)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Skill name cannot be empty"))
		}
		skill.Name = name
	}
	if req.Category != nil {
		skill.Category = *req.Category
	}
	if req.Description != nil {
		skill.Description = *req.Description
	}

	if updateErr := s.skillRepo.Update(c.Context(), skill); updateErr != nil {
		return respondServiceError(c, updateErr)
	}
	return c.JSON(skill)
}
