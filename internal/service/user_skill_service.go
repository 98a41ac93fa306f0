package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/repository"
)

// AddSkillInput carries the request body for adding a skill association.
type AddSkillInput struct {
	SkillID     uint
	Role        models.SkillRole
	Level       string
	Description string
}

// UserSkillService manages the offered/wanted skill associations of a user.
type UserSkillService struct {
	userSkillRepo repository.UserSkillRepository
	skillRepo     repository.SkillRepository
}

// NewUserSkillService returns a new UserSkillService.
func NewUserSkillService(userSkillRepo repository.UserSkillRepository, skillRepo repository.SkillRepository) *UserSkillService {
	return &UserSkillService{
		userSkillRepo: userSkillRepo,
		skillRepo:     skillRepo,
	}
}

// Add creates a new association for the user. Fails when the skill is unknown,
// the role or level is invalid, or the (skill, role) pair is already listed.
func (s *UserSkillService) Add(ctx context.Context, userID uint, in AddSkillInput) (*models.UserSkill, error) {
	if !in.Role.Valid() {
		return nil, models.NewValidationError("Role must be 'offered' or 'wanted'")
	}
	if !in.Role.ValidLevel(in.Level) {
		if in.Role == models.SkillRoleOffered {
			return nil, models.NewValidationError("Proficiency must be beginner, intermediate or advanced")
		}
		return nil, models.NewValidationError("Priority must be low, medium or high")
	}

	if _, err := s.skillRepo.GetByID(ctx, in.SkillID); err != nil {
		return nil, err
	}

	existing, err := s.userSkillRepo.Find(ctx, userID, in.SkillID, in.Role)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Skill is already listed in this role")
	}

	assoc := &models.UserSkill{
		UserID:      userID,
		SkillID:     in.SkillID,
		Role:        in.Role,
		Level:       in.Level,
		Description: in.Description,
	}
	if err := s.userSkillRepo.Create(ctx, assoc); err != nil {
		return nil, err
	}

	return s.userSkillRepo.GetByID(ctx, assoc.ID)
}

// Remove deletes the caller's association for (skill, role).
func (s *UserSkillService) Remove(ctx context.Context, userID, skillID uint, role models.SkillRole) error {
	if !role.Valid() {
		return models.NewValidationError("Role must be 'offered' or 'wanted'")
	}
	return s.userSkillRepo.Delete(ctx, userID, skillID, role)
}

// List returns all associations of the user, offered first.
func (s *UserSkillService) List(ctx context.Context, userID uint) ([]models.UserSkill, error) {
	return s.userSkillRepo.ListByUser(ctx, userID)
}
