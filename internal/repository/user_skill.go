package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// UserSkillRepository defines the interface for skill association operations
type UserSkillRepository interface {
	Create(ctx context.Context, assoc *models.UserSkill) error
	GetByID(ctx context.Context, id uint) (*models.UserSkill, error)
	Find(ctx context.Context, userID, skillID uint, role models.SkillRole) (*models.UserSkill, error)
	ListByUser(ctx context.Context, userID uint) ([]models.UserSkill, error)
	Delete(ctx context.Context, userID, skillID uint, role models.SkillRole) error
}

// userSkillRepository implements UserSkillRepository
type userSkillRepository struct {
	db *gorm.DB
}

// NewUserSkillRepository creates a new skill association repository
func NewUserSkillRepository(db *gorm.DB) UserSkillRepository {
	return &userSkillRepository{db: db}
}

func (r *userSkillRepository) Create(ctx context.Context, assoc *models.UserSkill) error {
	if err := r.db.WithContext(ctx).Create(assoc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Skill is already listed in this role")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userSkillRepository) GetByID(ctx context.Context, id uint) (*models.UserSkill, error) {
	var assoc models.UserSkill
	if err := r.db.WithContext(ctx).Preload("Skill").First(&assoc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Skill association", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &assoc, nil
}

// Find returns the association for (user, skill, role), or nil when absent.
func (r *userSkillRepository) Find(ctx context.Context, userID, skillID uint, role models.SkillRole) (*models.UserSkill, error) {
	var assoc models.UserSkill
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND skill_id = ? AND role = ?", userID, skillID, role).
		Preload("Skill").
		First(&assoc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &assoc, nil
}

func (r *userSkillRepository) ListByUser(ctx context.Context, userID uint) ([]models.UserSkill, error) {
	var assocs []models.UserSkill
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Skill").
		Order("role, created_at").
		Find(&assocs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return assocs, nil
}

func (r *userSkillRepository) Delete(ctx context.Context, userID, skillID uint, role models.SkillRole) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND skill_id = ? AND role = ?", userID, skillID, role).
		Delete(&models.UserSkill{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Skill association", skillID)
	}
	return nil
}
