// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// BrowseFilter holds the optional filters for the public user discovery query.
type BrowseFilter struct {
	Search   string // matches name or location, case-insensitive
	Location string
	Skill    string // matches offered or wanted skill names, case-insensitive
	Page     int
	PageSize int
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByIDWithSkills(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	SetBanned(ctx context.Context, id uint, banned bool) error
	Browse(ctx context.Context, filter BrowseFilter) ([]models.User, int64, error)
	CountUsers(ctx context.Context) (total int64, banned int64, err error)
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByIDWithSkills(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Skills.Skill").
		First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // No user with this email
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) SetBanned(ctx context.Context, id uint, banned bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("is_banned", banned)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	return nil
}

// Browse returns public profiles matching the filter, newest first.
func (r *userRepository) Browse(ctx context.Context, filter BrowseFilter) ([]models.User, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("is_public = ?", true)

	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(location) LIKE ?", like, like)
	}
	if filter.Location != "" {
		like := "%" + strings.ToLower(filter.Location) + "%"
		query = query.Where("LOWER(location) LIKE ?", like)
	}
	if filter.Skill != "" {
		like := "%" + strings.ToLower(filter.Skill) + "%"
		// Subquery over both offered and wanted associations.
		sub := r.db.Table("user_skills").
			Select("user_skills.user_id").
			Joins("JOIN skills ON skills.id = user_skills.skill_id").
			Where("LOWER(skills.name) LIKE ?", like)
		query = query.Where("users.id IN (?)", sub)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var users []models.User
	if err := query.
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Preload("Skills.Skill").
		Find(&users).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	return users, total, nil
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, int64, error) {
	var total, banned int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return 0, 0, models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("is_banned = ?", true).Count(&banned).Error; err != nil {
		return 0, 0, models.NewInternalError(err)
	}
	return total, banned, nil
}
