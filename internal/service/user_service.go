package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/repository"
)

// UpdateProfileInput carries the editable profile fields. Nil pointers leave
// the current value untouched.
type UpdateProfileInput struct {
	Name         *string
	Location     *string
	Availability *string
	PhotoURL     *string
	IsPublic     *bool
}

// BrowseResult is one page of public profiles.
type BrowseResult struct {
	Users    []models.UserProfile `json:"users"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// UserService provides profile and discovery business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile returns a user's profile with skill lists. Private profiles are
// only visible to their owner.
func (s *UserService) GetProfile(ctx context.Context, viewerID, userID uint) (*models.UserProfile, error) {
	user, err := s.userRepo.GetByIDWithSkills(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsPublic && viewerID != userID {
		return nil, models.NewNotFoundError("User", userID)
	}

	profile := user.Profile()
	return &profile, nil
}

// UpdateProfile applies partial profile edits for the user.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, models.NewValidationError("Name cannot be empty")
		}
		user.Name = *in.Name
	}
	if in.Location != nil {
		user.Location = *in.Location
	}
	if in.Availability != nil {
		user.Availability = *in.Availability
	}
	if in.PhotoURL != nil {
		user.PhotoURL = *in.PhotoURL
	}
	if in.IsPublic != nil {
		user.IsPublic = *in.IsPublic
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Browse returns a page of public profiles matching the filter, each
// annotated with offered and wanted skill lists.
func (s *UserService) Browse(ctx context.Context, filter repository.BrowseFilter) (*BrowseResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	users, total, err := s.userRepo.Browse(ctx, filter)
	if err != nil {
		return nil, err
	}

	profiles := make([]models.UserProfile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, user.Profile())
	}

	return &BrowseResult{
		Users:    profiles,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
