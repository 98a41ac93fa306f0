package server

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDWithSkills(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetBanned(ctx context.Context, id uint, banned bool) error {
	args := m.Called(ctx, id, banned)
	return args.Error(0)
}

func (m *MockUserRepository) Browse(ctx context.Context, filter repository.BrowseFilter) ([]models.User, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// MockUserSkillRepository is a mock of the UserSkillRepository interface
type MockUserSkillRepository struct {
	mock.Mock
}

func (m *MockUserSkillRepository) Create(ctx context.Context, assoc *models.UserSkill) error {
	args := m.Called(ctx, assoc)
	return args.Error(0)
}

func (m *MockUserSkillRepository) GetByID(ctx context.Context, id uint) (*models.UserSkill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSkill), args.Error(1)
}

func (m *MockUserSkillRepository) Find(ctx context.Context, userID, skillID uint, role models.SkillRole) (*models.UserSkill, error) {
	args := m.Called(ctx, userID, skillID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSkill), args.Error(1)
}

func (m *MockUserSkillRepository) ListByUser(ctx context.Context, userID uint) ([]models.UserSkill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSkill), args.Error(1)
}

func (m *MockUserSkillRepository) Delete(ctx context.Context, userID, skillID uint, role models.SkillRole) error {
	args := m.Called(ctx, userID, skillID, role)
	return args.Error(0)
}

// MockSwapRepository is a mock of the SwapRepository interface
type MockSwapRepository struct {
	mock.Mock
}

func (m *MockSwapRepository) Create(ctx context.Context, swap *models.SwapRequest) error {
	args := m.Called(ctx, swap)
	return args.Error(0)
}

func (m *MockSwapRepository) GetByID(ctx context.Context, id uint) (*models.SwapRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SwapRequest), args.Error(1)
}

func (m *MockSwapRepository) FindPendingBetween(ctx context.Context, requesterID, recipientID uint) (*models.SwapRequest, error) {
	args := m.Called(ctx, requesterID, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SwapRequest), args.Error(1)
}

func (m *MockSwapRepository) UpdateStatus(ctx context.Context, id uint, from, to models.SwapStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *MockSwapRepository) ListForUser(ctx context.Context, userID uint, filter repository.SwapFilter) ([]models.SwapRequest, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SwapRequest), args.Error(1)
}

func (m *MockSwapRepository) CountByStatus(ctx context.Context) (map[models.SwapStatus]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[models.SwapStatus]int64), args.Error(1)
}

// MockRatingRepository is a mock of the RatingRepository interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) FindBySwapAndRater(ctx context.Context, swapID, raterID uint) (*models.Rating, error) {
	args := m.Called(ctx, swapID, raterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) ListForUser(ctx context.Context, ratedID uint) ([]models.Rating, error) {
	args := m.Called(ctx, ratedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) AverageForUser(ctx context.Context, ratedID uint) (float64, error) {
	args := m.Called(ctx, ratedID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRatingRepository) Average(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

// MockMessageRepository is a mock of the MessageRepository interface
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, message *models.AdminMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) GetByID(ctx context.Context, id uint) (*models.AdminMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminMessage), args.Error(1)
}

func (m *MockMessageRepository) Update(ctx context.Context, message *models.AdminMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMessageRepository) List(ctx context.Context, activeOnly bool) ([]models.AdminMessage, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AdminMessage), args.Error(1)
}

// MockSkillRepository is a mock of the SkillRepository interface
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) List(ctx context.Context) ([]models.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Skill), args.Error(1)
}

func (m *MockSkillRepository) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillRepository) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *MockSkillRepository) Update(ctx context.Context, skill *models.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}
