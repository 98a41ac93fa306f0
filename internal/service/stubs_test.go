package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/repository"
)

type userRepoStub struct {
	createFn            func(context.Context, *models.User) error
	getByIDFn           func(context.Context, uint) (*models.User, error)
	getByIDWithSkillsFn func(context.Context, uint) (*models.User, error)
	getByEmailFn        func(context.Context, string) (*models.User, error)
	updateFn            func(context.Context, *models.User) error
	setBannedFn         func(context.Context, uint, bool) error
	browseFn            func(context.Context, repository.BrowseFilter) ([]models.User, int64, error)
	countUsersFn        func(context.Context) (int64, int64, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithSkills(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDWithSkillsFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) SetBanned(ctx context.Context, id uint, banned bool) error {
	return s.setBannedFn(ctx, id, banned)
}
func (s *userRepoStub) Browse(ctx context.Context, filter repository.BrowseFilter) ([]models.User, int64, error) {
	return s.browseFn(ctx, filter)
}
func (s *userRepoStub) CountUsers(ctx context.Context) (int64, int64, error) {
	return s.countUsersFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:            func(context.Context, *models.User) error { return nil },
		getByIDFn:           func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByIDWithSkillsFn: func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:        func(context.Context, string) (*models.User, error) { return nil, nil },
		updateFn:            func(context.Context, *models.User) error { return nil },
		setBannedFn:         func(context.Context, uint, bool) error { return nil },
		browseFn: func(context.Context, repository.BrowseFilter) ([]models.User, int64, error) {
			return nil, 0, nil
		},
		countUsersFn: func(context.Context) (int64, int64, error) { return 0, 0, nil },
	}
}

type userSkillRepoStub struct {
	createFn     func(context.Context, *models.UserSkill) error
	getByIDFn    func(context.Context, uint) (*models.UserSkill, error)
	findFn       func(context.Context, uint, uint, models.SkillRole) (*models.UserSkill, error)
	listByUserFn func(context.Context, uint) ([]models.UserSkill, error)
	deleteFn     func(context.Context, uint, uint, models.SkillRole) error
}

func (s *userSkillRepoStub) Create(ctx context.Context, assoc *models.UserSkill) error {
	return s.createFn(ctx, assoc)
}
func (s *userSkillRepoStub) GetByID(ctx context.Context, id uint) (*models.UserSkill, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userSkillRepoStub) Find(ctx context.Context, userID, skillID uint, role models.SkillRole) (*models.UserSkill, error) {
	return s.findFn(ctx, userID, skillID, role)
}
func (s *userSkillRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.UserSkill, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *userSkillRepoStub) Delete(ctx context.Context, userID, skillID uint, role models.SkillRole) error {
	return s.deleteFn(ctx, userID, skillID, role)
}

func noopUserSkillRepo() *userSkillRepoStub {
	return &userSkillRepoStub{
		createFn:  func(context.Context, *models.UserSkill) error { return nil },
		getByIDFn: func(context.Context, uint) (*models.UserSkill, error) { return &models.UserSkill{}, nil },
		findFn: func(context.Context, uint, uint, models.SkillRole) (*models.UserSkill, error) {
			return &models.UserSkill{}, nil
		},
		listByUserFn: func(context.Context, uint) ([]models.UserSkill, error) { return nil, nil },
		deleteFn:     func(context.Context, uint, uint, models.SkillRole) error { return nil },
	}
}

type skillRepoStub struct {
	listFn      func(context.Context) ([]models.Skill, error)
	getByIDFn   func(context.Context, uint) (*models.Skill, error)
	getByNameFn func(context.Context, string) (*models.Skill, error)
	createFn    func(context.Context, *models.Skill) error
	updateFn    func(context.Context, *models.Skill) error
}

func (s *skillRepoStub) List(ctx context.Context) ([]models.Skill, error) { return s.listFn(ctx) }
func (s *skillRepoStub) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	return s.getByIDFn(ctx, id)
}
func (s *skillRepoStub) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	return s.getByNameFn(ctx, name)
}
func (s *skillRepoStub) Create(ctx context.Context, skill *models.Skill) error {
	return s.createFn(ctx, skill)
}
func (s *skillRepoStub) Update(ctx context.Context, skill *models.Skill) error {
	return s.updateFn(ctx, skill)
}

func noopSkillRepo() *skillRepoStub {
	return &skillRepoStub{
		listFn:      func(context.Context) ([]models.Skill, error) { return nil, nil },
		getByIDFn:   func(context.Context, uint) (*models.Skill, error) { return &models.Skill{}, nil },
		getByNameFn: func(context.Context, string) (*models.Skill, error) { return nil, nil },
		createFn:    func(context.Context, *models.Skill) error { return nil },
		updateFn:    func(context.Context, *models.Skill) error { return nil },
	}
}

type swapRepoStub struct {
	createFn             func(context.Context, *models.SwapRequest) error
	getByIDFn            func(context.Context, uint) (*models.SwapRequest, error)
	findPendingBetweenFn func(context.Context, uint, uint) (*models.SwapRequest, error)
	updateStatusFn       func(context.Context, uint, models.SwapStatus, models.SwapStatus) error
	listForUserFn        func(context.Context, uint, repository.SwapFilter) ([]models.SwapRequest, error)
	countByStatusFn      func(context.Context) (map[models.SwapStatus]int64, error)
}

func (s *swapRepoStub) Create(ctx context.Context, swap *models.SwapRequest) error {
	return s.createFn(ctx, swap)
}
func (s *swapRepoStub) GetByID(ctx context.Context, id uint) (*models.SwapRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *swapRepoStub) FindPendingBetween(ctx context.Context, requesterID, recipientID uint) (*models.SwapRequest, error) {
	return s.findPendingBetweenFn(ctx, requesterID, recipientID)
}
func (s *swapRepoStub) UpdateStatus(ctx context.Context, id uint, from, to models.SwapStatus) error {
	return s.updateStatusFn(ctx, id, from, to)
}
func (s *swapRepoStub) ListForUser(ctx context.Context, userID uint, filter repository.SwapFilter) ([]models.SwapRequest, error) {
	return s.listForUserFn(ctx, userID, filter)
}
func (s *swapRepoStub) CountByStatus(ctx context.Context) (map[models.SwapStatus]int64, error) {
	return s.countByStatusFn(ctx)
}

func noopSwapRepo() *swapRepoStub {
	return &swapRepoStub{
		createFn:  func(context.Context, *models.SwapRequest) error { return nil },
		getByIDFn: func(context.Context, uint) (*models.SwapRequest, error) { return &models.SwapRequest{}, nil },
		findPendingBetweenFn: func(context.Context, uint, uint) (*models.SwapRequest, error) {
			return nil, nil
		},
		updateStatusFn: func(context.Context, uint, models.SwapStatus, models.SwapStatus) error { return nil },
		listForUserFn: func(context.Context, uint, repository.SwapFilter) ([]models.SwapRequest, error) {
			return nil, nil
		},
		countByStatusFn: func(context.Context) (map[models.SwapStatus]int64, error) {
			return map[models.SwapStatus]int64{}, nil
		},
	}
}

type ratingRepoStub struct {
	createFn             func(context.Context, *models.Rating) error
	findBySwapAndRaterFn func(context.Context, uint, uint) (*models.Rating, error)
	listForUserFn        func(context.Context, uint) ([]models.Rating, error)
	averageForUserFn     func(context.Context, uint) (float64, error)
	averageFn            func(context.Context) (float64, error)
}

func (s *ratingRepoStub) Create(ctx context.Context, rating *models.Rating) error {
	return s.createFn(ctx, rating)
}
func (s *ratingRepoStub) FindBySwapAndRater(ctx context.Context, swapID, raterID uint) (*models.Rating, error) {
	return s.findBySwapAndRaterFn(ctx, swapID, raterID)
}
func (s *ratingRepoStub) ListForUser(ctx context.Context, ratedID uint) ([]models.Rating, error) {
	return s.listForUserFn(ctx, ratedID)
}
func (s *ratingRepoStub) AverageForUser(ctx context.Context, ratedID uint) (float64, error) {
	return s.averageForUserFn(ctx, ratedID)
}
func (s *ratingRepoStub) Average(ctx context.Context) (float64, error) {
	return s.averageFn(ctx)
}

func noopRatingRepo() *ratingRepoStub {
	return &ratingRepoStub{
		createFn:             func(context.Context, *models.Rating) error { return nil },
		findBySwapAndRaterFn: func(context.Context, uint, uint) (*models.Rating, error) { return nil, nil },
		listForUserFn:        func(context.Context, uint) ([]models.Rating, error) { return nil, nil },
		averageForUserFn:     func(context.Context, uint) (float64, error) { return 0, nil },
		averageFn:            func(context.Context) (float64, error) { return 0, nil },
	}
}

type messageRepoStub struct {
	createFn  func(context.Context, *models.AdminMessage) error
	getByIDFn func(context.Context, uint) (*models.AdminMessage, error)
	updateFn  func(context.Context, *models.AdminMessage) error
	deleteFn  func(context.Context, uint) error
	listFn    func(context.Context, bool) ([]models.AdminMessage, error)
}

func (s *messageRepoStub) Create(ctx context.Context, message *models.AdminMessage) error {
	return s.createFn(ctx, message)
}
func (s *messageRepoStub) GetByID(ctx context.Context, id uint) (*models.AdminMessage, error) {
	return s.getByIDFn(ctx, id)
}
func (s *messageRepoStub) Update(ctx context.Context, message *models.AdminMessage) error {
	return s.updateFn(ctx, message)
}
func (s *messageRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *messageRepoStub) List(ctx context.Context, activeOnly bool) ([]models.AdminMessage, error) {
	return s.listFn(ctx, activeOnly)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		createFn:  func(context.Context, *models.AdminMessage) error { return nil },
		getByIDFn: func(context.Context, uint) (*models.AdminMessage, error) { return &models.AdminMessage{}, nil },
		updateFn:  func(context.Context, *models.AdminMessage) error { return nil },
		deleteFn:  func(context.Context, uint) error { return nil },
		listFn:    func(context.Context, bool) ([]models.AdminMessage, error) { return nil, nil },
	}
}
