// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"skillswap/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser persists a user with fake but realistic profile fields.
// All seeded users share the password "password123".
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	name := gofakeit.Name()
	user := &models.User{
		Name:         name,
		Email:        gofakeit.Email(),
		Password:     string(hashedPassword),
		Location:     gofakeit.City(),
		Availability: f.randomAvailability(),
		PhotoURL:     fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		IsPublic:     f.r.Float32() < 0.85,
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateAssociation links a user to a catalog skill in the given role with a
// role-appropriate level.
func (f *Factory) CreateAssociation(user *models.User, skill *models.Skill, role models.SkillRole) (*models.UserSkill, error) {
	assoc := &models.UserSkill{
		UserID:      user.ID,
		SkillID:     skill.ID,
		Role:        role,
		Level:       f.randomLevel(role),
		Description: gofakeit.Sentence(8),
	}
	if err := f.db.Create(assoc).Error; err != nil {
		return nil, err
	}
	return assoc, nil
}

// CreateSwap persists a swap request between two offered associations.
func (f *Factory) CreateSwap(requester, recipient *models.User, offered, requested *models.UserSkill, status models.SwapStatus) (*models.SwapRequest, error) {
	swap := &models.SwapRequest{
		RequesterID:      requester.ID,
		RecipientID:      recipient.ID,
		OfferedSkillID:   offered.ID,
		RequestedSkillID: requested.ID,
		Message:          gofakeit.Sentence(10),
		Status:           status,
	}
	if err := f.db.Create(swap).Error; err != nil {
		return nil, err
	}
	return swap, nil
}

// CreateRating persists feedback from one swap participant about the other.
func (f *Factory) CreateRating(swap *models.SwapRequest, raterID uint) (*models.Rating, error) {
	rating := &models.Rating{
		SwapRequestID: swap.ID,
		RaterID:       raterID,
		RatedID:       swap.Counterparty(raterID),
		Score:         f.r.Intn(models.MaxRatingScore-models.MinRatingScore+1) + models.MinRatingScore,
		Feedback:      gofakeit.Sentence(12),
	}
	if err := f.db.Create(rating).Error; err != nil {
		return nil, err
	}
	return rating, nil
}

func (f *Factory) randomAvailability() string {
	options := []string{"weekends", "weekday evenings", "mornings", "flexible"}
	return options[f.r.Intn(len(options))]
}

func (f *Factory) randomLevel(role models.SkillRole) string {
	if role == models.SkillRoleOffered {
		levels := []string{models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced}
		return levels[f.r.Intn(len(levels))]
	}
	levels := []string{models.LevelLow, models.LevelMedium, models.LevelHigh}
	return levels[f.r.Intn(len(levels))]
}
