package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// RatingRepository defines the interface for rating data operations
type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	FindBySwapAndRater(ctx context.Context, swapID, raterID uint) (*models.Rating, error)
	ListForUser(ctx context.Context, ratedID uint) ([]models.Rating, error)
	AverageForUser(ctx context.Context, ratedID uint) (float64, error)
	Average(ctx context.Context) (float64, error)
}

// ratingRepository implements RatingRepository
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("You have already rated this swap")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// FindBySwapAndRater returns the rating for (swap, rater), or nil when absent.
func (r *ratingRepository) FindBySwapAndRater(ctx context.Context, swapID, raterID uint) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.WithContext(ctx).
		Where("swap_request_id = ? AND rater_id = ?", swapID, raterID).
		First(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &rating, nil
}

func (r *ratingRepository) ListForUser(ctx context.Context, ratedID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.WithContext(ctx).
		Where("rated_id = ?", ratedID).
		Preload("Rater").
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ratings, nil
}

// AverageForUser returns the mean score received by the user, 0 when unrated.
func (r *ratingRepository) AverageForUser(ctx context.Context, ratedID uint) (float64, error) {
	var avg float64
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("rated_id = ?", ratedID).
		Select("COALESCE(AVG(score), 0)").
		Scan(&avg).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return avg, nil
}

// Average returns the platform-wide mean score, 0 when no ratings exist.
func (r *ratingRepository) Average(ctx context.Context) (float64, error) {
	var avg float64
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0)").
		Scan(&avg).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return avg, nil
}
