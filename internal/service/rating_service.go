package service

import (
	"context"
	"strconv"

	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"
)

// CreateRatingInput carries the request body for rating a swap.
type CreateRatingInput struct {
	SwapID   uint
	Score    int
	Feedback string
}

// RatingService provides rating submission and lookup business logic.
type RatingService struct {
	ratingRepo repository.RatingRepository
	swapRepo   repository.SwapRepository
}

// NewRatingService returns a new RatingService.
func NewRatingService(ratingRepo repository.RatingRepository, swapRepo repository.SwapRepository) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		swapRepo:   swapRepo,
	}
}

// Create records feedback for an accepted swap. The rated party is the other
// participant. Each participant may rate a swap once.
func (s *RatingService) Create(ctx context.Context, raterID uint, in CreateRatingInput) (*models.Rating, error) {
	if !models.ValidScore(in.Score) {
		return nil, models.NewValidationError("Score must be an integer between 1 and 5")
	}

	swap, err := s.swapRepo.GetByID(ctx, in.SwapID)
	if err != nil {
		return nil, err
	}

	ratedID := swap.Counterparty(raterID)
	if ratedID == 0 {
		return nil, models.NewForbiddenError("Only swap participants may leave a rating")
	}

	if swap.Status != models.SwapStatusAccepted {
		return nil, models.NewInvalidStateError("Only accepted swaps can be rated")
	}

	existing, err := s.ratingRepo.FindBySwapAndRater(ctx, in.SwapID, raterID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("You have already rated this swap")
	}

	rating := &models.Rating{
		SwapRequestID: in.SwapID,
		RaterID:       raterID,
		RatedID:       ratedID,
		Score:         in.Score,
		Feedback:      in.Feedback,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}

	observability.RatingsSubmitted.WithLabelValues(strconv.Itoa(in.Score)).Inc()

	return rating, nil
}

// ListForUser returns the ratings received by a user along with their average.
func (s *RatingService) ListForUser(ctx context.Context, ratedID uint) ([]models.Rating, float64, error) {
	ratings, err := s.ratingRepo.ListForUser(ctx, ratedID)
	if err != nil {
		return nil, 0, err
	}
	avg, err := s.ratingRepo.AverageForUser(ctx, ratedID)
	if err != nil {
		return nil, 0, err
	}
	return ratings, avg, nil
}
