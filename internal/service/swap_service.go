// Package service contains the business logic layer of the application.
package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"
)

// CreateSwapInput carries the validated request body for creating a swap.
// Skill IDs refer to catalog skills; they are resolved against the offered
// associations of the two participants.
type CreateSwapInput struct {
	RecipientID      uint
	OfferedSkillID   uint
	RequestedSkillID uint
	Message          string
}

// SwapService provides the swap request lifecycle business logic.
type SwapService struct {
	swapRepo      repository.SwapRepository
	userRepo      repository.UserRepository
	userSkillRepo repository.UserSkillRepository
}

// NewSwapService returns a new SwapService.
func NewSwapService(swapRepo repository.SwapRepository, userRepo repository.UserRepository, userSkillRepo repository.UserSkillRepository) *SwapService {
	return &SwapService{
		swapRepo:      swapRepo,
		userRepo:      userRepo,
		userSkillRepo: userSkillRepo,
	}
}

// Create validates and creates a new pending swap request. Validation order is
// fixed: self-swap, recipient existence, recipient ban, requester's offered
// association, recipient's offered association, duplicate pending request.
// Nothing is written until every check has passed.
func (s *SwapService) Create(ctx context.Context, requesterID uint, in CreateSwapInput) (*models.SwapRequest, error) {
	if requesterID == in.RecipientID {
		return nil, models.NewValidationError("Cannot request a swap with yourself")
	}

	recipient, err := s.userRepo.GetByID(ctx, in.RecipientID)
	if err != nil {
		return nil, err
	}
	if recipient.IsBanned {
		return nil, models.NewBannedError("Recipient account is banned")
	}

	offered, err := s.userSkillRepo.Find(ctx, requesterID, in.OfferedSkillID, models.SkillRoleOffered)
	if err != nil {
		return nil, err
	}
	if offered == nil {
		return nil, models.NewValidationError("You have not listed the offered skill")
	}

	requested, err := s.userSkillRepo.Find(ctx, in.RecipientID, in.RequestedSkillID, models.SkillRoleOffered)
	if err != nil {
		return nil, err
	}
	if requested == nil {
		return nil, models.NewValidationError("Recipient does not offer the requested skill")
	}

	existing, err := s.swapRepo.FindPendingBetween(ctx, requesterID, in.RecipientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("A pending swap request to this user already exists")
	}

	swap := &models.SwapRequest{
		RequesterID:      requesterID,
		RecipientID:      in.RecipientID,
		OfferedSkillID:   offered.ID,
		RequestedSkillID: requested.ID,
		Message:          in.Message,
		Status:           models.SwapStatusPending,
	}
	if err := s.swapRepo.Create(ctx, swap); err != nil {
		return nil, err
	}

	observability.SwapRequestsCreated.Inc()

	return s.swapRepo.GetByID(ctx, swap.ID)
}

// Accept transitions a pending swap to accepted. Only the recipient may call.
func (s *SwapService) Accept(ctx context.Context, userID, swapID uint) (*models.SwapRequest, error) {
	return s.transition(ctx, userID, swapID, models.SwapStatusAccepted)
}

// Reject transitions a pending swap to rejected. Only the recipient may call.
func (s *SwapService) Reject(ctx context.Context, userID, swapID uint) (*models.SwapRequest, error) {
	return s.transition(ctx, userID, swapID, models.SwapStatusRejected)
}

// Cancel transitions a pending swap to cancelled. Only the requester may call.
// The record is kept (soft cancel) so the lifecycle remains auditable.
func (s *SwapService) Cancel(ctx context.Context, userID, swapID uint) (*models.SwapRequest, error) {
	return s.transition(ctx, userID, swapID, models.SwapStatusCancelled)
}

func (s *SwapService) transition(ctx context.Context, userID, swapID uint, to models.SwapStatus) (*models.SwapRequest, error) {
	swap, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}

	switch to {
	case models.SwapStatusAccepted, models.SwapStatusRejected:
		if swap.RecipientID != userID {
			return nil, models.NewForbiddenError("Only the recipient may accept or reject a swap request")
		}
	case models.SwapStatusCancelled:
		if swap.RequesterID != userID {
			return nil, models.NewForbiddenError("Only the requester may cancel a swap request")
		}
	}

	if swap.Status != models.SwapStatusPending {
		return nil, models.NewInvalidTransitionError("Swap request is not pending")
	}

	// Conditional write: loses cleanly if a concurrent transition got there first.
	if err := s.swapRepo.UpdateStatus(ctx, swapID, models.SwapStatusPending, to); err != nil {
		return nil, err
	}

	observability.SwapTransitions.WithLabelValues(string(to)).Inc()

	return s.swapRepo.GetByID(ctx, swapID)
}

// Get returns a single swap request; only participants may view it.
func (s *SwapService) Get(ctx context.Context, userID, swapID uint) (*models.SwapRequest, error) {
	swap, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if swap.RequesterID != userID && swap.RecipientID != userID {
		return nil, models.NewForbiddenError("You are not a participant of this swap request")
	}
	return swap, nil
}

// List returns the user's swap requests, newest first, optionally filtered by
// status and direction.
func (s *SwapService) List(ctx context.Context, userID uint, status, direction string) ([]models.SwapRequest, error) {
	filter := repository.SwapFilter{}

	if status != "" {
		st := models.SwapStatus(status)
		if !st.Valid() {
			return nil, models.NewValidationError("Invalid status filter")
		}
		filter.Status = st
	}

	switch direction {
	case "", "sent", "received":
		filter.Direction = direction
	default:
		return nil, models.NewValidationError("Invalid direction filter")
	}

	return s.swapRepo.ListForUser(ctx, userID, filter)
}
