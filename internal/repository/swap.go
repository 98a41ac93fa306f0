package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// SwapFilter holds optional filters for listing a user's swap requests.
type SwapFilter struct {
	Status    models.SwapStatus // empty means all statuses
	Direction string            // "sent", "received", or empty for both
}

// SwapRepository defines the interface for swap request data operations
type SwapRepository interface {
	Create(ctx context.Context, swap *models.SwapRequest) error
	GetByID(ctx context.Context, id uint) (*models.SwapRequest, error)
	FindPendingBetween(ctx context.Context, requesterID, recipientID uint) (*models.SwapRequest, error)
	UpdateStatus(ctx context.Context, id uint, from, to models.SwapStatus) error
	ListForUser(ctx context.Context, userID uint, filter SwapFilter) ([]models.SwapRequest, error)
	CountByStatus(ctx context.Context) (map[models.SwapStatus]int64, error)
}

// swapRepository implements SwapRepository
type swapRepository struct {
	db *gorm.DB
}

// NewSwapRepository creates a new swap request repository
func NewSwapRepository(db *gorm.DB) SwapRepository {
	return &swapRepository{db: db}
}

func (r *swapRepository) Create(ctx context.Context, swap *models.SwapRequest) error {
	if err := r.db.WithContext(ctx).Create(swap).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *swapRepository) GetByID(ctx context.Context, id uint) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Recipient").
		Preload("OfferedSkill.Skill").
		Preload("RequestedSkill.Skill").
		First(&swap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Swap request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &swap, nil
}

// FindPendingBetween returns the pending request from requester to recipient,
// or nil when none exists. Direction matters: an A→B pending request does not
// block B→A.
func (r *swapRepository) FindPendingBetween(ctx context.Context, requesterID, recipientID uint) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	if err := r.db.WithContext(ctx).
		Where("requester_id = ? AND recipient_id = ? AND status = ?",
			requesterID, recipientID, models.SwapStatusPending).
		First(&swap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &swap, nil
}

// UpdateStatus performs a conditional transition: the row is updated only when
// its current status still matches `from`. Two concurrent transitions on the
// same pending request therefore cannot both succeed; the loser gets an
// InvalidTransition error.
func (r *swapRepository) UpdateStatus(ctx context.Context, id uint, from, to models.SwapStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.SwapRequest{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewInvalidTransitionError("Swap request is not pending")
	}
	return nil
}

func (r *swapRepository) ListForUser(ctx context.Context, userID uint, filter SwapFilter) ([]models.SwapRequest, error) {
	query := r.db.WithContext(ctx).Model(&models.SwapRequest{})

	switch filter.Direction {
	case "sent":
		query = query.Where("requester_id = ?", userID)
	case "received":
		query = query.Where("recipient_id = ?", userID)
	default:
		query = query.Where("requester_id = ? OR recipient_id = ?", userID, userID)
	}

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var swaps []models.SwapRequest
	if err := query.
		Preload("Requester").
		Preload("Recipient").
		Preload("OfferedSkill.Skill").
		Preload("RequestedSkill.Skill").
		Order("created_at DESC").
		Find(&swaps).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return swaps, nil
}

func (r *swapRepository) CountByStatus(ctx context.Context) (map[models.SwapStatus]int64, error) {
	type statusCount struct {
		Status models.SwapStatus
		Count  int64
	}

	var rows []statusCount
	if err := r.db.WithContext(ctx).
		Model(&models.SwapRequest{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	counts := map[models.SwapStatus]int64{
		models.SwapStatusPending:   0,
		models.SwapStatusAccepted:  0,
		models.SwapStatusRejected:  0,
		models.SwapStatusCancelled: 0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
