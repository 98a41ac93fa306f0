package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"
)

// PlatformStats aggregates platform-wide counters for the admin dashboard.
type PlatformStats struct {
	TotalUsers    int64            `json:"total_users"`
	BannedUsers   int64            `json:"banned_users"`
	SwapsByStatus map[string]int64 `json:"swaps_by_status"`
	AverageRating float64          `json:"average_rating"`
}

// MessageInput carries the request body for creating or updating a broadcast
// message.
type MessageInput struct {
	Title    string
	Body     string
	Severity models.MessageSeverity
	IsActive *bool
}

// AdminService provides user management, platform messages, and reporting.
type AdminService struct {
	userRepo    repository.UserRepository
	swapRepo    repository.SwapRepository
	ratingRepo  repository.RatingRepository
	messageRepo repository.MessageRepository
}

// NewAdminService returns a new AdminService.
func NewAdminService(userRepo repository.UserRepository, swapRepo repository.SwapRepository, ratingRepo repository.RatingRepository, messageRepo repository.MessageRepository) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		swapRepo:    swapRepo,
		ratingRepo:  ratingRepo,
		messageRepo: messageRepo,
	}
}

// Stats returns platform-wide aggregates. The average rating is 0 when no
// ratings exist.
func (s *AdminService) Stats(ctx context.Context) (*PlatformStats, error) {
	total, banned, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	swapCounts, err := s.swapRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byStatus := make(map[string]int64, len(swapCounts))
	for status, count := range swapCounts {
		byStatus[string(status)] = count
	}

	avg, err := s.ratingRepo.Average(ctx)
	if err != nil {
		return nil, err
	}

	return &PlatformStats{
		TotalUsers:    total,
		BannedUsers:   banned,
		SwapsByStatus: byStatus,
		AverageRating: avg,
	}, nil
}

// BanUser sets the ban flag on the target. Admins cannot ban themselves.
func (s *AdminService) BanUser(ctx context.Context, adminID, targetID uint) error {
	if adminID == targetID {
		return models.NewValidationError("Cannot ban yourself")
	}
	if err := s.userRepo.SetBanned(ctx, targetID, true); err != nil {
		return err
	}
	observability.UsersBanned.WithLabelValues("ban").Inc()
	return nil
}

// UnbanUser clears the ban flag on the target.
func (s *AdminService) UnbanUser(ctx context.Context, adminID, targetID uint) error {
	if err := s.userRepo.SetBanned(ctx, targetID, false); err != nil {
		return err
	}
	observability.UsersBanned.WithLabelValues("unban").Inc()
	return nil
}

// CreateMessage creates a broadcast message after severity validation.
func (s *AdminService) CreateMessage(ctx context.Context, in MessageInput) (*models.AdminMessage, error) {
	if in.Title == "" || in.Body == "" {
		return nil, models.NewValidationError("Title and body are required")
	}
	severity := in.Severity
	if severity == "" {
		severity = models.SeverityInfo
	}
	if !severity.Valid() {
		return nil, models.NewValidationError("Severity must be info, warning, success or error")
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	message := &models.AdminMessage{
		Title:    in.Title,
		Body:     in.Body,
		Severity: severity,
		IsActive: active,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// UpdateMessage applies partial edits to an existing broadcast message.
func (s *AdminService) UpdateMessage(ctx context.Context, id uint, in MessageInput) (*models.AdminMessage, error) {
	message, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		message.Title = in.Title
	}
	if in.Body != "" {
		message.Body = in.Body
	}
	if in.Severity != "" {
		if !in.Severity.Valid() {
			return nil, models.NewValidationError("Severity must be info, warning, success or error")
		}
		message.Severity = in.Severity
	}
	if in.IsActive != nil {
		message.IsActive = *in.IsActive
	}

	if err := s.messageRepo.Update(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// DeleteMessage removes a broadcast message.
func (s *AdminService) DeleteMessage(ctx context.Context, id uint) error {
	return s.messageRepo.Delete(ctx, id)
}

// ListMessages returns broadcast messages, optionally only active ones.
func (s *AdminService) ListMessages(ctx context.Context, activeOnly bool) ([]models.AdminMessage, error) {
	return s.messageRepo.List(ctx, activeOnly)
}

// WriteUsersReport writes the user aggregate report as CSV.
func (s *AdminService) WriteUsersReport(ctx context.Context, w io.Writer) error {
	total, banned, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	records := [][]string{
		{"metric", "value"},
		{"total_users", strconv.FormatInt(total, 10)},
		{"banned_users", strconv.FormatInt(banned, 10)},
		{"active_users", strconv.FormatInt(total-banned, 10)},
	}
	if err := writer.WriteAll(records); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// WriteSwapsReport writes swap counts by status and the platform average
// rating as CSV.
func (s *AdminService) WriteSwapsReport(ctx context.Context, w io.Writer) error {
	counts, err := s.swapRepo.CountByStatus(ctx)
	if err != nil {
		return err
	}
	avg, err := s.ratingRepo.Average(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	records := [][]string{
		{"metric", "value"},
		{"pending_swaps", strconv.FormatInt(counts[models.SwapStatusPending], 10)},
		{"accepted_swaps", strconv.FormatInt(counts[models.SwapStatusAccepted], 10)},
		{"rejected_swaps", strconv.FormatInt(counts[models.SwapStatusRejected], 10)},
		{"cancelled_swaps", strconv.FormatInt(counts[models.SwapStatusCancelled], 10)},
		{"average_rating", fmt.Sprintf("%.2f", avg)},
	}
	if err := writer.WriteAll(records); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
