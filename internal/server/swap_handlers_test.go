package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSwapTestServer(users *MockUserRepository, assocs *MockUserSkillRepository, swaps *MockSwapRepository) *Server {
	return &Server{
		userRepo:      users,
		userSkillRepo: assocs,
		swapRepo:      swaps,
		swapService:   service.NewSwapService(swaps, users, assocs),
	}
}

func TestCreateSwap(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockAssocs := new(MockUserSkillRepository)
	mockSwaps := new(MockSwapRepository)
	s := newSwapTestServer(mockUsers, mockAssocs, mockSwaps)

	app := fiber.New()
	app.Use(authAs(1))
	app.Post("/swaps", s.CreateSwap)

	mockUsers.On("GetByID", mock.Anything, uint(2)).Return(&models.User{ID: 2, IsPublic: true}, nil)
	mockUsers.On("GetByID", mock.Anything, uint(3)).Return(&models.User{ID: 3, IsBanned: true}, nil)
	mockAssocs.On("Find", mock.Anything, uint(1), uint(5), models.SkillRoleOffered).Return(
		&models.UserSkill{ID: 10, UserID: 1, SkillID: 5}, nil)
	mockAssocs.On("Find", mock.Anything, uint(2), uint(6), models.SkillRoleOffered).Return(
		&models.UserSkill{ID: 20, UserID: 2, SkillID: 6}, nil)
	mockSwaps.On("FindPendingBetween", mock.Anything, uint(1), uint(2)).Return(nil, nil)
	mockSwaps.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*models.SwapRequest).ID = 77
	}).Return(nil)
	mockSwaps.On("GetByID", mock.Anything, uint(77)).Return(&models.SwapRequest{
		ID: 77, RequesterID: 1, RecipientID: 2, Status: models.SwapStatusPending,
	}, nil)

	tests := []struct {
		name           string
		body           map[string]any
		expectedStatus int
	}{
		{
			name:           "Success",
			body:           map[string]any{"recipient_id": 2, "offered_skill_id": 5, "requested_skill_id": 6},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing Fields",
			body:           map[string]any{"recipient_id": 2},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Self Swap",
			body:           map[string]any{"recipient_id": 1, "offered_skill_id": 5, "requested_skill_id": 6},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Banned Recipient",
			body:           map[string]any{"recipient_id": 3, "offered_skill_id": 5, "requested_skill_id": 6},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/swaps", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestCreateSwapDuplicatePending(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockAssocs := new(MockUserSkillRepository)
	mockSwaps := new(MockSwapRepository)
	s := newSwapTestServer(mockUsers, mockAssocs, mockSwaps)

	app := fiber.New()
	app.Use(authAs(1))
	app.Post("/swaps", s.CreateSwap)

	mockUsers.On("GetByID", mock.Anything, uint(2)).Return(&models.User{ID: 2}, nil)
	mockAssocs.On("Find", mock.Anything, mock.Anything, mock.Anything, models.SkillRoleOffered).Return(
		&models.UserSkill{ID: 10}, nil)
	mockSwaps.On("FindPendingBetween", mock.Anything, uint(1), uint(2)).Return(
		&models.SwapRequest{ID: 50, Status: models.SwapStatusPending}, nil)

	body, _ := json.Marshal(map[string]any{"recipient_id": 2, "offered_skill_id": 5, "requested_skill_id": 6})
	req := httptest.NewRequest(http.MethodPost, "/swaps", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSwapLifecycleEndpoints(t *testing.T) {
	pending := func() *models.SwapRequest {
		return &models.SwapRequest{ID: 5, RequesterID: 1, RecipientID: 2, Status: models.SwapStatusPending}
	}

	tests := []struct {
		name           string
		path           string
		asUser         uint
		swap           *models.SwapRequest
		updateErr      error
		expectedStatus int
	}{
		{
			name:           "Recipient Accepts",
			path:           "/swaps/5/accept",
			asUser:         2,
			swap:           pending(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Requester Cannot Accept",
			path:           "/swaps/5/accept",
			asUser:         1,
			swap:           pending(),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Recipient Rejects",
			path:           "/swaps/5/reject",
			asUser:         2,
			swap:           pending(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Requester Cancels",
			path:           "/swaps/5/cancel",
			asUser:         1,
			swap:           pending(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Recipient Cannot Cancel",
			path:           "/swaps/5/cancel",
			asUser:         2,
			swap:           pending(),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "Already Terminal",
			path:   "/swaps/5/accept",
			asUser: 2,
			swap: &models.SwapRequest{
				ID: 5, RequesterID: 1, RecipientID: 2, Status: models.SwapStatusRejected,
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Lost Race",
			path:           "/swaps/5/accept",
			asUser:         2,
			swap:           pending(),
			updateErr:      models.NewInvalidTransitionError("Swap request is not pending"),
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockAssocs := new(MockUserSkillRepository)
			mockSwaps := new(MockSwapRepository)
			s := newSwapTestServer(mockUsers, mockAssocs, mockSwaps)

			app := fiber.New()
			app.Use(authAs(tt.asUser))
			app.Post("/swaps/:id/accept", s.AcceptSwap)
			app.Post("/swaps/:id/reject", s.RejectSwap)
			app.Post("/swaps/:id/cancel", s.CancelSwap)

			mockSwaps.On("GetByID", mock.Anything, uint(5)).Return(tt.swap, nil)
			mockSwaps.On("UpdateStatus", mock.Anything, uint(5), models.SwapStatusPending, mock.Anything).Return(tt.updateErr)

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestGetSwapNonParticipant(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockAssocs := new(MockUserSkillRepository)
	mockSwaps := new(MockSwapRepository)
	s := newSwapTestServer(mockUsers, mockAssocs, mockSwaps)

	app := fiber.New()
	app.Use(authAs(9))
	app.Get("/swaps/:id", s.GetSwap)

	mockSwaps.On("GetByID", mock.Anything, uint(5)).Return(
		&models.SwapRequest{ID: 5, RequesterID: 1, RecipientID: 2}, nil)

	req := httptest.NewRequest(http.MethodGet, "/swaps/5", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGetMySwapsInvalidFilter(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockAssocs := new(MockUserSkillRepository)
	mockSwaps := new(MockSwapRepository)
	s := newSwapTestServer(mockUsers, mockAssocs, mockSwaps)

	app := fiber.New()
	app.Use(authAs(1))
	app.Get("/swaps", s.GetMySwaps)

	req := httptest.NewRequest(http.MethodGet, "/swaps?status=bogus", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
