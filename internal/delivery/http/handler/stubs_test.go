package handler

import (
	"context"

	"medexus-backend/internal/delivery/dto"

	"github.com/google/uuid"
)

// Stub usecases with overridable function fields, so each test controls
// exactly what the layer below returns.

type stubAuthUsecase struct {
	signupFn         func(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	loginFn          func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	logoutFn         func(ctx context.Context, accessTokenID, refreshTokenID string) error
	refreshTokenFn   func(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	getCurrentUserFn func(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

func (s *stubAuthUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	return s.signupFn(ctx, req)
}

func (s *stubAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.loginFn(ctx, req)
}

func (s *stubAuthUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	return s.logoutFn(ctx, accessTokenID, refreshTokenID)
}

func (s *stubAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return s.refreshTokenFn(ctx, req)
}

func (s *stubAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	return s.getCurrentUserFn(ctx, userID)
}

type stubRequestUsecase struct {
	createFn func(ctx context.Context, req *dto.CreateSurgeryRequestRequest) (*dto.SurgeryRequestResponse, error)
	listFn   func(ctx context.Context) (*dto.SurgeryRequestListResponse, error)
	getFn    func(ctx context.Context, requestID uuid.UUID) (*dto.SurgeryRequestResponse, error)
	updateFn func(ctx context.Context, requestID uuid.UUID, req *dto.UpdateSurgeryRequestRequest) (*dto.SurgeryRequestResponse, error)
	deleteFn func(ctx context.Context, requestID uuid.UUID) error
}

func (s *stubRequestUsecase) CreateRequest(ctx context.Context, req *dto.CreateSurgeryRequestRequest) (*dto.SurgeryRequestResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubRequestUsecase) ListRequests(ctx context.Context) (*dto.SurgeryRequestListResponse, error) {
	return s.listFn(ctx)
}

func (s *stubRequestUsecase) GetRequest(ctx context.Context, requestID uuid.UUID) (*dto.SurgeryRequestResponse, error) {
	return s.getFn(ctx, requestID)
}

func (s *stubRequestUsecase) UpdateRequest(ctx context.Context, requestID uuid.UUID, req *dto.UpdateSurgeryRequestRequest) (*dto.SurgeryRequestResponse, error) {
	return s.updateFn(ctx, requestID, req)
}

func (s *stubRequestUsecase) DeleteRequest(ctx context.Context, requestID uuid.UUID) error {
	return s.deleteFn(ctx, requestID)
}

type stubInterestUsecase struct {
	expressFn     func(ctx context.Context, req *dto.ExpressInterestRequest) (*dto.InterestResponse, error)
	withdrawFn    func(ctx context.Context, requestID uuid.UUID) error
	myInterestsFn func(ctx context.Context) (*dto.MyInterestListResponse, error)
}

func (s *stubInterestUsecase) ExpressInterest(ctx context.Context, req *dto.ExpressInterestRequest) (*dto.InterestResponse, error) {
	return s.expressFn(ctx, req)
}

func (s *stubInterestUsecase) WithdrawInterest(ctx context.Context, requestID uuid.UUID) error {
	return s.withdrawFn(ctx, requestID)
}

func (s *stubInterestUsecase) GetMyInterests(ctx context.Context) (*dto.MyInterestListResponse, error) {
	return s.myInterestsFn(ctx)
}
