package service

import (
	"context"
	"errors"
	"time"

	"spendaily/internal/dto"
	"spendaily/internal/models"
	"spendaily/pkg/auth"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Registration defaults, adjustable later through the budget-settings
// endpoint.
var (
	defaultMonthlyIncome        = decimal.NewFromInt(3000)
	defaultMonthlyFixedExpenses = decimal.NewFromInt(1500)
)

type AuthService struct {
	userStore     UserStore
	categoryStore CategoryStore
	settingsStore BudgetSettingsStore
	jwtManager    *auth.JWTManager
	logger        *zap.Logger
}

func NewAuthService(
	userStore UserStore,
	categoryStore CategoryStore,
	settingsStore BudgetSettingsStore,
	jwtManager *auth.JWTManager,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userStore:     userStore,
		categoryStore: categoryStore,
		settingsStore: settingsStore,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Register creates the user along with their starter data: the default
// category set and default budget settings.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if existing, _ := s.userStore.GetByUsername(ctx, req.Username); existing != nil {
		return nil, ErrUserExists
	}
	if existing, _ := s.userStore.GetByEmail(ctx, req.Email); existing != nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	if _, err := s.categoryStore.SeedDefaults(ctx, user.ID); err != nil {
		s.logger.Error("Failed to seed default categories", zap.Error(err), zap.String("user", user.Username))
	}

	if _, err := s.settingsStore.Upsert(ctx, &models.BudgetSetting{
		UserID:               user.ID,
		MonthlyIncome:        defaultMonthlyIncome,
		MonthlyFixedExpenses: defaultMonthlyFixedExpenses,
	}); err != nil {
		s.logger.Error("Failed to create default budget settings", zap.Error(err), zap.String("user", user.Username))
	}

	return s.tokenResponse(user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userStore.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.tokenResponse(user)
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.jwtManager.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	return s.tokenResponse(user)
}

// CurrentUser resolves the acting user from a validated token's subject.
func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(translateStoreErr(err), ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	resp := newUserResponse(user)
	return &resp, nil
}

func (s *AuthService) tokenResponse(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(user.ID.String(), user.Username, user.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.jwtManager.GetTokenDuration().Seconds()),
		User:         newUserResponse(user),
	}, nil
}

func newUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
