package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"spendaily/internal/dto"
	"spendaily/internal/models"
	"spendaily/pkg/auth"
)

func newAuthFixture() (*AuthService, *fakeUserStore, *fakeCategoryStore, *fakeBudgetSettingsStore) {
	userStore := newFakeUserStore()
	categoryStore := newFakeCategoryStore()
	settingsStore := newFakeBudgetSettingsStore()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	svc := NewAuthService(userStore, categoryStore, settingsStore, jwtManager, zap.NewNop())
	return svc, userStore, categoryStore, settingsStore
}

func registerReq() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	}
}

func TestRegisterSeedsStarterData(t *testing.T) {
	svc, userStore, categoryStore, settingsStore := newAuthFixture()

	resp, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "alice", resp.User.Username)

	userID := uuid.MustParse(resp.User.ID)
	user, err := userStore.GetByID(context.Background(), userID)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.Password, "password must be stored hashed")

	categories, err := categoryStore.ListByUser(context.Background(), userID, "")
	require.NoError(t, err)
	assert.Len(t, categories, len(models.DefaultCategories))

	settings, err := settingsStore.GetByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, settings.MonthlyIncome.Equal(decimal.NewFromInt(3000)))
	assert.True(t, settings.MonthlyFixedExpenses.Equal(decimal.NewFromInt(1500)))
}

func TestRegisterDuplicateUsernameRejected(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	dup := registerReq()
	dup.Email = "other@example.com"
	_, err = svc.Register(context.Background(), dup)

	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	dup := registerReq()
	dup.Username = "bob"
	_, err = svc.Register(context.Background(), dup)

	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginVerifiesPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	registered, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), registered.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, refreshed.User.ID)

	_, err = svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, userStore, _, _ := newAuthFixture()

	req := registerReq()
	req.Password = "abc"
	_, err := svc.Register(context.Background(), req)

	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, userStore.users)
}
