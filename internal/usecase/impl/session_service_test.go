package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Resume_Success(t *testing.T) {
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	mockTokenService := mockSvc.NewMockTokenService(t)
	svc := NewSessionService(mockAccountRepo, mockTokenService, testLogger())

	ctx := context.Background()
	accountID := uuid.New()
	claims := &service.Claims{
		AccountID: accountID,
		Mobile:    "0911222333",
		Role:      entity.RoleVendor,
	}
	account := &entity.Account{
		ID:            accountID,
		Mobile:        "0911222333",
		Role:          entity.RoleVendor,
		IsActive:      true,
		VendorProfile: &entity.VendorProfile{AccountID: accountID},
	}

	mockTokenService.EXPECT().ValidateToken("good-token").Return(claims, nil)
	mockAccountRepo.EXPECT().FindByIDWithProfile(ctx, accountID).Return(account, nil)

	session, err := svc.Resume(ctx, "good-token")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, account, session.Account)
	assert.Equal(t, claims, session.Claims)
}

func TestSessionService_Resume_EmptyToken(t *testing.T) {
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	mockTokenService := mockSvc.NewMockTokenService(t)
	svc := NewSessionService(mockAccountRepo, mockTokenService, testLogger())

	session, err := svc.Resume(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionService_Resume_RejectedTokenYieldsEmptySession(t *testing.T) {
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	mockTokenService := mockSvc.NewMockTokenService(t)
	svc := NewSessionService(mockAccountRepo, mockTokenService, testLogger())

	mockTokenService.EXPECT().
		ValidateToken("expired-token").
		Return(nil, errors.New("token is expired"))

	session, err := svc.Resume(context.Background(), "expired-token")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionService_Resume_MissingAccountYieldsEmptySession(t *testing.T) {
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	mockTokenService := mockSvc.NewMockTokenService(t)
	svc := NewSessionService(mockAccountRepo, mockTokenService, testLogger())

	ctx := context.Background()
	accountID := uuid.New()

	mockTokenService.EXPECT().
		ValidateToken("orphan-token").
		Return(&service.Claims{AccountID: accountID}, nil)
	mockAccountRepo.EXPECT().
		FindByIDWithProfile(ctx, accountID).
		Return(nil, repository.ErrAccountNotFound)

	session, err := svc.Resume(ctx, "orphan-token")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionService_Resume_InactiveAccountYieldsEmptySession(t *testing.T) {
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	mockTokenService := mockSvc.NewMockTokenService(t)
	svc := NewSessionService(mockAccountRepo, mockTokenService, testLogger())

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:            accountID,
		Role:          entity.RoleVendor,
		IsActive:      false,
		VendorProfile: &entity.VendorProfile{AccountID: accountID},
	}

	mockTokenService.EXPECT().
		ValidateToken("deactivated-token").
		Return(&service.Claims{AccountID: accountID, Role: entity.RoleVendor}, nil)
	mockAccountRepo.EXPECT().FindByIDWithProfile(ctx, accountID).Return(account, nil)

	session, err := svc.Resume(ctx, "deactivated-token")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionService_Resume_MissingProfileYieldsEmptySession(t *testing.T) {
	mockAccountRepo := mockRepo.NewMockAccountRepository(t)
	mockTokenService := mockSvc.NewMockTokenService(t)
	svc := NewSessionService(mockAccountRepo, mockTokenService, testLogger())

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:       accountID,
		Role:     entity.RoleVendor,
		IsActive: true,
	}

	mockTokenService.EXPECT().
		ValidateToken("profileless-token").
		Return(&service.Claims{AccountID: accountID, Role: entity.RoleVendor}, nil)
	mockAccountRepo.EXPECT().FindByIDWithProfile(ctx, accountID).Return(account, nil)

	session, err := svc.Resume(ctx, "profileless-token")
	require.NoError(t, err)
	assert.Nil(t, session)
}
