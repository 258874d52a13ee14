package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
	"github.com/JkrishnaD/BookAndMint/internal/service/ports/mocks"
)

func TestAccountService_Create_Success(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	tokenRepo := mocks.NewMockTokenRepo(t)

	svc := NewAccountService(accountRepo, tokenRepo)

	accountRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	account, err := svc.Create(context.Background(), domain.CreateAccountInput{Username: "alice"})

	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
	assert.NotEmpty(t, account.ID)
}

func TestAccountService_Create_EmptyUsername(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	tokenRepo := mocks.NewMockTokenRepo(t)

	svc := NewAccountService(accountRepo, tokenRepo)

	_, err := svc.Create(context.Background(), domain.CreateAccountInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountService_Create_UsernameTaken(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	tokenRepo := mocks.NewMockTokenRepo(t)

	svc := NewAccountService(accountRepo, tokenRepo)

	accountRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateAccountInput{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestAccountService_Deposit_Success(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	tokenRepo := mocks.NewMockTokenRepo(t)

	svc := NewAccountService(accountRepo, tokenRepo)

	accountRepo.EXPECT().Deposit(mock.Anything, "u1", int64(5000)).Return(nil)

	err := svc.Deposit(context.Background(), "u1", 5000)

	require.NoError(t, err)
}

func TestAccountService_Deposit_NonPositiveAmount(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	tokenRepo := mocks.NewMockTokenRepo(t)

	svc := NewAccountService(accountRepo, tokenRepo)

	err := svc.Deposit(context.Background(), "u1", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountService_ListTokens(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	tokenRepo := mocks.NewMockTokenRepo(t)

	svc := NewAccountService(accountRepo, tokenRepo)

	tokenRepo.EXPECT().ListByOwner(mock.Anything, "u1").Return([]*domain.Token{
		{ID: "mint-1", Owner: "u1"},
	}, nil)

	tokens, err := svc.ListTokens(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, tokens, 1)
}
