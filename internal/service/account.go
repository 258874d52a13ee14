package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
	"github.com/JkrishnaD/BookAndMint/internal/service/ports"
)

type AccountService struct {
	accountRepo ports.AccountRepo
	tokenRepo   ports.TokenRepo
}

func NewAccountService(accountRepo ports.AccountRepo, tokenRepo ports.TokenRepo) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		tokenRepo:   tokenRepo,
	}
}

func (s *AccountService) Create(ctx context.Context, input domain.CreateAccountInput) (*domain.Account, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	account := &domain.Account{
		ID:             uuid.New().String(),
		Username:       input.Username,
		TelegramChatID: input.TelegramChatID,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

func (s *AccountService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}

func (s *AccountService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.accountRepo.List(ctx)
}

// Deposit is the faucet: it credits the account so bookings can be
// paid for without an external payment rail.
func (s *AccountService) Deposit(ctx context.Context, id string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: deposit amount must be greater than 0", domain.ErrValidation)
	}

	return s.accountRepo.Deposit(ctx, id, amount)
}

func (s *AccountService) ListTokens(ctx context.Context, owner string) ([]*domain.Token, error) {
	return s.tokenRepo.ListByOwner(ctx, owner)
}
