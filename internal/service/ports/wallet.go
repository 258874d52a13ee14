package ports

import (
	"context"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
)

// ValueTransfer is the atomic two-party balance transfer primitive.
// A transfer of zero is a successful no-op; an uncovered amount yields
// domain.ErrInsufficientFunds and the enclosing operation aborts.
type ValueTransfer interface {
	Transfer(ctx context.Context, from, to string, amount int64) error
}

type AccountRepo interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	Deposit(ctx context.Context, id string, amount int64) error
}
