package ports

import (
	"context"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
)

type ExperienceRepo interface {
	Create(ctx context.Context, e *domain.Experience) error
	GetByAddress(ctx context.Context, address string) (*domain.Experience, error)
	// GetForUpdate loads the experience with a row lock so slot-count
	// bookkeeping serializes concurrent AddSlot calls. Must run inside
	// a transaction.
	GetForUpdate(ctx context.Context, address string) (*domain.Experience, error)
	IncrementSlotCount(ctx context.Context, address string) error
	List(ctx context.Context) ([]*domain.Experience, error)
}
