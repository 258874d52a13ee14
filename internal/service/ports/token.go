package ports

import (
	"context"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
)

// TokenIssuer mints unique proof-of-booking tokens and attaches their
// metadata descriptors.
type TokenIssuer interface {
	Issue(ctx context.Context, owner string) (string, error)
	AttachMetadata(ctx context.Context, tokenID string, md *domain.Metadata) error
}

type TokenRepo interface {
	ListByOwner(ctx context.Context, owner string) ([]*domain.Token, error)
}
