package ports

import (
	"context"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
)

type SlotRepo interface {
	Create(ctx context.Context, s *domain.TimeSlot) error
	GetByAddress(ctx context.Context, address string) (*domain.TimeSlot, error)
	GetForUpdate(ctx context.Context, address string) (*domain.TimeSlot, error)
	// HasOverlapping reports whether any slot of the experience
	// intersects the half-open interval [start, end).
	HasOverlapping(ctx context.Context, experience string, start, end int64) (bool, error)
	// MarkBooked flips is_booked false→true. It is not idempotent: a
	// slot that is already booked yields domain.ErrAlreadyBooked.
	MarkBooked(ctx context.Context, address string) error
	// MarkFree flips is_booked true→false. Freeing a slot that is not
	// booked yields domain.ErrSlotNotFound.
	MarkFree(ctx context.Context, address string) error
	ListByExperience(ctx context.Context, experience string) ([]*domain.TimeSlot, error)
}
