package ports

import (
	"context"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByAddress(ctx context.Context, address string) (*domain.Reservation, error)
	GetForUpdate(ctx context.Context, address string) (*domain.Reservation, error)
	Deactivate(ctx context.Context, address string) error
	// Rebind points the reservation at a different slot, rewriting its
	// copied time bounds. The captured price is left untouched.
	Rebind(ctx context.Context, address string, timeSlot, startTime, endTime int64) error
	ListByUser(ctx context.Context, user string) ([]*domain.Reservation, error)
}
