package ports

import (
	"context"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
)

// EventNotifier publishes observable events after an operation
// commits. Implementations log and swallow their own failures; a lost
// notification never fails the operation that produced it.
type EventNotifier interface {
	ExperienceCreated(ctx context.Context, ev domain.ExperienceCreated)
	ReservationCreated(ctx context.Context, ev domain.ReservationCreated)
	ReservationCancelled(ctx context.Context, ev domain.ReservationCancelled)
	ReservationUpdated(ctx context.Context, ev domain.ReservationUpdated)
}
