package reminder

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
	"github.com/JkrishnaD/BookAndMint/internal/service/ports"
)

type deadlineSource interface {
	UpcomingDeadlines(ctx context.Context, from, to int64) ([]*domain.Reservation, error)
}

type deadlineNotifier interface {
	CancellationDeadline(ctx context.Context, rv *domain.Reservation)
}

// Reminder periodically finds reservations whose free-cancellation
// window closes within the lookahead and warns their users. It only
// reads and notifies; ledger state is never touched.
type Reminder struct {
	source    deadlineSource
	notifier  deadlineNotifier
	clock     ports.Clock
	interval  time.Duration
	lookahead time.Duration
	logger    logger.Logger
}

func New(
	source deadlineSource,
	notifier deadlineNotifier,
	clock ports.Clock,
	interval time.Duration,
	lookahead time.Duration,
	logger logger.Logger,
) *Reminder {
	return &Reminder{
		source:    source,
		notifier:  notifier,
		clock:     clock,
		interval:  interval,
		lookahead: lookahead,
		logger:    logger,
	}
}

func (r *Reminder) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("reminder started",
		logger.Duration("interval", r.interval),
		logger.Duration("lookahead", r.lookahead),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reminder stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Reminder) tick(ctx context.Context) {
	now := r.clock.Now().Unix()

	due, err := r.source.UpcomingDeadlines(ctx, now, now+int64(r.lookahead.Seconds()))
	if err != nil {
		r.logger.Error("failed to fetch upcoming deadlines",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, rv := range due {
		r.logger.Info("cancellation deadline approaching",
			logger.String("reservation", rv.Address),
			logger.String("user", rv.User),
			logger.Int64("start_time", rv.StartTime),
		)
		r.notifier.CancellationDeadline(ctx, rv)
	}
}
