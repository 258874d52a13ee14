package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
	"github.com/JkrishnaD/BookAndMint/internal/reminder/mocks"
	portmocks "github.com/JkrishnaD/BookAndMint/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestReminder_Tick_NotifiesDueReservations(t *testing.T) {
	source := mocks.NewMockDeadlineSource(t)
	notifier := mocks.NewMockDeadlineNotifier(t)
	clock := portmocks.NewMockClock(t)
	log := newTestLogger(t)

	r := New(source, notifier, clock, 50*time.Millisecond, time.Hour, log)

	due := []*domain.Reservation{
		{Address: "res-1", User: "u1", StartTime: 1_100_000},
	}
	clock.EXPECT().Now().Return(time.Unix(1_000_000, 0))
	source.EXPECT().UpcomingDeadlines(mock.Anything, int64(1_000_000), int64(1_003_600)).Return(due, nil)
	notifier.EXPECT().CancellationDeadline(mock.Anything, due[0]).Return()

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(source.Calls), 1)
}

func TestReminder_Tick_HandlesError(t *testing.T) {
	source := mocks.NewMockDeadlineSource(t)
	notifier := mocks.NewMockDeadlineNotifier(t)
	clock := portmocks.NewMockClock(t)
	log := newTestLogger(t)

	r := New(source, notifier, clock, 50*time.Millisecond, time.Hour, log)

	clock.EXPECT().Now().Return(time.Unix(1_000_000, 0))
	source.EXPECT().UpcomingDeadlines(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(source.Calls), 1)
}

func TestReminder_StopsOnContextCancel(t *testing.T) {
	source := mocks.NewMockDeadlineSource(t)
	notifier := mocks.NewMockDeadlineNotifier(t)
	clock := portmocks.NewMockClock(t)
	log := newTestLogger(t)

	r := New(source, notifier, clock, time.Second, time.Hour, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("reminder did not stop on context cancel")
	}
}
