package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/JkrishnaD/BookAndMint/internal/address"
	"github.com/JkrishnaD/BookAndMint/internal/domain"
	"github.com/JkrishnaD/BookAndMint/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// passthroughTx runs the transactional closure directly against the
// same context, standing in for a committed transaction.
func passthroughTx(t *testing.T) *mocks.MockTxManager {
	t.Helper()
	txm := mocks.NewMockTxManager(t)
	txm.EXPECT().WithinTx(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	return txm
}

func strPtr(s string) *string { return &s }

func TestExperienceService_Create_Success(t *testing.T) {
	expRepo := mocks.NewMockExperienceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	txm := mocks.NewMockTxManager(t)
	clock := mocks.NewMockClock(t)
	notifier := mocks.NewMockEventNotifier(t)
	log := newTestLogger(t)

	svc := NewExperienceService(expRepo, slotRepo, txm, clock, notifier, log)

	expRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().ExperienceCreated(mock.Anything, mock.Anything).Return()

	exp, err := svc.Create(context.Background(), domain.CreateExperienceInput{
		Organiser:              "org-1",
		Title:                  "Pottery class",
		Description:            "Wheel throwing for beginners",
		Location:               strPtr("Lisbon"),
		PriceLamports:          2000,
		CancellationFeePercent: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, address.ForExperience("org-1", "Pottery class"), exp.Address)
	assert.Equal(t, "org-1", exp.Organiser)
	assert.Equal(t, int64(2000), exp.PriceLamports)
	assert.Equal(t, int64(10), exp.CancellationFeePercent)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestExperienceService_Create_Validation(t *testing.T) {
	cases := []struct {
		name  string
		input domain.CreateExperienceInput
	}{
		{
			name:  "empty title",
			input: domain.CreateExperienceInput{Organiser: "org-1", PriceLamports: 100},
		},
		{
			name: "title too long",
			input: domain.CreateExperienceInput{
				Organiser:     "org-1",
				Title:         strings.Repeat("x", domain.MaxTitleLen+1),
				PriceLamports: 100,
			},
		},
		{
			name: "description too long",
			input: domain.CreateExperienceInput{
				Organiser:     "org-1",
				Title:         "Walk",
				Description:   strings.Repeat("x", domain.MaxDescriptionLen+1),
				PriceLamports: 100,
			},
		},
		{
			name: "empty location",
			input: domain.CreateExperienceInput{
				Organiser:     "org-1",
				Title:         "Walk",
				Location:      strPtr(""),
				PriceLamports: 100,
			},
		},
		{
			name: "location too long",
			input: domain.CreateExperienceInput{
				Organiser:     "org-1",
				Title:         "Walk",
				Location:      strPtr(strings.Repeat("x", domain.MaxLocationLen+1)),
				PriceLamports: 100,
			},
		},
		{
			name:  "non-positive price",
			input: domain.CreateExperienceInput{Organiser: "org-1", Title: "Walk", PriceLamports: 0},
		},
		{
			name: "fee percent over 100",
			input: domain.CreateExperienceInput{
				Organiser:              "org-1",
				Title:                  "Walk",
				PriceLamports:          100,
				CancellationFeePercent: 101,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expRepo := mocks.NewMockExperienceRepo(t)
			slotRepo := mocks.NewMockSlotRepo(t)
			txm := mocks.NewMockTxManager(t)
			clock := mocks.NewMockClock(t)
			notifier := mocks.NewMockEventNotifier(t)
			log := newTestLogger(t)

			svc := NewExperienceService(expRepo, slotRepo, txm, clock, notifier, log)

			_, err := svc.Create(context.Background(), tc.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestExperienceService_Create_Duplicate(t *testing.T) {
	expRepo := mocks.NewMockExperienceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	txm := mocks.NewMockTxManager(t)
	clock := mocks.NewMockClock(t)
	notifier := mocks.NewMockEventNotifier(t)
	log := newTestLogger(t)

	svc := NewExperienceService(expRepo, slotRepo, txm, clock, notifier, log)

	expRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrExperienceExists)

	_, err := svc.Create(context.Background(), domain.CreateExperienceInput{
		Organiser:     "org-1",
		Title:         "Pottery class",
		PriceLamports: 2000,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExperienceExists)
}

func TestExperienceService_AddSlot_Success(t *testing.T) {
	expRepo := mocks.NewMockExperienceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	txm := passthroughTx(t)
	clock := mocks.NewMockClock(t)
	notifier := mocks.NewMockEventNotifier(t)
	log := newTestLogger(t)

	svc := NewExperienceService(expRepo, slotRepo, txm, clock, notifier, log)

	expAddr := address.ForExperience("org-1", "Pottery class")
	exp := &domain.Experience{
		Address:   expAddr,
		Organiser: "org-1",
		Title:     "Pottery class",
		SlotCount: 3,
	}

	clock.EXPECT().Now().Return(time.Unix(1_000_000, 0))
	expRepo.EXPECT().GetForUpdate(mock.Anything, expAddr).Return(exp, nil)
	slotRepo.EXPECT().HasOverlapping(mock.Anything, expAddr, int64(1_100_000), int64(1_103_600)).Return(false, nil)
	slotRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	expRepo.EXPECT().IncrementSlotCount(mock.Anything, expAddr).Return(nil)

	slot, err := svc.AddSlot(context.Background(), domain.AddSlotInput{
		Experience: expAddr,
		Organiser:  "org-1",
		StartTime:  1_100_000,
		EndTime:    1_103_600,
		Price:      2000,
	})

	require.NoError(t, err)
	assert.Equal(t, address.ForSlot(expAddr, 1_100_000), slot.Address)
	assert.Equal(t, expAddr, slot.Experience)
	assert.Equal(t, int64(2000), slot.Price)
	assert.False(t, slot.IsBooked)
}

func TestExperienceService_AddSlot_NotOrganiser(t *testing.T) {
	expRepo := mocks.NewMockExperienceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	txm := passthroughTx(t)
	clock := mocks.NewMockClock(t)
	notifier := mocks.NewMockEventNotifier(t)
	log := newTestLogger(t)

	svc := NewExperienceService(expRepo, slotRepo, txm, clock, notifier, log)

	clock.EXPECT().Now().Return(time.Unix(1_000_000, 0))
	expRepo.EXPECT().GetForUpdate(mock.Anything, "exp-1").Return(&domain.Experience{
		Address:   "exp-1",
		Organiser: "org-1",
	}, nil)

	_, err := svc.AddSlot(context.Background(), domain.AddSlotInput{
		Experience: "exp-1",
		Organiser:  "someone-else",
		StartTime:  1_100_000,
		EndTime:    1_103_600,
		Price:      2000,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestExperienceService_AddSlot_StartNotInFuture(t *testing.T) {
	expRepo := mocks.NewMockExperienceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	txm := passthroughTx(t)
	clock := mocks.NewMockClock(t)
	notifier := mocks.NewMockEventNotifier(t)
	log := newTestLogger(t)

	svc := NewExperienceService(expRepo, slotRepo, txm, clock, notifier, log)

	clock.EXPECT().Now().Return(time.Unix(1_100_000, 0))
	expRepo.EXPECT().GetForUpdate(mock.Anything, "exp-1").Return(&domain.Experience{
		Address:   "exp-1",
		Organiser: "org-1",
	}, nil)

	// start equals the current time, which is not strictly in the future
	_, err := svc.AddSlot(context.Background(), domain.AddSlotInput{
		Experience: "exp-1",
		Organiser:  "org-1",
		StartTime:  1_100_000,
		EndTime:    1_103_600,
		Price:      2000,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExperienceService_AddSlot_StartAfterEnd(t *testing.T) {
	expRepo := mocks.NewMockExperienceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	txm := passthroughTx(t)
	clock := mocks.NewMockClock(t)
	notifier := mocks.NewMockEventNotifier(t)
	log := newTestLogger(t)

	svc := NewExperienceService(expRepo, slotRepo, txm, clock, notifier, log)

	clock.EXPECT().Now().Return(time.Unix(1_000_000, 0))
	expRepo.EXPECT().GetForUpdate(mock.Anything, "exp-1").Return(&domain.Experience{
		Address:   "exp-1",
		Organiser: "org-1",
	}, nil)

	_, err := svc.AddSlot(context.Background(), domain.AddSlotInput{
		Experience: "exp-1",
		Organiser:  "org-1",
		StartTime:  1_103_600,
		EndTime:    1_100_000,
		Price:      2000,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExperienceService_AddSlot_CapacityReached(t *testing.T) {
	expRepo := mocks.NewMockExperienceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	txm := passthroughTx(t)
	clock := mocks.NewMockClock(t)
	notifier := mocks.NewMockEventNotifier(t)
	log := newTestLogger(t)

	svc := NewExperienceService(expRepo, slotRepo, txm, clock, notifier, log)

	clock.EXPECT().Now().Return(time.Unix(1_000_000, 0))
	expRepo.EXPECT().GetForUpdate(mock.Anything, "exp-1").Return(&domain.Experience{
		Address:   "exp-1",
		Organiser: "org-1",
		SlotCount: domain.MaxSlotsPerExperience,
	}, nil)

	_, err := svc.AddSlot(context.Background(), domain.AddSlotInput{
		Experience: "exp-1",
		Organiser:  "org-1",
		StartTime:  1_100_000,
		EndTime:    1_103_600,
		Price:      2000,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacity)
}

func TestExperienceService_AddSlot_Overlap(t *testing.T) {
	expRepo := mocks.NewMockExperienceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	txm := passthroughTx(t)
	clock := mocks.NewMockClock(t)
	notifier := mocks.NewMockEventNotifier(t)
	log := newTestLogger(t)

	svc := NewExperienceService(expRepo, slotRepo, txm, clock, notifier, log)

	clock.EXPECT().Now().Return(time.Unix(1_000_000, 0))
	expRepo.EXPECT().GetForUpdate(mock.Anything, "exp-1").Return(&domain.Experience{
		Address:   "exp-1",
		Organiser: "org-1",
		SlotCount: 2,
	}, nil)
	slotRepo.EXPECT().HasOverlapping(mock.Anything, "exp-1", int64(1_100_000), int64(1_103_600)).Return(true, nil)

	_, err := svc.AddSlot(context.Background(), domain.AddSlotInput{
		Experience: "exp-1",
		Organiser:  "org-1",
		StartTime:  1_100_000,
		EndTime:    1_103_600,
		Price:      2000,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOverlap)
}

func TestExperienceService_GetDetails(t *testing.T) {
	expRepo := mocks.NewMockExperienceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	txm := mocks.NewMockTxManager(t)
	clock := mocks.NewMockClock(t)
	notifier := mocks.NewMockEventNotifier(t)
	log := newTestLogger(t)

	svc := NewExperienceService(expRepo, slotRepo, txm, clock, notifier, log)

	expRepo.EXPECT().GetByAddress(mock.Anything, "exp-1").Return(&domain.Experience{
		Address: "exp-1",
		Title:   "Pottery class",
	}, nil)
	slotRepo.EXPECT().ListByExperience(mock.Anything, "exp-1").Return([]*domain.TimeSlot{
		{Address: "slot-1", Experience: "exp-1"},
		{Address: "slot-2", Experience: "exp-1"},
	}, nil)

	details, err := svc.GetDetails(context.Background(), "exp-1")

	require.NoError(t, err)
	assert.Equal(t, "Pottery class", details.Experience.Title)
	assert.Len(t, details.Slots, 2)
}

func TestExperienceService_GetDetails_NotFound(t *testing.T) {
	expRepo := mocks.NewMockExperienceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	txm := mocks.NewMockTxManager(t)
	clock := mocks.NewMockClock(t)
	notifier := mocks.NewMockEventNotifier(t)
	log := newTestLogger(t)

	svc := NewExperienceService(expRepo, slotRepo, txm, clock, notifier, log)

	expRepo.EXPECT().GetByAddress(mock.Anything, "missing").Return(nil, domain.ErrExperienceNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExperienceNotFound)
}
