package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JkrishnaD/BookAndMint/internal/address"
	"github.com/JkrishnaD/BookAndMint/internal/domain"
	"github.com/JkrishnaD/BookAndMint/internal/service/ports/mocks"
)

type reservationMocks struct {
	expRepo  *mocks.MockExperienceRepo
	slotRepo *mocks.MockSlotRepo
	resRepo  *mocks.MockReservationRepo
	transfer *mocks.MockValueTransfer
	tokens   *mocks.MockTokenIssuer
	clock    *mocks.MockClock
	notifier *mocks.MockEventNotifier
}

func newReservationService(t *testing.T, txm *mocks.MockTxManager) (*ReservationService, reservationMocks) {
	t.Helper()
	m := reservationMocks{
		expRepo:  mocks.NewMockExperienceRepo(t),
		slotRepo: mocks.NewMockSlotRepo(t),
		resRepo:  mocks.NewMockReservationRepo(t),
		transfer: mocks.NewMockValueTransfer(t),
		tokens:   mocks.NewMockTokenIssuer(t),
		clock:    mocks.NewMockClock(t),
		notifier: mocks.NewMockEventNotifier(t),
	}
	svc := NewReservationService(
		m.expRepo, m.slotRepo, m.resRepo,
		m.transfer, m.tokens,
		txm, m.clock, m.notifier,
		newTestLogger(t),
	)
	return svc, m
}

func TestReservationService_Book_Success(t *testing.T) {
	svc, m := newReservationService(t, passthroughTx(t))

	expAddr := address.ForExperience("org-1", "Pottery class")
	slotAddr := address.ForSlot(expAddr, 1_100_000)
	exp := &domain.Experience{
		Address:   expAddr,
		Organiser: "org-1",
		Title:     "Pottery class",
	}
	slot := &domain.TimeSlot{
		Address:    slotAddr,
		Experience: expAddr,
		StartTime:  1_100_000,
		EndTime:    1_103_600,
		Price:      2000,
	}

	m.expRepo.EXPECT().GetByAddress(mock.Anything, expAddr).Return(exp, nil)
	m.slotRepo.EXPECT().GetForUpdate(mock.Anything, slotAddr).Return(slot, nil)
	m.transfer.EXPECT().Transfer(mock.Anything, "user-1", "org-1", int64(2000)).Return(nil)
	m.slotRepo.EXPECT().MarkBooked(mock.Anything, slotAddr).Return(nil)
	m.tokens.EXPECT().Issue(mock.Anything, "user-1").Return("mint-1", nil)
	m.resRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.tokens.EXPECT().AttachMetadata(mock.Anything, "mint-1", mock.Anything).Return(nil)
	m.notifier.EXPECT().ReservationCreated(mock.Anything, mock.Anything).Return()

	rv, err := svc.Book(context.Background(), expAddr, 1_100_000, "user-1")

	require.NoError(t, err)
	assert.Equal(t, address.ForReservation(expAddr, 1_100_000), rv.Address)
	assert.Equal(t, "user-1", rv.User)
	assert.Equal(t, "mint-1", rv.NFTMint)
	assert.Equal(t, int64(2000), rv.Price)
	assert.True(t, rv.IsActive)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Book_SlotAlreadyBooked(t *testing.T) {
	svc, m := newReservationService(t, passthroughTx(t))

	expAddr := "exp-1"
	slotAddr := address.ForSlot(expAddr, 1_100_000)

	m.expRepo.EXPECT().GetByAddress(mock.Anything, expAddr).Return(&domain.Experience{
		Address:   expAddr,
		Organiser: "org-1",
	}, nil)
	m.slotRepo.EXPECT().GetForUpdate(mock.Anything, slotAddr).Return(&domain.TimeSlot{
		Address:  slotAddr,
		IsBooked: true,
	}, nil)

	_, err := svc.Book(context.Background(), expAddr, 1_100_000, "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestReservationService_Book_InsufficientFunds(t *testing.T) {
	svc, m := newReservationService(t, passthroughTx(t))

	expAddr := "exp-1"
	slotAddr := address.ForSlot(expAddr, 1_100_000)

	m.expRepo.EXPECT().GetByAddress(mock.Anything, expAddr).Return(&domain.Experience{
		Address:   expAddr,
		Organiser: "org-1",
	}, nil)
	m.slotRepo.EXPECT().GetForUpdate(mock.Anything, slotAddr).Return(&domain.TimeSlot{
		Address: slotAddr,
		Price:   2000,
	}, nil)
	m.transfer.EXPECT().Transfer(mock.Anything, "user-1", "org-1", int64(2000)).Return(domain.ErrInsufficientFunds)

	_, err := svc.Book(context.Background(), expAddr, 1_100_000, "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestReservationService_Book_TokenIssueFails(t *testing.T) {
	svc, m := newReservationService(t, passthroughTx(t))

	expAddr := "exp-1"
	slotAddr := address.ForSlot(expAddr, 1_100_000)

	m.expRepo.EXPECT().GetByAddress(mock.Anything, expAddr).Return(&domain.Experience{
		Address:   expAddr,
		Organiser: "org-1",
	}, nil)
	m.slotRepo.EXPECT().GetForUpdate(mock.Anything, slotAddr).Return(&domain.TimeSlot{
		Address: slotAddr,
		Price:   2000,
	}, nil)
	m.transfer.EXPECT().Transfer(mock.Anything, "user-1", "org-1", int64(2000)).Return(nil)
	m.slotRepo.EXPECT().MarkBooked(mock.Anything, slotAddr).Return(nil)
	m.tokens.EXPECT().Issue(mock.Anything, "user-1").Return("", errors.New("mint failed"))

	_, err := svc.Book(context.Background(), expAddr, 1_100_000, "user-1")

	require.Error(t, err)
	assert.ErrorContains(t, err, "issue token")
}

func TestReservationService_Book_ExperienceNotFound(t *testing.T) {
	svc, m := newReservationService(t, mocks.NewMockTxManager(t))

	m.expRepo.EXPECT().GetByAddress(mock.Anything, "missing").Return(nil, domain.ErrExperienceNotFound)

	_, err := svc.Book(context.Background(), "missing", 1_100_000, "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExperienceNotFound)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	svc, m := newReservationService(t, passthroughTx(t))

	now := int64(1_000_000)
	rv := &domain.Reservation{
		Address:    "res-1",
		Experience: "exp-1",
		User:       "user-1",
		TimeSlot:   now + 2*domain.CancelNoticePeriod,
		StartTime:  now + 2*domain.CancelNoticePeriod,
		Price:      2000,
		IsActive:   true,
	}
	exp := &domain.Experience{
		Address:                "exp-1",
		Organiser:              "org-1",
		CancellationFeePercent: 10,
	}

	m.clock.EXPECT().Now().Return(time.Unix(now, 0))
	m.resRepo.EXPECT().GetForUpdate(mock.Anything, "res-1").Return(rv, nil)
	m.expRepo.EXPECT().GetByAddress(mock.Anything, "exp-1").Return(exp, nil)
	m.transfer.EXPECT().Transfer(mock.Anything, "org-1", "user-1", int64(1800)).Return(nil)
	m.transfer.EXPECT().Transfer(mock.Anything, "user-1", "org-1", int64(200)).Return(nil)
	m.slotRepo.EXPECT().MarkFree(mock.Anything, address.ForSlot("exp-1", rv.TimeSlot)).Return(nil)
	m.resRepo.EXPECT().Deactivate(mock.Anything, "res-1").Return(nil)
	m.notifier.EXPECT().ReservationCancelled(mock.Anything, mock.Anything).Return()

	err := svc.Cancel(context.Background(), "res-1", "user-1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_ZeroFee(t *testing.T) {
	svc, m := newReservationService(t, passthroughTx(t))

	now := int64(1_000_000)
	rv := &domain.Reservation{
		Address:    "res-1",
		Experience: "exp-1",
		User:       "user-1",
		TimeSlot:   now + 2*domain.CancelNoticePeriod,
		StartTime:  now + 2*domain.CancelNoticePeriod,
		Price:      2000,
		IsActive:   true,
	}
	exp := &domain.Experience{
		Address:                "exp-1",
		Organiser:              "org-1",
		CancellationFeePercent: 0,
	}

	m.clock.EXPECT().Now().Return(time.Unix(now, 0))
	m.resRepo.EXPECT().GetForUpdate(mock.Anything, "res-1").Return(rv, nil)
	m.expRepo.EXPECT().GetByAddress(mock.Anything, "exp-1").Return(exp, nil)
	// the fee leg still runs, as a zero-amount no-op
	m.transfer.EXPECT().Transfer(mock.Anything, "org-1", "user-1", int64(2000)).Return(nil)
	m.transfer.EXPECT().Transfer(mock.Anything, "user-1", "org-1", int64(0)).Return(nil)
	m.slotRepo.EXPECT().MarkFree(mock.Anything, address.ForSlot("exp-1", rv.TimeSlot)).Return(nil)
	m.resRepo.EXPECT().Deactivate(mock.Anything, "res-1").Return(nil)
	m.notifier.EXPECT().ReservationCancelled(mock.Anything, mock.Anything).Return()

	err := svc.Cancel(context.Background(), "res-1", "user-1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_AtExactDeadline(t *testing.T) {
	svc, m := newReservationService(t, passthroughTx(t))

	now := int64(1_000_000)
	rv := &domain.Reservation{
		Address:    "res-1",
		Experience: "exp-1",
		User:       "user-1",
		TimeSlot:   now + domain.CancelNoticePeriod,
		StartTime:  now + domain.CancelNoticePeriod,
		Price:      1000,
		IsActive:   true,
	}
	exp := &domain.Experience{
		Address:                "exp-1",
		Organiser:              "org-1",
		CancellationFeePercent: 50,
	}

	m.clock.EXPECT().Now().Return(time.Unix(now, 0))
	m.resRepo.EXPECT().GetForUpdate(mock.Anything, "res-1").Return(rv, nil)
	m.expRepo.EXPECT().GetByAddress(mock.Anything, "exp-1").Return(exp, nil)
	m.transfer.EXPECT().Transfer(mock.Anything, "org-1", "user-1", int64(500)).Return(nil)
	m.transfer.EXPECT().Transfer(mock.Anything, "user-1", "org-1", int64(500)).Return(nil)
	m.slotRepo.EXPECT().MarkFree(mock.Anything, mock.Anything).Return(nil)
	m.resRepo.EXPECT().Deactivate(mock.Anything, "res-1").Return(nil)
	m.notifier.EXPECT().ReservationCancelled(mock.Anything, mock.Anything).Return()

	err := svc.Cancel(context.Background(), "res-1", "user-1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_TooLate(t *testing.T) {
	svc, m := newReservationService(t, passthroughTx(t))

	now := int64(1_000_000)

	m.clock.EXPECT().Now().Return(time.Unix(now, 0))
	m.resRepo.EXPECT().GetForUpdate(mock.Anything, "res-1").Return(&domain.Reservation{
		Address:   "res-1",
		User:      "user-1",
		StartTime: now + domain.CancelNoticePeriod - 1,
		IsActive:  true,
	}, nil)

	err := svc.Cancel(context.Background(), "res-1", "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTooLateToCancel)
}

func TestReservationService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, m := newReservationService(t, passthroughTx(t))

	m.clock.EXPECT().Now().Return(time.Unix(1_000_000, 0))
	m.resRepo.EXPECT().GetForUpdate(mock.Anything, "res-1").Return(&domain.Reservation{
		Address:  "res-1",
		User:     "user-1",
		IsActive: false,
	}, nil)

	err := svc.Cancel(context.Background(), "res-1", "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestReservationService_Cancel_WrongUser(t *testing.T) {
	svc, m := newReservationService(t, passthroughTx(t))

	now := int64(1_000_000)

	m.clock.EXPECT().Now().Return(time.Unix(now, 0))
	m.resRepo.EXPECT().GetForUpdate(mock.Anything, "res-1").Return(&domain.Reservation{
		Address:   "res-1",
		User:      "user-1",
		StartTime: now + 2*domain.CancelNoticePeriod,
		IsActive:  true,
	}, nil)

	err := svc.Cancel(context.Background(), "res-1", "someone-else")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestReservationService_Update_Success(t *testing.T) {
	svc, m := newReservationService(t, passthroughTx(t))

	rv := &domain.Reservation{
		Address:    "res-1",
		Experience: "exp-1",
		User:       "user-1",
		TimeSlot:   1_100_000,
		Price:      2000,
		IsActive:   true,
	}
	newSlotAddr := address.ForSlot("exp-1", 1_200_000)
	newSlot := &domain.TimeSlot{
		Address:   newSlotAddr,
		StartTime: 1_200_000,
		EndTime:   1_203_600,
		Price:     3000,
	}

	m.resRepo.EXPECT().GetForUpdate(mock.Anything, "res-1").Return(rv, nil)
	m.slotRepo.EXPECT().GetForUpdate(mock.Anything, newSlotAddr).Return(newSlot, nil)
	m.slotRepo.EXPECT().MarkFree(mock.Anything, address.ForSlot("exp-1", 1_100_000)).Return(nil)
	m.slotRepo.EXPECT().MarkBooked(mock.Anything, newSlotAddr).Return(nil)
	m.resRepo.EXPECT().Rebind(mock.Anything, "res-1", int64(1_200_000), int64(1_200_000), int64(1_203_600)).Return(nil)
	m.notifier.EXPECT().ReservationUpdated(mock.Anything, mock.Anything).Return()

	err := svc.Update(context.Background(), "res-1", "user-1", 1_200_000)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Update_NewSlotBooked(t *testing.T) {
	svc, m := newReservationService(t, passthroughTx(t))

	newSlotAddr := address.ForSlot("exp-1", 1_200_000)

	m.resRepo.EXPECT().GetForUpdate(mock.Anything, "res-1").Return(&domain.Reservation{
		Address:    "res-1",
		Experience: "exp-1",
		User:       "user-1",
		IsActive:   true,
	}, nil)
	m.slotRepo.EXPECT().GetForUpdate(mock.Anything, newSlotAddr).Return(&domain.TimeSlot{
		Address:  newSlotAddr,
		IsBooked: true,
	}, nil)

	err := svc.Update(context.Background(), "res-1", "user-1", 1_200_000)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestReservationService_Update_InactiveReservation(t *testing.T) {
	svc, m := newReservationService(t, passthroughTx(t))

	m.resRepo.EXPECT().GetForUpdate(mock.Anything, "res-1").Return(&domain.Reservation{
		Address:  "res-1",
		User:     "user-1",
		IsActive: false,
	}, nil)

	err := svc.Update(context.Background(), "res-1", "user-1", 1_200_000)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestReservationService_Update_WrongUser(t *testing.T) {
	svc, m := newReservationService(t, passthroughTx(t))

	m.resRepo.EXPECT().GetForUpdate(mock.Anything, "res-1").Return(&domain.Reservation{
		Address:  "res-1",
		User:     "user-1",
		IsActive: true,
	}, nil)

	err := svc.Update(context.Background(), "res-1", "someone-else", 1_200_000)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestReservationService_ListByUser(t *testing.T) {
	svc, m := newReservationService(t, mocks.NewMockTxManager(t))

	m.resRepo.EXPECT().ListByUser(mock.Anything, "user-1").Return([]*domain.Reservation{
		{Address: "res-1", User: "user-1"},
	}, nil)

	result, err := svc.ListByUser(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
