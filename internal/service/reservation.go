package service

import (
	"context"
	"fmt"

	"github.com/JkrishnaD/BookAndMint/internal/address"
	"github.com/JkrishnaD/BookAndMint/internal/domain"
	"github.com/JkrishnaD/BookAndMint/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ReservationService orchestrates the booking state machine. Every
// mutating operation reads the clock once, then runs its payment leg,
// slot transition, record mutation and token issuance inside a single
// transaction: all of it commits, or none of it does.
type ReservationService struct {
	expRepo  ports.ExperienceRepo
	slotRepo ports.SlotRepo
	resRepo  ports.ReservationRepo
	transfer ports.ValueTransfer
	tokens   ports.TokenIssuer
	txm      ports.TxManager
	clock    ports.Clock
	notifier ports.EventNotifier
	logger   logger.Logger
}

func NewReservationService(
	expRepo ports.ExperienceRepo,
	slotRepo ports.SlotRepo,
	resRepo ports.ReservationRepo,
	transfer ports.ValueTransfer,
	tokens ports.TokenIssuer,
	txm ports.TxManager,
	clock ports.Clock,
	notifier ports.EventNotifier,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		expRepo:  expRepo,
		slotRepo: slotRepo,
		resRepo:  resRepo,
		transfer: transfer,
		tokens:   tokens,
		txm:      txm,
		clock:    clock,
		notifier: notifier,
		logger:   logger,
	}
}

// Book claims the slot for the user: pays the organiser, flips the
// slot to booked, creates the reservation record and mints the
// proof-of-booking token with its descriptor.
func (s *ReservationService) Book(ctx context.Context, experience string, startTime int64, user string) (*domain.Reservation, error) {
	exp, err := s.expRepo.GetByAddress(ctx, experience)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}

	slotAddr := address.ForSlot(exp.Address, startTime)
	resAddr := address.ForReservation(exp.Address, startTime)

	var reservation *domain.Reservation
	err = s.txm.WithinTx(ctx, func(ctx context.Context) error {
		slot, err := s.slotRepo.GetForUpdate(ctx, slotAddr)
		if err != nil {
			return fmt.Errorf("get slot: %w", err)
		}
		if slot.IsBooked {
			return domain.ErrAlreadyBooked
		}

		if err = s.transfer.Transfer(ctx, user, exp.Organiser, slot.Price); err != nil {
			return fmt.Errorf("pay organiser: %w", err)
		}

		if err = s.slotRepo.MarkBooked(ctx, slotAddr); err != nil {
			return fmt.Errorf("mark booked: %w", err)
		}

		mint, err := s.tokens.Issue(ctx, user)
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}

		reservation = &domain.Reservation{
			Address:    resAddr,
			Experience: exp.Address,
			User:       user,
			TimeSlot:   startTime,
			NFTMint:    mint,
			StartTime:  slot.StartTime,
			EndTime:    slot.EndTime,
			Price:      slot.Price,
			IsActive:   true,
		}
		if err = s.resRepo.Create(ctx, reservation); err != nil {
			return fmt.Errorf("create reservation: %w", err)
		}

		md := domain.BuildMetadata(exp, slot.StartTime, slot.EndTime)
		if err = s.tokens.AttachMetadata(ctx, mint, md); err != nil {
			return fmt.Errorf("attach metadata: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("slot booked",
		logger.String("reservation", reservation.Address),
		logger.String("user", user),
		logger.String("experience", exp.Address),
		logger.String("nft_mint", reservation.NFTMint),
	)

	go s.notifier.ReservationCreated(context.WithoutCancel(ctx), domain.ReservationCreated{
		User:        user,
		Reservation: reservation.Address,
		NFTMint:     reservation.NFTMint,
		StartTime:   startTime,
	})

	return reservation, nil
}

// Cancel releases the user's claim on the slot, refunding the captured
// price minus the cancellation fee. Settlement keeps the two opposing
// transfer legs of the original payment: the refund back to the user,
// then the fee to the organiser, with a zero fee still running as a
// no-op leg.
func (s *ReservationService) Cancel(ctx context.Context, reservationAddr, user string) error {
	now := s.clock.Now().Unix()

	var fee int64
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		rv, err := s.resRepo.GetForUpdate(ctx, reservationAddr)
		if err != nil {
			return fmt.Errorf("get reservation: %w", err)
		}

		if !rv.IsActive {
			return domain.ErrAlreadyCancelled
		}
		if rv.User != user {
			return fmt.Errorf("%w: reservation belongs to another user", domain.ErrUnauthorized)
		}
		if rv.StartTime-now < domain.CancelNoticePeriod {
			return domain.ErrTooLateToCancel
		}

		exp, err := s.expRepo.GetByAddress(ctx, rv.Experience)
		if err != nil {
			return fmt.Errorf("get experience: %w", err)
		}

		fee = domain.CancellationFee(rv.Price, exp.CancellationFeePercent)
		refund := rv.Price - fee

		if err = s.transfer.Transfer(ctx, exp.Organiser, rv.User, refund); err != nil {
			return fmt.Errorf("refund user: %w", err)
		}
		if err = s.transfer.Transfer(ctx, rv.User, exp.Organiser, fee); err != nil {
			return fmt.Errorf("collect fee: %w", err)
		}

		slotAddr := address.ForSlot(rv.Experience, rv.TimeSlot)
		if err = s.slotRepo.MarkFree(ctx, slotAddr); err != nil {
			return fmt.Errorf("free slot: %w", err)
		}

		if err = s.resRepo.Deactivate(ctx, reservationAddr); err != nil {
			return fmt.Errorf("deactivate reservation: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("reservation cancelled",
		logger.String("reservation", reservationAddr),
		logger.String("user", user),
		logger.Int64("cancellation_fee", fee),
	)

	go s.notifier.ReservationCancelled(context.WithoutCancel(ctx), domain.ReservationCancelled{
		User:            user,
		Reservation:     reservationAddr,
		CancellationFee: fee,
	})

	return nil
}

// Update rebinds the reservation to a different slot of the same
// experience: the old slot is freed and the new one booked in one
// step, so no interleaving can observe both booked or both free. No
// payment adjustment happens even when the slot prices differ.
func (s *ReservationService) Update(ctx context.Context, reservationAddr, user string, newStartTime int64) error {
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		rv, err := s.resRepo.GetForUpdate(ctx, reservationAddr)
		if err != nil {
			return fmt.Errorf("get reservation: %w", err)
		}

		if !rv.IsActive {
			return domain.ErrAlreadyCancelled
		}
		if rv.User != user {
			return fmt.Errorf("%w: reservation belongs to another user", domain.ErrUnauthorized)
		}

		newSlotAddr := address.ForSlot(rv.Experience, newStartTime)
		newSlot, err := s.slotRepo.GetForUpdate(ctx, newSlotAddr)
		if err != nil {
			return fmt.Errorf("get new slot: %w", err)
		}
		if newSlot.IsBooked {
			return domain.ErrAlreadyBooked
		}

		oldSlotAddr := address.ForSlot(rv.Experience, rv.TimeSlot)
		if err = s.slotRepo.MarkFree(ctx, oldSlotAddr); err != nil {
			return fmt.Errorf("free old slot: %w", err)
		}
		if err = s.slotRepo.MarkBooked(ctx, newSlotAddr); err != nil {
			return fmt.Errorf("book new slot: %w", err)
		}

		if err = s.resRepo.Rebind(ctx, reservationAddr, newStartTime, newSlot.StartTime, newSlot.EndTime); err != nil {
			return fmt.Errorf("rebind reservation: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("reservation updated",
		logger.String("reservation", reservationAddr),
		logger.String("user", user),
		logger.Int64("new_start_time", newStartTime),
	)

	go s.notifier.ReservationUpdated(context.WithoutCancel(ctx), domain.ReservationUpdated{
		User:         user,
		Reservation:  reservationAddr,
		NewStartTime: newStartTime,
	})

	return nil
}

func (s *ReservationService) Get(ctx context.Context, addr string) (*domain.Reservation, error) {
	return s.resRepo.GetByAddress(ctx, addr)
}

func (s *ReservationService) ListByUser(ctx context.Context, user string) ([]*domain.Reservation, error) {
	return s.resRepo.ListByUser(ctx, user)
}
