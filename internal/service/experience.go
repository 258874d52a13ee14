package service

import (
	"context"
	"fmt"

	"github.com/JkrishnaD/BookAndMint/internal/address"
	"github.com/JkrishnaD/BookAndMint/internal/domain"
	"github.com/JkrishnaD/BookAndMint/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ExperienceService struct {
	expRepo  ports.ExperienceRepo
	slotRepo ports.SlotRepo
	txm      ports.TxManager
	clock    ports.Clock
	notifier ports.EventNotifier
	logger   logger.Logger
}

func NewExperienceService(
	expRepo ports.ExperienceRepo,
	slotRepo ports.SlotRepo,
	txm ports.TxManager,
	clock ports.Clock,
	notifier ports.EventNotifier,
	logger logger.Logger,
) *ExperienceService {
	return &ExperienceService{
		expRepo:  expRepo,
		slotRepo: slotRepo,
		txm:      txm,
		clock:    clock,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *ExperienceService) Create(ctx context.Context, input domain.CreateExperienceInput) (*domain.Experience, error) {
	if len(input.Title) == 0 {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if len(input.Title) > domain.MaxTitleLen {
		return nil, fmt.Errorf("%w: title exceeds %d characters", domain.ErrValidation, domain.MaxTitleLen)
	}
	if len(input.Description) > domain.MaxDescriptionLen {
		return nil, fmt.Errorf("%w: description exceeds %d characters", domain.ErrValidation, domain.MaxDescriptionLen)
	}
	if input.Location != nil {
		if len(*input.Location) == 0 {
			return nil, fmt.Errorf("%w: location cannot be empty", domain.ErrValidation)
		}
		if len(*input.Location) > domain.MaxLocationLen {
			return nil, fmt.Errorf("%w: location exceeds %d characters", domain.ErrValidation, domain.MaxLocationLen)
		}
	}
	if input.PriceLamports <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than 0", domain.ErrValidation)
	}
	if input.CancellationFeePercent < 0 || input.CancellationFeePercent > domain.MaxCancellationFeePercent {
		return nil, fmt.Errorf("%w: cancellation fee percent must be within 0..100", domain.ErrValidation)
	}

	exp := &domain.Experience{
		Address:                address.ForExperience(input.Organiser, input.Title),
		Organiser:              input.Organiser,
		Title:                  input.Title,
		Description:            input.Description,
		Location:               input.Location,
		PriceLamports:          input.PriceLamports,
		CancellationFeePercent: input.CancellationFeePercent,
	}

	if err := s.expRepo.Create(ctx, exp); err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}

	s.logger.Info("experience created",
		logger.String("experience", exp.Address),
		logger.String("organiser", exp.Organiser),
		logger.String("title", exp.Title),
	)

	go s.notifier.ExperienceCreated(context.WithoutCancel(ctx), domain.ExperienceCreated{
		Organiser:  exp.Organiser,
		Experience: exp.Address,
		Title:      exp.Title,
	})

	return exp, nil
}

// AddSlot creates one more bookable interval under the experience. The
// experience row is locked for the duration, so slot-count bookkeeping
// and the overlap check serialize against concurrent AddSlot calls.
func (s *ExperienceService) AddSlot(ctx context.Context, input domain.AddSlotInput) (*domain.TimeSlot, error) {
	now := s.clock.Now().Unix()

	var slot *domain.TimeSlot
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		exp, err := s.expRepo.GetForUpdate(ctx, input.Experience)
		if err != nil {
			return fmt.Errorf("get experience: %w", err)
		}

		if exp.Organiser != input.Organiser {
			return fmt.Errorf("%w: only the organiser can add slots", domain.ErrUnauthorized)
		}

		if input.StartTime >= input.EndTime {
			return fmt.Errorf("%w: start time must be before end time", domain.ErrValidation)
		}
		if input.Price <= 0 {
			return fmt.Errorf("%w: price must be greater than 0", domain.ErrValidation)
		}
		if input.StartTime <= now {
			return fmt.Errorf("%w: start time must be in the future", domain.ErrValidation)
		}

		if exp.SlotCount >= domain.MaxSlotsPerExperience {
			return domain.ErrCapacity
		}

		overlaps, err := s.slotRepo.HasOverlapping(ctx, exp.Address, input.StartTime, input.EndTime)
		if err != nil {
			return fmt.Errorf("check overlap: %w", err)
		}
		if overlaps {
			return domain.ErrOverlap
		}

		slot = &domain.TimeSlot{
			Address:    address.ForSlot(exp.Address, input.StartTime),
			Experience: exp.Address,
			StartTime:  input.StartTime,
			EndTime:    input.EndTime,
			Price:      input.Price,
			IsBooked:   false,
		}
		if err = s.slotRepo.Create(ctx, slot); err != nil {
			return fmt.Errorf("create slot: %w", err)
		}

		if err = s.expRepo.IncrementSlotCount(ctx, exp.Address); err != nil {
			return fmt.Errorf("increment slot count: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("time slot added",
		logger.String("slot", slot.Address),
		logger.String("experience", slot.Experience),
		logger.Int64("start_time", slot.StartTime),
		logger.Int64("end_time", slot.EndTime),
	)

	return slot, nil
}

func (s *ExperienceService) GetDetails(ctx context.Context, addr string) (*domain.ExperienceDetails, error) {
	exp, err := s.expRepo.GetByAddress(ctx, addr)
	if err != nil {
		return nil, err
	}

	slots, err := s.slotRepo.ListByExperience(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	details := &domain.ExperienceDetails{Experience: *exp}
	details.Slots = make([]domain.TimeSlot, len(slots))
	for i, sl := range slots {
		details.Slots[i] = *sl
	}

	return details, nil
}

func (s *ExperienceService) List(ctx context.Context) ([]*domain.Experience, error) {
	return s.expRepo.List(ctx)
}
