package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the slot at its derived address. The primary key is
// the uniqueness mechanism: a second slot for the same (experience,
// start_time) pair violates it and surfaces as domain.ErrSlotExists.
func (r *SlotRepository) Create(ctx context.Context, s *domain.TimeSlot) error {
	query := `INSERT INTO slots (address, experience, start_time, end_time, price, is_booked, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	now := time.Now().UTC()
	_, err := queryerFrom(ctx, r.db).ExecContext(
		ctx, query,
		s.Address, s.Experience, s.StartTime, s.EndTime, s.Price, s.IsBooked, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlotExists
		}
		return fmt.Errorf("insert slot: %w", err)
	}
	s.CreatedAt = now

	return nil
}

const slotColumns = `address, experience, start_time, end_time, price, is_booked, created_at`

func (r *SlotRepository) GetByAddress(ctx context.Context, address string) (*domain.TimeSlot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots
			  WHERE address = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, address)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	return scanSlot(row)
}

func (r *SlotRepository) GetForUpdate(ctx context.Context, address string) (*domain.TimeSlot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots
			  WHERE address = $1
			  FOR UPDATE`
	row := queryerFrom(ctx, r.db).QueryRowContext(ctx, query, address)

	return scanSlot(row)
}

// HasOverlapping checks the half-open interval [start, end) against
// every existing slot of the experience.
func (r *SlotRepository) HasOverlapping(ctx context.Context, experience string, start, end int64) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM slots
				WHERE experience = $1 AND start_time < $3 AND end_time > $2
			  )`
	var exists bool
	err := queryerFrom(ctx, r.db).QueryRowContext(ctx, query, experience, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check overlapping slots: %w", err)
	}

	return exists, nil
}

// MarkBooked is the Free→Booked transition. The is_booked guard makes
// exactly one of any number of concurrent bookers win; the rest see
// domain.ErrAlreadyBooked.
func (r *SlotRepository) MarkBooked(ctx context.Context, address string) error {
	query := `UPDATE slots
			  SET is_booked = TRUE
			  WHERE address = $1 AND is_booked = FALSE`
	res, err := queryerFrom(ctx, r.db).ExecContext(ctx, query, address)
	if err != nil {
		return fmt.Errorf("mark slot booked: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark booked rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAlreadyBooked
	}

	return nil
}

func (r *SlotRepository) MarkFree(ctx context.Context, address string) error {
	query := `UPDATE slots
			  SET is_booked = FALSE
			  WHERE address = $1 AND is_booked = TRUE`
	res, err := queryerFrom(ctx, r.db).ExecContext(ctx, query, address)
	if err != nil {
		return fmt.Errorf("mark slot free: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark free rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSlotNotFound
	}

	return nil
}

func (r *SlotRepository) ListByExperience(ctx context.Context, experience string) ([]*domain.TimeSlot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots
			  WHERE experience = $1
			  ORDER BY start_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, experience)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var res []*domain.TimeSlot
	for rows.Next() {
		var s domain.TimeSlot
		if err = rows.Scan(
			&s.Address, &s.Experience, &s.StartTime, &s.EndTime,
			&s.Price, &s.IsBooked, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func scanSlot(row rowScanner) (*domain.TimeSlot, error) {
	var s domain.TimeSlot
	err := row.Scan(
		&s.Address, &s.Experience, &s.StartTime, &s.EndTime,
		&s.Price, &s.IsBooked, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return &s, nil
}
