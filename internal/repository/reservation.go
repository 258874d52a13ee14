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

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the reservation at its derived address. An existing
// record for this (experience, start_time) pair, live or cancelled,
// violates the primary key and surfaces as domain.ErrAlreadyBooked;
// records never transition back to unclaimed.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (address, experience, "user", time_slot, nft_mint,
	                                    start_time, end_time, price, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	now := time.Now().UTC()
	_, err := queryerFrom(ctx, r.db).ExecContext(
		ctx, query,
		res.Address, res.Experience, res.User, res.TimeSlot, res.NFTMint,
		res.StartTime, res.EndTime, res.Price, res.IsActive, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("insert reservation: %w", err)
	}
	res.CreatedAt = now
	res.UpdatedAt = now

	return nil
}

const reservationColumns = `address, experience, "user", time_slot, nft_mint,
       		start_time, end_time, price, is_active, created_at, updated_at`

func (r *ReservationRepository) GetByAddress(ctx context.Context, address string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE address = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, address)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	return scanReservation(row)
}

func (r *ReservationRepository) GetForUpdate(ctx context.Context, address string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE address = $1
			  FOR UPDATE`
	row := queryerFrom(ctx, r.db).QueryRowContext(ctx, query, address)

	return scanReservation(row)
}

func (r *ReservationRepository) Deactivate(ctx context.Context, address string) error {
	query := `UPDATE reservations
			  SET is_active = FALSE, updated_at = now()
			  WHERE address = $1 AND is_active = TRUE`
	res, err := queryerFrom(ctx, r.db).ExecContext(ctx, query, address)
	if err != nil {
		return fmt.Errorf("deactivate reservation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deactivate rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrInvalidReservation
	}

	return nil
}

func (r *ReservationRepository) Rebind(ctx context.Context, address string, timeSlot, startTime, endTime int64) error {
	query := `UPDATE reservations
			  SET time_slot = $2, start_time = $3, end_time = $4, updated_at = now()
			  WHERE address = $1 AND is_active = TRUE`
	res, err := queryerFrom(ctx, r.db).ExecContext(ctx, query, address, timeSlot, startTime, endTime)
	if err != nil {
		return fmt.Errorf("rebind reservation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rebind rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrInvalidReservation
	}

	return nil
}

func (r *ReservationRepository) ListByUser(ctx context.Context, user string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE "user" = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, user)
	if err != nil {
		return nil, fmt.Errorf("list reservations by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		var rv domain.Reservation
		if err = rows.Scan(
			&rv.Address, &rv.Experience, &rv.User, &rv.TimeSlot, &rv.NFTMint,
			&rv.StartTime, &rv.EndTime, &rv.Price, &rv.IsActive,
			&rv.CreatedAt, &rv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, &rv)
	}

	return res, rows.Err()
}

// UpcomingDeadlines returns active reservations whose cancellation
// deadline (start_time minus the notice period) falls inside
// [from, to) and that have not been reminded yet.
func (r *ReservationRepository) UpcomingDeadlines(ctx context.Context, from, to int64) ([]*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET reminded_at = now()
			  WHERE is_active = TRUE
			    AND reminded_at IS NULL
			    AND start_time - $3 >= $1
			    AND start_time - $3 < $2
			  RETURNING ` + reservationColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to, domain.CancelNoticePeriod)
	if err != nil {
		return nil, fmt.Errorf("upcoming deadlines: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		var rv domain.Reservation
		if err = rows.Scan(
			&rv.Address, &rv.Experience, &rv.User, &rv.TimeSlot, &rv.NFTMint,
			&rv.StartTime, &rv.EndTime, &rv.Price, &rv.IsActive,
			&rv.CreatedAt, &rv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, &rv)
	}

	return res, rows.Err()
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var rv domain.Reservation
	err := row.Scan(
		&rv.Address, &rv.Experience, &rv.User, &rv.TimeSlot, &rv.NFTMint,
		&rv.StartTime, &rv.EndTime, &rv.Price, &rv.IsActive,
		&rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return &rv, nil
}
