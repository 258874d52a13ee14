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

type ExperienceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewExperienceRepo(db *dbpg.DB) *ExperienceRepository {
	return &ExperienceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ExperienceRepository) Create(ctx context.Context, e *domain.Experience) error {
	query := `INSERT INTO experiences (address, organiser, title, description, location,
	                                   price_lamports, cancellation_fee_percent, slot_count,
	                                   created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	_, err := queryerFrom(ctx, r.db).ExecContext(
		ctx, query,
		e.Address, e.Organiser, e.Title, e.Description, e.Location,
		e.PriceLamports, e.CancellationFeePercent, e.SlotCount, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrExperienceExists
		}
		return fmt.Errorf("insert experience: %w", err)
	}
	e.CreatedAt = now
	e.UpdatedAt = now

	return nil
}

const experienceColumns = `address, organiser, title, description, location,
       		price_lamports, cancellation_fee_percent, slot_count, created_at, updated_at`

func (r *ExperienceRepository) GetByAddress(ctx context.Context, address string) (*domain.Experience, error) {
	query := `SELECT ` + experienceColumns + `
			  FROM experiences
			  WHERE address = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, address)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}

	return scanExperience(row)
}

func (r *ExperienceRepository) GetForUpdate(ctx context.Context, address string) (*domain.Experience, error) {
	query := `SELECT ` + experienceColumns + `
			  FROM experiences
			  WHERE address = $1
			  FOR UPDATE`
	row := queryerFrom(ctx, r.db).QueryRowContext(ctx, query, address)

	return scanExperience(row)
}

// IncrementSlotCount bumps the slot counter by exactly one; the guard
// on the current count rejects the increment once the cap is reached
// instead of wrapping or growing unbounded.
func (r *ExperienceRepository) IncrementSlotCount(ctx context.Context, address string) error {
	query := `UPDATE experiences
			  SET slot_count = slot_count + 1, updated_at = now()
			  WHERE address = $1 AND slot_count < $2`
	res, err := queryerFrom(ctx, r.db).ExecContext(ctx, query, address, domain.MaxSlotsPerExperience)
	if err != nil {
		return fmt.Errorf("increment slot count: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("slot count rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCapacity
	}

	return nil
}

func (r *ExperienceRepository) List(ctx context.Context) ([]*domain.Experience, error) {
	query := `SELECT ` + experienceColumns + `
			  FROM experiences
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer rows.Close()

	var res []*domain.Experience
	for rows.Next() {
		var e domain.Experience
		if err = rows.Scan(
			&e.Address, &e.Organiser, &e.Title, &e.Description, &e.Location,
			&e.PriceLamports, &e.CancellationFeePercent, &e.SlotCount,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExperience(row rowScanner) (*domain.Experience, error) {
	var e domain.Experience
	err := row.Scan(
		&e.Address, &e.Organiser, &e.Title, &e.Description, &e.Location,
		&e.PriceLamports, &e.CancellationFeePercent, &e.SlotCount,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("scan experience: %w", err)
	}

	return &e, nil
}
