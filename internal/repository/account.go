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

type AccountRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAccountRepo(db *dbpg.DB) *AccountRepository {
	return &AccountRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (id, username, telegram_chat_id, balance, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	now := time.Now().UTC()
	_, err := queryerFrom(ctx, r.db).ExecContext(
		ctx, query,
		a.ID, a.Username, a.TelegramChatID, a.Balance, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert account: %w", err)
	}
	a.CreatedAt = now
	a.UpdatedAt = now

	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT id, username, telegram_chat_id, balance, created_at, updated_at
			  FROM accounts
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	var a domain.Account
	if err = row.Scan(
		&a.ID, &a.Username, &a.TelegramChatID, &a.Balance, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}

	return &a, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	query := `SELECT id, username, telegram_chat_id, balance, created_at, updated_at
			  FROM accounts
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Account
	for rows.Next() {
		var a domain.Account
		if err = rows.Scan(
			&a.ID, &a.Username, &a.TelegramChatID, &a.Balance, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

func (r *AccountRepository) Deposit(ctx context.Context, id string, amount int64) error {
	query := `UPDATE accounts
			  SET balance = balance + $2, updated_at = now()
			  WHERE id = $1`
	res, err := queryerFrom(ctx, r.db).ExecContext(ctx, query, id, amount)
	if err != nil {
		return fmt.Errorf("deposit: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deposit rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// Transfer moves amount from one account to another as a single
// all-or-nothing step of the enclosing transaction. The balance guard
// on the debit leg enforces sufficiency; a zero amount runs both legs
// as uniform no-ops rather than being skipped.
func (r *AccountRepository) Transfer(ctx context.Context, from, to string, amount int64) error {
	q := queryerFrom(ctx, r.db)

	debit := `UPDATE accounts
			  SET balance = balance - $2, updated_at = now()
			  WHERE id = $1 AND balance >= $2`
	res, err := q.ExecContext(ctx, debit, from, amount)
	if err != nil {
		return fmt.Errorf("debit %s: %w", from, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("debit rows affected: %w", err)
	}
	if rows == 0 {
		// Distinguish a missing payer from an uncovered amount.
		var exists bool
		check := `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`
		if scanErr := q.QueryRowContext(ctx, check, from).Scan(&exists); scanErr != nil {
			return fmt.Errorf("check payer: %w", scanErr)
		}
		if !exists {
			return domain.ErrAccountNotFound
		}
		return domain.ErrInsufficientFunds
	}

	credit := `UPDATE accounts
			   SET balance = balance + $2, updated_at = now()
			   WHERE id = $1`
	res, err = q.ExecContext(ctx, credit, to, amount)
	if err != nil {
		return fmt.Errorf("credit %s: %w", to, err)
	}

	rows, err = res.RowsAffected()
	if err != nil {
		return fmt.Errorf("credit rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}
