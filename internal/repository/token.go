package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// TokenRepository mints unique proof-of-booking tokens. Minting joins
// the booking transaction, so a failed booking never leaves a token
// behind and a minted token always has a matching reservation.
type TokenRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTokenRepo(db *dbpg.DB) *TokenRepository {
	return &TokenRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TokenRepository) Issue(ctx context.Context, owner string) (string, error) {
	id := uuid.New().String()
	query := `INSERT INTO tokens (id, owner, created_at)
			  VALUES ($1, $2, $3)`
	_, err := queryerFrom(ctx, r.db).ExecContext(ctx, query, id, owner, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return id, nil
}

func (r *TokenRepository) AttachMetadata(ctx context.Context, tokenID string, md *domain.Metadata) error {
	raw, err := json.Marshal(md)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	query := `UPDATE tokens
			  SET metadata = $2
			  WHERE id = $1`
	res, err := queryerFrom(ctx, r.db).ExecContext(ctx, query, tokenID, raw)
	if err != nil {
		return fmt.Errorf("attach metadata: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("attach metadata rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("attach metadata: token %s not found", tokenID)
	}

	return nil
}

func (r *TokenRepository) ListByOwner(ctx context.Context, owner string) ([]*domain.Token, error) {
	query := `SELECT id, owner, metadata, created_at
			  FROM tokens
			  WHERE owner = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, owner)
	if err != nil {
		return nil, fmt.Errorf("list tokens: %w", err)
	}
	defer rows.Close()

	var res []*domain.Token
	for rows.Next() {
		var t domain.Token
		var raw []byte
		if err = rows.Scan(&t.ID, &t.Owner, &raw, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan token: %w", err)
		}
		if len(raw) > 0 {
			var md domain.Metadata
			if err = json.Unmarshal(raw, &md); err != nil {
				return nil, fmt.Errorf("unmarshal metadata: %w", err)
			}
			t.Metadata = &md
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}
