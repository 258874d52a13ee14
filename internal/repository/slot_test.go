package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
)

func TestSlotRepository_MarkBooked_Wins(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSlotRepo(db)

	mock.ExpectExec("UPDATE slots").
		WithArgs("slot-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkBooked(context.Background(), "slot-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotRepository_MarkBooked_AlreadyTaken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSlotRepo(db)

	// The guarded update matches no row when is_booked is already TRUE.
	mock.ExpectExec("UPDATE slots").
		WithArgs("slot-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkBooked(context.Background(), "slot-1")

	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotRepository_MarkFree_SlotNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSlotRepo(db)

	mock.ExpectExec("UPDATE slots").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkFree(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
