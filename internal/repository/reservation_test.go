package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
)

func TestReservationRepository_Create_DuplicateAddress(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepo(db)

	mock.ExpectExec("INSERT INTO reservations").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &domain.Reservation{Address: "res-1"})

	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_Deactivate_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepo(db)

	mock.ExpectExec("UPDATE reservations").
		WithArgs("res-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Deactivate(context.Background(), "res-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_Deactivate_AlreadyInactive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepo(db)

	// The is_active guard means a second deactivation matches no row.
	mock.ExpectExec("UPDATE reservations").
		WithArgs("res-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Deactivate(context.Background(), "res-1")

	assert.ErrorIs(t, err, domain.ErrInvalidReservation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_Rebind_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepo(db)

	mock.ExpectExec("UPDATE reservations").
		WithArgs("res-1", int64(1_200_000), int64(1_200_000), int64(1_203_600)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Rebind(context.Background(), "res-1", 1_200_000, 1_200_000, 1_203_600)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_Rebind_Inactive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepo(db)

	mock.ExpectExec("UPDATE reservations").
		WithArgs("res-1", int64(1_200_000), int64(1_200_000), int64(1_203_600)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Rebind(context.Background(), "res-1", 1_200_000, 1_200_000, 1_203_600)

	assert.ErrorIs(t, err, domain.ErrInvalidReservation)
	assert.NoError(t, mock.ExpectationsWereMet())
}
