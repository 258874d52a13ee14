package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/JkrishnaD/BookAndMint/internal/domain"
)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &dbpg.DB{Master: db}, mock
}

func TestAccountRepository_Create_UsernameTaken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepo(db)

	mock.ExpectExec("INSERT INTO accounts").
		WithArgs("acc-1", "alice", nil, int64(0), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &domain.Account{ID: "acc-1", Username: "alice"})

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Deposit_AccountNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepo(db)

	mock.ExpectExec("UPDATE accounts").
		WithArgs("ghost", int64(500)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Deposit(context.Background(), "ghost", 500)

	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Transfer_DebitsBeforeCredit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepo(db)

	// sqlmock enforces expectation order, so a credit before the
	// guarded debit would fail the test.
	mock.ExpectExec("UPDATE accounts").
		WithArgs("payer", int64(2000)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE accounts").
		WithArgs("payee", int64(2000)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Transfer(context.Background(), "payer", "payee", 2000)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Transfer_ZeroAmountRunsBothLegs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepo(db)

	mock.ExpectExec("UPDATE accounts").
		WithArgs("payer", int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE accounts").
		WithArgs("payee", int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Transfer(context.Background(), "payer", "payee", 0)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Transfer_InsufficientFunds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepo(db)

	mock.ExpectExec("UPDATE accounts").
		WithArgs("payer", int64(2000)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)")).
		WithArgs("payer").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.Transfer(context.Background(), "payer", "payee", 2000)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Transfer_PayerNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepo(db)

	mock.ExpectExec("UPDATE accounts").
		WithArgs("ghost", int64(2000)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	err := repo.Transfer(context.Background(), "ghost", "payee", 2000)

	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepo(db)
	txm := NewTxManager(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE accounts").
		WithArgs("payer", int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE accounts").
		WithArgs("payee", int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := txm.WithinTx(context.Background(), func(ctx context.Context) error {
		return repo.Transfer(ctx, "payer", "payee", 100)
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	txm := NewTxManager(db)

	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := txm.WithinTx(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
