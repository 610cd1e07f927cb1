package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"clubcourt-backend/internal/domain"
)

var walletTxRowColumns = []string{"id", "member_id", "amount_cents", "type", "status", "related_id", "description", "proof_ref", "created_on"}

func pendingDepositRow(id, memberID, amountCents int64) *sqlmock.Rows {
	return sqlmock.NewRows(walletTxRowColumns).
		AddRow(id, memberID, amountCents, string(domain.TransactionTypeDeposit), string(domain.TransactionStatusPending), nil, "", nil, time.Now().UTC())
}

func TestWalletRepository_ApproveDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("CreditsBalanceAndCompletes", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		repo := NewWalletRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions WHERE id = $1 FOR UPDATE`)).
			WithArgs(int64(3)).
			WillReturnRows(pendingDepositRow(3, 7, 5000))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE members SET wallet_balance_cents = wallet_balance_cents + $1`)).
			WithArgs(int64(5000), sqlmock.AnyArg(), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE wallet_transactions SET status = $1 WHERE id = $2`)).
			WithArgs(string(domain.TransactionStatusCompleted), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := repo.ApproveDeposit(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusCompleted, tx.Status)
		assert.Equal(t, int64(5000), tx.AmountCents)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NonPendingRollsBack", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		repo := NewWalletRepository(db)

		completed := sqlmock.NewRows(walletTxRowColumns).
			AddRow(int64(3), int64(7), int64(5000), string(domain.TransactionTypeDeposit), string(domain.TransactionStatusCompleted), nil, "", nil, time.Now().UTC())
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions WHERE id = $1 FOR UPDATE`)).
			WithArgs(int64(3)).
			WillReturnRows(completed)
		mock.ExpectRollback()

		_, err = repo.ApproveDeposit(ctx, 3)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UnknownTransaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		repo := NewWalletRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions WHERE id = $1 FOR UPDATE`)).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(walletTxRowColumns))
		mock.ExpectRollback()

		_, err = repo.ApproveDeposit(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestWalletRepository_RejectDeposit(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := NewWalletRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(5)).
		WillReturnRows(pendingDepositRow(5, 7, 2000))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE wallet_transactions SET status = $1, description = $2 WHERE id = $3`)).
		WithArgs(string(domain.TransactionStatusRejected), "Rejected: proof unreadable", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := repo.RejectDeposit(ctx, 5, "proof unreadable")
	assert.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusRejected, tx.Status)
	assert.Equal(t, "Rejected: proof unreadable", tx.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepository_Debit(t *testing.T) {
	ctx := context.Background()

	t.Run("InsufficientFundsRollsBack", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		repo := NewWalletRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT wallet_balance_cents FROM members WHERE id = $1 FOR UPDATE`)).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"wallet_balance_cents"}).AddRow(int64(1000)))
		mock.ExpectRollback()

		err = repo.Debit(ctx, &domain.WalletTransaction{MemberID: 7, AmountCents: -1500, Type: domain.TransactionTypePayment})
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("PaymentCountsTowardSpent", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		repo := NewWalletRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT wallet_balance_cents FROM members WHERE id = $1 FOR UPDATE`)).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"wallet_balance_cents"}).AddRow(int64(5000)))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wallet_transactions`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(44)))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE members SET wallet_balance_cents = wallet_balance_cents + $1, total_spent_cents = total_spent_cents + $2`)).
			WithArgs(int64(-1500), int64(1500), sqlmock.AnyArg(), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx := &domain.WalletTransaction{MemberID: 7, AmountCents: -1500, Type: domain.TransactionTypePayment}
		err = repo.Debit(ctx, tx)
		assert.NoError(t, err)
		assert.Equal(t, int64(44), tx.ID)
		assert.Equal(t, domain.TransactionStatusCompleted, tx.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("PositiveAmountRejected", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		repo := NewWalletRepository(db)

		err = repo.Debit(ctx, &domain.WalletTransaction{MemberID: 7, AmountCents: 1500})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestWalletRepository_GetBalance(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := NewWalletRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT wallet_balance_cents FROM members WHERE id = $1`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"wallet_balance_cents"}).AddRow(int64(4200)))

	balance, err := repo.GetBalance(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(4200), balance)
}
