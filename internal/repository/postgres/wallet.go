package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"clubcourt-backend/internal/domain"
	"clubcourt-backend/internal/repository"
)

type walletRepository struct {
	db *sql.DB
}

func NewWalletRepository(db *sql.DB) repository.WalletRepository {
	return &walletRepository{db: db}
}

const walletTxColumns = `id, member_id, amount_cents, type, status, related_id, COALESCE(description, ''), proof_ref, created_on`

func scanWalletTx(row *sql.Row) (*domain.WalletTransaction, error) {
	t := &domain.WalletTransaction{}
	err := row.Scan(&t.ID, &t.MemberID, &t.AmountCents, &t.Type, &t.Status, &t.RelatedID, &t.Description, &t.ProofRef, &t.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *walletRepository) RequestDeposit(ctx context.Context, t *domain.WalletTransaction) error {
	t.Type = domain.TransactionTypeDeposit
	t.Status = domain.TransactionStatusPending
	t.CreatedOn = time.Now().UTC()
	query := `INSERT INTO wallet_transactions (member_id, amount_cents, type, status, related_id, description, proof_ref, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, t.MemberID, t.AmountCents, t.Type, t.Status, t.RelatedID, t.Description, t.ProofRef, t.CreatedOn).Scan(&t.ID)
}

func (r *walletRepository) ApproveDeposit(ctx context.Context, txID int64) (*domain.WalletTransaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	t := &domain.WalletTransaction{}
	query := `SELECT ` + walletTxColumns + ` FROM wallet_transactions WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, txID).Scan(&t.ID, &t.MemberID, &t.AmountCents, &t.Type, &t.Status, &t.RelatedID, &t.Description, &t.ProofRef, &t.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if t.Type != domain.TransactionTypeDeposit || t.Status != domain.TransactionStatusPending {
		return nil, fmt.Errorf("%w: transaction %d is not a pending deposit", domain.ErrInvalidState, txID)
	}

	_, err = tx.ExecContext(ctx, `UPDATE members SET wallet_balance_cents = wallet_balance_cents + $1, updated_on = $2 WHERE id = $3`,
		t.AmountCents, time.Now().UTC(), t.MemberID)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE wallet_transactions SET status = $1 WHERE id = $2`, domain.TransactionStatusCompleted, t.ID); err != nil {
		return nil, err
	}
	t.Status = domain.TransactionStatusCompleted
	return t, tx.Commit()
}

func (r *walletRepository) RejectDeposit(ctx context.Context, txID int64, reason string) (*domain.WalletTransaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	t := &domain.WalletTransaction{}
	query := `SELECT ` + walletTxColumns + ` FROM wallet_transactions WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, txID).Scan(&t.ID, &t.MemberID, &t.AmountCents, &t.Type, &t.Status, &t.RelatedID, &t.Description, &t.ProofRef, &t.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if t.Type != domain.TransactionTypeDeposit || t.Status != domain.TransactionStatusPending {
		return nil, fmt.Errorf("%w: transaction %d is not a pending deposit", domain.ErrInvalidState, txID)
	}

	t.Status = domain.TransactionStatusRejected
	t.Description = fmt.Sprintf("Rejected: %s", reason)
	_, err = tx.ExecContext(ctx, `UPDATE wallet_transactions SET status = $1, description = $2 WHERE id = $3`, t.Status, t.Description, t.ID)
	if err != nil {
		return nil, err
	}
	return t, tx.Commit()
}

func (r *walletRepository) Debit(ctx context.Context, t *domain.WalletTransaction) error {
	if t.AmountCents >= 0 {
		return fmt.Errorf("%w: debit amount must be negative", domain.ErrInvalidInput)
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var balance int64
	err = tx.QueryRowContext(ctx, `SELECT wallet_balance_cents FROM members WHERE id = $1 FOR UPDATE`, t.MemberID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if balance+t.AmountCents < 0 {
		return domain.ErrInsufficientFunds
	}

	t.Status = domain.TransactionStatusCompleted
	t.CreatedOn = time.Now().UTC()
	query := `INSERT INTO wallet_transactions (member_id, amount_cents, type, status, related_id, description, proof_ref, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err = tx.QueryRowContext(ctx, query, t.MemberID, t.AmountCents, t.Type, t.Status, t.RelatedID, t.Description, t.ProofRef, t.CreatedOn).Scan(&t.ID)
	if err != nil {
		return err
	}

	var spent int64
	if t.Type == domain.TransactionTypePayment {
		spent = -t.AmountCents
	}
	_, err = tx.ExecContext(ctx, `UPDATE members SET wallet_balance_cents = wallet_balance_cents + $1, total_spent_cents = total_spent_cents + $2, updated_on = $3 WHERE id = $4`,
		t.AmountCents, spent, t.CreatedOn, t.MemberID)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *walletRepository) Credit(ctx context.Context, t *domain.WalletTransaction) error {
	if t.AmountCents <= 0 {
		return fmt.Errorf("%w: credit amount must be positive", domain.ErrInvalidInput)
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM members WHERE id = $1 FOR UPDATE)`, t.MemberID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	t.Status = domain.TransactionStatusCompleted
	t.CreatedOn = time.Now().UTC()
	query := `INSERT INTO wallet_transactions (member_id, amount_cents, type, status, related_id, description, proof_ref, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err = tx.QueryRowContext(ctx, query, t.MemberID, t.AmountCents, t.Type, t.Status, t.RelatedID, t.Description, t.ProofRef, t.CreatedOn).Scan(&t.ID)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `UPDATE members SET wallet_balance_cents = wallet_balance_cents + $1, updated_on = $2 WHERE id = $3`,
		t.AmountCents, t.CreatedOn, t.MemberID)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *walletRepository) GetTransaction(ctx context.Context, id int64) (*domain.WalletTransaction, error) {
	query := `SELECT ` + walletTxColumns + ` FROM wallet_transactions WHERE id = $1`
	return scanWalletTx(r.db.QueryRowContext(ctx, query, id))
}

func (r *walletRepository) GetBalance(ctx context.Context, memberID int64) (int64, error) {
	var balance int64
	err := r.db.QueryRowContext(ctx, `SELECT wallet_balance_cents FROM members WHERE id = $1`, memberID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	return balance, err
}

func (r *walletRepository) ListByMember(ctx context.Context, memberID int64, page, pageSize int32) ([]domain.WalletTransaction, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + walletTxColumns + ` FROM wallet_transactions WHERE member_id = $1 ORDER BY created_on DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, memberID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var txs []domain.WalletTransaction
	for rows.Next() {
		var t domain.WalletTransaction
		if err := rows.Scan(&t.ID, &t.MemberID, &t.AmountCents, &t.Type, &t.Status, &t.RelatedID, &t.Description, &t.ProofRef, &t.CreatedOn); err != nil {
			return nil, 0, err
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM wallet_transactions WHERE member_id = $1`, memberID).Scan(&count); err != nil {
		return nil, 0, err
	}
	return txs, count, nil
}
