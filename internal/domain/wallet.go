package domain

import (
	"fmt"
	"strings"
	"time"
)

type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
	TransactionTypePayment  TransactionType = "PAYMENT"
	TransactionTypeRefund   TransactionType = "REFUND"
	TransactionTypeReward   TransactionType = "REWARD"
)

func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(strings.ToUpper(s)); t {
	case TransactionTypeDeposit, TransactionTypeWithdraw, TransactionTypePayment,
		TransactionTypeRefund, TransactionTypeReward:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown transaction type %q", ErrInvalidInput, s)
}

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusRejected  TransactionStatus = "REJECTED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch t := TransactionStatus(strings.ToUpper(s)); t {
	case TransactionStatusPending, TransactionStatusCompleted,
		TransactionStatusRejected, TransactionStatusFailed:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown transaction status %q", ErrInvalidInput, s)
}

// WalletTransaction is one ledger entry. AmountCents is signed: positive for
// DEPOSIT/REFUND/REWARD, negative for PAYMENT/WITHDRAW. Rows are immutable once
// COMPLETED or REJECTED. The invariant the wallet preserves: a member's
// WalletBalanceCents equals the sum of AmountCents over their COMPLETED rows.
type WalletTransaction struct {
	ID          int64             `json:"id"`
	MemberID    int64             `json:"member_id"`
	AmountCents int64             `json:"amount_cents"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	RelatedID   *string           `json:"related_id,omitempty"`
	Description string            `json:"description"`
	ProofRef    *string           `json:"proof_ref,omitempty"`
	CreatedOn   time.Time         `json:"created_on"`
}
