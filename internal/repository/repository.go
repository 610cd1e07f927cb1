package repository

import (
	"context"
	"time"

	"clubcourt-backend/internal/domain"
)

type MemberRepository interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
	GetByUserRef(ctx context.Context, userRef string) (*domain.Member, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Member, int32, error)
	Update(ctx context.Context, m *domain.Member) error
	SetTier(ctx context.Context, id int64, tier domain.MemberTier) error

	// HasActivity reports whether the member has any wallet transactions or
	// bookings; such members are deactivated on delete instead of removed.
	HasActivity(ctx context.Context, id int64) (bool, error)
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type WalletRepository interface {
	// RequestDeposit inserts a PENDING deposit row. The member balance is
	// untouched until approval.
	RequestDeposit(ctx context.Context, t *domain.WalletTransaction) error

	// ApproveDeposit marks a pending deposit COMPLETED and credits the member
	// balance, atomically. Returns the updated transaction.
	ApproveDeposit(ctx context.Context, txID int64) (*domain.WalletTransaction, error)

	// RejectDeposit marks a pending deposit REJECTED with the given reason.
	RejectDeposit(ctx context.Context, txID int64, reason string) (*domain.WalletTransaction, error)

	// Debit atomically checks the member balance against -t.AmountCents,
	// inserts the COMPLETED row and updates balance and total spent. The
	// member row is locked for the duration; t.AmountCents must be negative.
	// Returns domain.ErrInsufficientFunds when the balance does not cover it.
	Debit(ctx context.Context, t *domain.WalletTransaction) error

	// Credit inserts a COMPLETED row with positive amount and adds it to the
	// member balance. Total spent is not reduced.
	Credit(ctx context.Context, t *domain.WalletTransaction) error

	GetTransaction(ctx context.Context, id int64) (*domain.WalletTransaction, error)
	GetBalance(ctx context.Context, memberID int64) (int64, error)
	ListByMember(ctx context.Context, memberID int64, page, pageSize int32) ([]domain.WalletTransaction, int32, error)
}

type CourtRepository interface {
	Create(ctx context.Context, c *domain.Court) error
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Court, error)
	Update(ctx context.Context, c *domain.Court) error
	SetActive(ctx context.Context, id int64, active bool) error
}

type BookingRepository interface {
	// CreateConfirmed runs the whole reservation as one transaction: lock the
	// court and verify it is active, check for overlap against non-cancelled
	// bookings, lock the member and charge b.TotalPriceCents, then insert the
	// CONFIRMED booking linked to the payment row. Fails with ErrCourtInactive,
	// ErrSlotTaken or ErrInsufficientFunds.
	CreateConfirmed(ctx context.Context, b *domain.Booking, paymentDesc string) error

	GetByID(ctx context.Context, id int64) (*domain.Booking, error)

	// Cancel flips a booking to CANCELLED. Already-cancelled bookings return
	// unchanged with refunded=false. A refund is issued inside the same
	// transaction when the booking was paid and starts more than refundWindow
	// from now; otherwise the payment is forfeited.
	Cancel(ctx context.Context, id, memberID int64, refundWindow time.Duration, refundDesc string) (b *domain.Booking, refunded bool, err error)

	ListByMember(ctx context.Context, memberID int64, page, pageSize int32) ([]domain.Booking, int32, error)
	ListByCourtBetween(ctx context.Context, courtID int64, from, to time.Time) ([]domain.Booking, error)
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error)

	// MarkCompletedBefore moves CONFIRMED bookings whose end time passed the
	// cutoff to COMPLETED. Returns the number of rows changed.
	MarkCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type TournamentRepository interface {
	Create(ctx context.Context, t *domain.Tournament) error
	GetByID(ctx context.Context, id int64) (*domain.Tournament, error)
	Update(ctx context.Context, t *domain.Tournament) error
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Tournament, int32, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TournamentStatus) error

	// Delete removes a tournament and its matches; fails with ErrConflict
	// while any participant holds a seat.
	Delete(ctx context.Context, id int64) error

	// Join registers a seat in one transaction: lock the tournament, require
	// OPEN status and no existing seat for the member, charge the entry fee
	// from the locked member row, insert the participant. A unique index on
	// (tournament_id, member_id) backstops the duplicate check.
	Join(ctx context.Context, p *domain.TournamentParticipant, feeDesc string) error

	// Leave removes a seat while the tournament is still OPEN, refunding the
	// entry fee in the same transaction when it was paid.
	Leave(ctx context.Context, tournamentID, memberID int64, refundDesc string) error

	ListParticipants(ctx context.Context, tournamentID int64) ([]domain.TournamentParticipant, error)

	// ReplaceMatches deletes the tournament's existing matches, inserts the
	// new set and moves the tournament to DRAW_COMPLETED, atomically.
	ReplaceMatches(ctx context.Context, tournamentID int64, matches []domain.Match) error
}

type MatchRepository interface {
	Create(ctx context.Context, m *domain.Match) error
	GetByID(ctx context.Context, id int64) (*domain.Match, error)
	Update(ctx context.Context, m *domain.Match) error
	ListByTournament(ctx context.Context, tournamentID int64) ([]domain.Match, error)
	ListByMember(ctx context.Context, memberID int64, page, pageSize int32) ([]domain.Match, int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, memberID int64, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, memberID int64) error
}
