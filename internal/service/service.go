package service

import (
	"context"
	"time"

	"clubcourt-backend/internal/domain"
)

type WalletService interface {
	GetBalance(ctx context.Context, memberID int64) (int64, error)
	RequestDeposit(ctx context.Context, memberID, amountCents int64, note string, proofRef *string) (*domain.WalletTransaction, error)
	ApproveDeposit(ctx context.Context, txID int64) (*domain.WalletTransaction, error)
	RejectDeposit(ctx context.Context, txID int64, reason string) (*domain.WalletTransaction, error)
	Debit(ctx context.Context, memberID, amountCents int64, description string, relatedID *string) (*domain.WalletTransaction, error)
	Refund(ctx context.Context, memberID, amountCents int64, description string, relatedID *string) (*domain.WalletTransaction, error)
	GetHistory(ctx context.Context, memberID int64, page, pageSize int32) ([]domain.WalletTransaction, int32, error)
}

type BookingService interface {
	// IsSlotAvailable reports whether no non-cancelled booking on the court
	// overlaps [start, end).
	IsSlotAvailable(ctx context.Context, courtID int64, start, end time.Time) (bool, error)

	CreateBooking(ctx context.Context, memberID, courtID int64, start, end time.Time) (*domain.Booking, error)

	// CreateRecurringBooking books the first occurrences matching rule from
	// start onward. Occurrences whose slot is taken or that the balance no
	// longer covers are skipped; the returned slice holds only the bookings
	// that were made.
	CreateRecurringBooking(ctx context.Context, memberID, courtID int64, start, end time.Time, rule string, occurrences int32) ([]domain.Booking, error)

	CancelBooking(ctx context.Context, memberID, bookingID int64) (b *domain.Booking, refunded bool, err error)
	GetBooking(ctx context.Context, memberID, bookingID int64) (*domain.Booking, error)
	ListMyBookings(ctx context.Context, memberID int64, page, pageSize int32) ([]domain.Booking, int32, error)

	// AvailableSlots returns the court's non-cancelled bookings for the day,
	// ascending by start time. Callers derive free gaps from the occupied
	// intervals.
	AvailableSlots(ctx context.Context, courtID int64, day time.Time) ([]domain.Booking, error)
}

type TournamentService interface {
	CreateTournament(ctx context.Context, t *domain.Tournament) error
	UpdateTournament(ctx context.Context, t *domain.Tournament) error
	GetTournament(ctx context.Context, id int64) (*domain.Tournament, []domain.TournamentParticipant, error)
	ListTournaments(ctx context.Context, status string, page, pageSize int32) ([]domain.Tournament, int32, error)
	JoinTournament(ctx context.Context, tournamentID, memberID int64, teamName *string) (*domain.TournamentParticipant, error)
	LeaveTournament(ctx context.Context, tournamentID, memberID int64) error

	// DeleteTournament removes a tournament that nobody has joined yet.
	DeleteTournament(ctx context.Context, id int64) error

	// GenerateSchedule builds the draw for the tournament's format and
	// replaces any existing matches with it.
	GenerateSchedule(ctx context.Context, tournamentID int64) ([]domain.Match, error)

	ListMatches(ctx context.Context, tournamentID int64) ([]domain.Match, error)
	RecordMatch(ctx context.Context, m *domain.Match) error
	UpdateScore(ctx context.Context, matchID int64, score1, score2 int32, status domain.MatchStatus) (*domain.Match, error)
	ListMemberMatches(ctx context.Context, memberID int64, page, pageSize int32) ([]domain.Match, int32, error)
}

type CourtService interface {
	CreateCourt(ctx context.Context, c *domain.Court) error
	GetCourt(ctx context.Context, id int64) (*domain.Court, error)
	ListCourts(ctx context.Context, activeOnly bool) ([]domain.Court, error)
	UpdateCourt(ctx context.Context, c *domain.Court) error
	SetCourtActive(ctx context.Context, id int64, active bool) error
}

type MemberService interface {
	CreateMember(ctx context.Context, m *domain.Member) error
	GetMember(ctx context.Context, id int64) (*domain.Member, error)
	GetMemberByUserRef(ctx context.Context, userRef string) (*domain.Member, error)
	ListMembers(ctx context.Context, page, pageSize int32) ([]domain.Member, int32, error)
	UpdateMember(ctx context.Context, m *domain.Member) error
	SetTier(ctx context.Context, id int64, tier domain.MemberTier) error

	// DeleteMember deactivates members with wallet or booking history and
	// removes the row outright only when no history exists.
	DeleteMember(ctx context.Context, id int64) error
}

type NotificationService interface {
	GetNotifications(ctx context.Context, memberID int64, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, memberID, notificationID int64) error
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, toEmail, toName, courtName string, start, end time.Time) error
	SendBookingReminder(ctx context.Context, toEmail, toName, courtName string, start time.Time) error
	SendDepositResult(ctx context.Context, toEmail, toName string, amountCents int64, approved bool, reason string) error
}
