package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"clubcourt-backend/internal/domain"
)

// MockWalletRepo
type MockWalletRepo struct {
	mock.Mock
}

func (m *MockWalletRepo) RequestDeposit(ctx context.Context, t *domain.WalletTransaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockWalletRepo) ApproveDeposit(ctx context.Context, txID int64) (*domain.WalletTransaction, error) {
	args := m.Called(ctx, txID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletTransaction), args.Error(1)
}
func (m *MockWalletRepo) RejectDeposit(ctx context.Context, txID int64, reason string) (*domain.WalletTransaction, error) {
	args := m.Called(ctx, txID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletTransaction), args.Error(1)
}
func (m *MockWalletRepo) Debit(ctx context.Context, t *domain.WalletTransaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockWalletRepo) Credit(ctx context.Context, t *domain.WalletTransaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockWalletRepo) GetTransaction(ctx context.Context, id int64) (*domain.WalletTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletTransaction), args.Error(1)
}
func (m *MockWalletRepo) GetBalance(ctx context.Context, memberID int64) (int64, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockWalletRepo) ListByMember(ctx context.Context, memberID int64, page, pageSize int32) ([]domain.WalletTransaction, int32, error) {
	args := m.Called(ctx, memberID, page, pageSize)
	return args.Get(0).([]domain.WalletTransaction), args.Get(1).(int32), args.Error(2)
}

// MockMemberRepo
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockMemberRepo) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) GetByUserRef(ctx context.Context, userRef string) (*domain.Member, error) {
	args := m.Called(ctx, userRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Member, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Member), args.Get(1).(int32), args.Error(2)
}
func (m *MockMemberRepo) Update(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockMemberRepo) SetTier(ctx context.Context, id int64, tier domain.MemberTier) error {
	args := m.Called(ctx, id, tier)
	return args.Error(0)
}
func (m *MockMemberRepo) HasActivity(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockMemberRepo) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMemberRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCourtRepo
type MockCourtRepo struct {
	mock.Mock
}

func (m *MockCourtRepo) Create(ctx context.Context, c *domain.Court) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCourtRepo) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Court), args.Error(1)
}
func (m *MockCourtRepo) List(ctx context.Context, activeOnly bool) ([]domain.Court, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.Court), args.Error(1)
}
func (m *MockCourtRepo) Update(ctx context.Context, c *domain.Court) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCourtRepo) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) CreateConfirmed(ctx context.Context, b *domain.Booking, paymentDesc string) error {
	args := m.Called(ctx, b, paymentDesc)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Cancel(ctx context.Context, id, memberID int64, refundWindow time.Duration, refundDesc string) (*domain.Booking, bool, error) {
	args := m.Called(ctx, id, memberID, refundWindow, refundDesc)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Booking), args.Bool(1), args.Error(2)
}
func (m *MockBookingRepo) ListByMember(ctx context.Context, memberID int64, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, memberID, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) ListByCourtBetween(ctx context.Context, courtID int64, from, to time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, courtID, from, to)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) MarkCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockTournamentRepo
type MockTournamentRepo struct {
	mock.Mock
}

func (m *MockTournamentRepo) Create(ctx context.Context, t *domain.Tournament) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTournamentRepo) GetByID(ctx context.Context, id int64) (*domain.Tournament, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tournament), args.Error(1)
}
func (m *MockTournamentRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Tournament, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Tournament), args.Get(1).(int32), args.Error(2)
}
func (m *MockTournamentRepo) UpdateStatus(ctx context.Context, id int64, status domain.TournamentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockTournamentRepo) Update(ctx context.Context, t *domain.Tournament) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTournamentRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTournamentRepo) Join(ctx context.Context, p *domain.TournamentParticipant, feeDesc string) error {
	args := m.Called(ctx, p, feeDesc)
	return args.Error(0)
}
func (m *MockTournamentRepo) Leave(ctx context.Context, tournamentID, memberID int64, refundDesc string) error {
	args := m.Called(ctx, tournamentID, memberID, refundDesc)
	return args.Error(0)
}
func (m *MockTournamentRepo) ListParticipants(ctx context.Context, tournamentID int64) ([]domain.TournamentParticipant, error) {
	args := m.Called(ctx, tournamentID)
	return args.Get(0).([]domain.TournamentParticipant), args.Error(1)
}
func (m *MockTournamentRepo) ReplaceMatches(ctx context.Context, tournamentID int64, matches []domain.Match) error {
	args := m.Called(ctx, tournamentID, matches)
	return args.Error(0)
}

// MockMatchRepo
type MockMatchRepo struct {
	mock.Mock
}

func (m *MockMatchRepo) Create(ctx context.Context, match *domain.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}
func (m *MockMatchRepo) GetByID(ctx context.Context, id int64) (*domain.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}
func (m *MockMatchRepo) Update(ctx context.Context, match *domain.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}
func (m *MockMatchRepo) ListByTournament(ctx context.Context, tournamentID int64) ([]domain.Match, error) {
	args := m.Called(ctx, tournamentID)
	return args.Get(0).([]domain.Match), args.Error(1)
}
func (m *MockMatchRepo) ListByMember(ctx context.Context, memberID int64, page, pageSize int32) ([]domain.Match, int32, error) {
	args := m.Called(ctx, memberID, page, pageSize)
	return args.Get(0).([]domain.Match), args.Get(1).(int32), args.Error(2)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, memberID int64, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, memberID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, memberID int64) error {
	args := m.Called(ctx, id, memberID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, toEmail, toName, courtName string, start, end time.Time) error {
	args := m.Called(ctx, toEmail, toName, courtName, start, end)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingReminder(ctx context.Context, toEmail, toName, courtName string, start time.Time) error {
	args := m.Called(ctx, toEmail, toName, courtName, start)
	return args.Error(0)
}
func (m *MockEmailService) SendDepositResult(ctx context.Context, toEmail, toName string, amountCents int64, approved bool, reason string) error {
	args := m.Called(ctx, toEmail, toName, amountCents, approved, reason)
	return args.Error(0)
}
