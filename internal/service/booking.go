package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"clubcourt-backend/internal/domain"
	"clubcourt-backend/internal/logger"
	"clubcourt-backend/internal/repository"
	"clubcourt-backend/internal/utils"
)

type bookingService struct {
	bookingRepo  repository.BookingRepository
	courtRepo    repository.CourtRepository
	memberRepo   repository.MemberRepository
	emailSvc     EmailService
	noteRepo     repository.NotificationRepository
	refundWindow time.Duration
	openHour     int
	closeHour    int
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	courtRepo repository.CourtRepository,
	memberRepo repository.MemberRepository,
	emailSvc EmailService,
	noteRepo repository.NotificationRepository,
	refundWindow time.Duration,
	openHour, closeHour int,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		courtRepo:    courtRepo,
		memberRepo:   memberRepo,
		emailSvc:     emailSvc,
		noteRepo:     noteRepo,
		refundWindow: refundWindow,
		openHour:     openHour,
		closeHour:    closeHour,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, memberID, courtID int64, start, end time.Time) (*domain.Booking, error) {
	court, err := s.courtRepo.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	cost, err := utils.BookingCost(court.PricePerHourCents, start, end)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		CourtID:         courtID,
		MemberID:        memberID,
		StartTime:       start,
		EndTime:         end,
		TotalPriceCents: cost,
	}
	desc := fmt.Sprintf("Court booking: %s", court.Name)
	if err := s.bookingRepo.CreateConfirmed(ctx, b, desc); err != nil {
		return nil, err
	}

	s.notifyBooked(ctx, b, court)
	return b, nil
}

func (s *bookingService) IsSlotAvailable(ctx context.Context, courtID int64, start, end time.Time) (bool, error) {
	if !end.After(start) {
		return false, fmt.Errorf("%w: end time must be after start time", domain.ErrInvalidInput)
	}
	if _, err := s.courtRepo.GetByID(ctx, courtID); err != nil {
		return false, err
	}
	booked, err := s.bookingRepo.ListByCourtBetween(ctx, courtID, start, end)
	if err != nil {
		return false, err
	}
	return len(booked) == 0, nil
}

const maxRecurringOccurrences = 52

func (s *bookingService) CreateRecurringBooking(ctx context.Context, memberID, courtID int64, start, end time.Time, rule string, occurrences int32) ([]domain.Booking, error) {
	rec, err := utils.ParseRecurrenceRule(rule)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end time must be after start time", domain.ErrInvalidInput)
	}
	if occurrences < 1 || occurrences > maxRecurringOccurrences {
		return nil, fmt.Errorf("%w: occurrence count must be between 1 and %d", domain.ErrInvalidInput, maxRecurringOccurrences)
	}

	court, err := s.courtRepo.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	duration := end.Sub(start)
	cost, err := utils.BookingCost(court.PricePerHourCents, start, end)
	if err != nil {
		return nil, err
	}

	seriesID := uuid.NewString()
	var created []domain.Booking
	var parentID *int64
	for _, occ := range rec.Occurrences(start, int(occurrences)) {
		b := &domain.Booking{
			CourtID:         courtID,
			MemberID:        memberID,
			StartTime:       occ,
			EndTime:         occ.Add(duration),
			TotalPriceCents: cost,
			IsRecurring:     true,
			RecurrenceRule:  &rule,
			RecurrenceID:    &seriesID,
			ParentBookingID: parentID,
		}
		desc := fmt.Sprintf("Court booking: %s (recurring)", court.Name)
		err := s.bookingRepo.CreateConfirmed(ctx, b, desc)
		if errors.Is(err, domain.ErrSlotTaken) || errors.Is(err, domain.ErrInsufficientFunds) {
			// Occupied and unaffordable occurrences are skipped; the rest
			// of the series still books.
			logger.DebugContext(ctx, "recurring occurrence skipped",
				"court_id", courtID, "start", occ, "reason", err)
			continue
		}
		if err != nil {
			return created, err
		}
		if parentID == nil {
			id := b.ID
			parentID = &id
		}
		created = append(created, *b)
	}

	if len(created) > 0 {
		_ = s.noteRepo.Create(ctx, &domain.Notification{
			MemberID: memberID,
			Type:     domain.NotificationBookingCreated,
			Message:  fmt.Sprintf("Booked %d sessions on %s (%s)", len(created), court.Name, rule),
		})
	}
	return created, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, memberID, bookingID int64) (*domain.Booking, bool, error) {
	b, refunded, err := s.bookingRepo.Cancel(ctx, bookingID, memberID, s.refundWindow, fmt.Sprintf("Booking %d cancelled", bookingID))
	if err != nil {
		return nil, false, err
	}

	msg := fmt.Sprintf("Your booking on %s was cancelled", b.StartTime.Format("Mon Jan 2 15:04"))
	if refunded {
		msg += fmt.Sprintf(", %s refunded", formatCents(b.TotalPriceCents))
	}
	_ = s.noteRepo.Create(ctx, &domain.Notification{
		MemberID: memberID,
		Type:     domain.NotificationBookingCancelled,
		Message:  msg,
	})
	return b, refunded, nil
}

func (s *bookingService) GetBooking(ctx context.Context, memberID, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.MemberID != memberID {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (s *bookingService) ListMyBookings(ctx context.Context, memberID int64, page, pageSize int32) ([]domain.Booking, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.bookingRepo.ListByMember(ctx, memberID, page, pageSize)
}

// AvailableSlots lists the day's occupied intervals; callers work out the
// free gaps between opening hours themselves.
func (s *bookingService) AvailableSlots(ctx context.Context, courtID int64, day time.Time) ([]domain.Booking, error) {
	if _, err := s.courtRepo.GetByID(ctx, courtID); err != nil {
		return nil, err
	}

	y, m, d := day.Date()
	open := time.Date(y, m, d, s.openHour, 0, 0, 0, day.Location())
	close := time.Date(y, m, d, s.closeHour, 0, 0, 0, day.Location())

	return s.bookingRepo.ListByCourtBetween(ctx, courtID, open, close)
}

func (s *bookingService) notifyBooked(ctx context.Context, b *domain.Booking, court *domain.Court) {
	_ = s.noteRepo.Create(ctx, &domain.Notification{
		MemberID: b.MemberID,
		Type:     domain.NotificationBookingCreated,
		Message:  fmt.Sprintf("Booked %s on %s", court.Name, b.StartTime.Format("Mon Jan 2 15:04")),
	})
	if member, err := s.memberRepo.GetByID(ctx, b.MemberID); err == nil && member.Email != nil {
		_ = s.emailSvc.SendBookingConfirmation(ctx, *member.Email, member.FullName, court.Name, b.StartTime, b.EndTime)
	}
}
