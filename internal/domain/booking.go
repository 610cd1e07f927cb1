package domain

import (
	"fmt"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusPendingPayment BookingStatus = "PENDING_PAYMENT"
	BookingStatusConfirmed      BookingStatus = "CONFIRMED"
	BookingStatusCancelled      BookingStatus = "CANCELLED"
	BookingStatusCompleted      BookingStatus = "COMPLETED"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch t := BookingStatus(strings.ToUpper(s)); t {
	case BookingStatusPendingPayment, BookingStatusConfirmed,
		BookingStatusCancelled, BookingStatusCompleted:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown booking status %q", ErrInvalidInput, s)
}

// Booking reserves a court for the half-open interval [StartTime, EndTime).
// Two bookings on the same court overlap iff startA < endB && endA > startB;
// no two non-cancelled bookings on a court may overlap.
type Booking struct {
	ID              int64         `json:"id"`
	CourtID         int64         `json:"court_id"`
	MemberID        int64         `json:"member_id"`
	StartTime       time.Time     `json:"start_time"`
	EndTime         time.Time     `json:"end_time"`
	TotalPriceCents int64         `json:"total_price_cents"`
	TransactionID   *int64        `json:"transaction_id,omitempty"`
	IsRecurring     bool          `json:"is_recurring"`
	RecurrenceRule  *string       `json:"recurrence_rule,omitempty"`
	RecurrenceID    *string       `json:"recurrence_id,omitempty"`
	ParentBookingID *int64        `json:"parent_booking_id,omitempty"`
	Status          BookingStatus `json:"status"`
	CreatedOn       time.Time     `json:"created_on"`
}

// Overlaps reports whether the booking's interval intersects [start, end).
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}
