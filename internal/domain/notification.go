package domain

import "time"

// Notification event types published by the core. Fire-and-forget: a failed
// notification never fails the operation that produced it.
const (
	NotificationBookingCreated    = "BookingCreated"
	NotificationBookingCancelled  = "BookingCancelled"
	NotificationBookingReminder   = "BookingReminder"
	NotificationTournamentJoined  = "TournamentJoined"
	NotificationDepositApproved   = "DepositApproved"
	NotificationDepositRejected   = "DepositRejected"
	NotificationMatchScoreUpdated = "MatchScoreUpdated"
)

type Notification struct {
	ID        int64     `json:"id"`
	MemberID  int64     `json:"member_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	LinkURL   *string   `json:"link_url,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedOn time.Time `json:"created_on"`
}
