package jobs

import (
	"context"
	"time"

	"clubcourt-backend/internal/domain"
	"clubcourt-backend/internal/logger"
)

// CompleteElapsedBookings moves confirmed bookings whose end time has passed
// to COMPLETED.
func (jr *JobRunner) CompleteElapsedBookings() {
	jr.runWithRecovery("CompleteElapsedBookings", func() {
		ctx := context.Background()
		n, err := jr.store.MarkCompletedBefore(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to complete elapsed bookings", "error", err)
			return
		}
		logger.Info("Elapsed bookings completed", "count", n)
	})
}

// SendBookingReminders notifies members about bookings starting within the
// configured lead window.
func (jr *JobRunner) SendBookingReminders() {
	jr.runWithRecovery("SendBookingReminders", func() {
		ctx := context.Background()
		now := time.Now().UTC()
		lead := time.Duration(jr.config.Booking.ReminderLeadHours) * time.Hour

		upcoming, err := jr.store.ListStartingBetween(ctx, now, now.Add(lead))
		if err != nil {
			logger.Error("Failed to list upcoming bookings", "error", err)
			return
		}

		for i := range upcoming {
			b := &upcoming[i]
			member, err := jr.store.MemberRepository.GetByID(ctx, b.MemberID)
			if err != nil {
				logger.Warn("Skipping reminder, member lookup failed", "booking_id", b.ID, "error", err)
				continue
			}
			court, err := jr.store.CourtRepository.GetByID(ctx, b.CourtID)
			if err != nil {
				logger.Warn("Skipping reminder, court lookup failed", "booking_id", b.ID, "error", err)
				continue
			}

			_ = jr.store.NotificationRepository.Create(ctx, &domain.Notification{
				MemberID: b.MemberID,
				Type:     domain.NotificationBookingReminder,
				Message:  "Upcoming booking: " + court.Name + " at " + b.StartTime.Format("Mon Jan 2 15:04"),
			})
			if member.Email != nil {
				if err := jr.email.SendBookingReminder(ctx, *member.Email, member.FullName, court.Name, b.StartTime); err != nil {
					logger.Warn("Reminder email failed", "booking_id", b.ID, "error", err)
				}
			}
		}
		logger.Info("Booking reminders sent", "count", len(upcoming))
	})
}
