package utils

import (
	"fmt"
	"time"

	"clubcourt-backend/internal/domain"
)

// BookingCost prices a court reservation: duration in hours times the court's
// hourly rate. Computed on whole minutes to stay exact in cents; a 90 minute
// slot at 1000 cents/hour costs 1500, never 1499.99. When the rate does not
// divide evenly into the duration the result is rounded half up, so 50
// minutes at 99 cents/hour is 83, not a truncated 82.
func BookingCost(pricePerHourCents int64, start, end time.Time) (int64, error) {
	if !end.After(start) {
		return 0, fmt.Errorf("%w: end time must be after start time", domain.ErrInvalidInput)
	}
	minutes := int64(end.Sub(start) / time.Minute)
	if time.Duration(minutes)*time.Minute != end.Sub(start) {
		return 0, fmt.Errorf("%w: booking duration must be a whole number of minutes", domain.ErrInvalidInput)
	}
	return (pricePerHourCents*minutes + 30) / 60, nil
}
