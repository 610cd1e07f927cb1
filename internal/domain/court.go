package domain

import "time"

// Court is a bookable resource. IsActive gates new bookings only; existing
// bookings on a deactivated court stay valid.
type Court struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	IsActive          bool      `json:"is_active"`
	Description       *string   `json:"description,omitempty"`
	Location          *string   `json:"location,omitempty"`
	PricePerHourCents int64     `json:"price_per_hour_cents"`
	CreatedOn         time.Time `json:"created_on"`
}
