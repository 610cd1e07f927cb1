package domain

import (
	"errors"
	"fmt"
)

// Shared error taxonomy. Services return these sentinels (possibly wrapped);
// callers match with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidState      = errors.New("invalid state")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidInput      = errors.New("invalid input")
)

// Booking rejection reasons.
var (
	ErrSlotTaken     = fmt.Errorf("%w: slot taken", ErrConflict)
	ErrCourtInactive = fmt.Errorf("%w: court inactive", ErrInvalidState)
)
