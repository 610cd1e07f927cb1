package domain

import (
	"fmt"
	"strings"
	"time"
)

type TournamentFormat string

const (
	TournamentFormatRoundRobin TournamentFormat = "ROUND_ROBIN"
	TournamentFormatKnockout   TournamentFormat = "KNOCKOUT"
	TournamentFormatHybrid     TournamentFormat = "HYBRID"
)

// ParseTournamentFormat accepts the format names used by callers
// ("RoundRobin", "Knockout", "Hybrid") in any case, with or without
// an underscore.
func ParseTournamentFormat(s string) (TournamentFormat, error) {
	switch strings.ReplaceAll(strings.ToUpper(s), "_", "") {
	case "ROUNDROBIN":
		return TournamentFormatRoundRobin, nil
	case "KNOCKOUT":
		return TournamentFormatKnockout, nil
	case "HYBRID":
		return TournamentFormatHybrid, nil
	}
	return "", fmt.Errorf("%w: unknown tournament format %q", ErrInvalidInput, s)
}

type TournamentStatus string

const (
	TournamentStatusOpen          TournamentStatus = "OPEN"
	TournamentStatusRegistering   TournamentStatus = "REGISTERING"
	TournamentStatusDrawCompleted TournamentStatus = "DRAW_COMPLETED"
	TournamentStatusOngoing       TournamentStatus = "ONGOING"
	TournamentStatusFinished      TournamentStatus = "FINISHED"
)

func ParseTournamentStatus(s string) (TournamentStatus, error) {
	switch t := TournamentStatus(strings.ToUpper(s)); t {
	case TournamentStatusOpen, TournamentStatusRegistering,
		TournamentStatusDrawCompleted, TournamentStatusOngoing,
		TournamentStatusFinished:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown tournament status %q", ErrInvalidInput, s)
}

type Tournament struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	StartDate      time.Time        `json:"start_date"`
	EndDate        time.Time        `json:"end_date"`
	Format         TournamentFormat `json:"format"`
	EntryFeeCents  int64            `json:"entry_fee_cents"`
	PrizePoolCents int64            `json:"prize_pool_cents"`
	Status         TournamentStatus `json:"status"`
	Settings       *string          `json:"settings,omitempty"`
	CreatedOn      time.Time        `json:"created_on"`
}

// TournamentParticipant is one seat. A member holds at most one seat per
// tournament; the pair (TournamentID, MemberID) is unique.
type TournamentParticipant struct {
	ID               int64     `json:"id"`
	TournamentID     int64     `json:"tournament_id"`
	MemberID         int64     `json:"member_id"`
	TeamName         *string   `json:"team_name,omitempty"`
	PaymentCompleted bool      `json:"payment_completed"`
	RegisteredOn     time.Time `json:"registered_on"`
}
