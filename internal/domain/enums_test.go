package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad time %q: %v", s, err)
	}
	return ts
}

func TestParseMemberTier(t *testing.T) {
	tier, err := ParseMemberTier("gold")
	assert.NoError(t, err)
	assert.Equal(t, MemberTierGold, tier)

	_, err = ParseMemberTier("platinum")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseTournamentFormat(t *testing.T) {
	for input, want := range map[string]TournamentFormat{
		"RoundRobin":  TournamentFormatRoundRobin,
		"ROUND_ROBIN": TournamentFormatRoundRobin,
		"knockout":    TournamentFormatKnockout,
		"Hybrid":      TournamentFormatHybrid,
	} {
		got, err := ParseTournamentFormat(input)
		assert.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseTournamentFormat("double-elimination")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseMatchStatus(t *testing.T) {
	got, err := ParseMatchStatus("InProgress")
	assert.NoError(t, err)
	assert.Equal(t, MatchStatusInProgress, got)

	got, err = ParseMatchStatus("finished")
	assert.NoError(t, err)
	assert.Equal(t, MatchStatusFinished, got)

	_, err = ParseMatchStatus("paused")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseTransactionType(t *testing.T) {
	got, err := ParseTransactionType("refund")
	assert.NoError(t, err)
	assert.Equal(t, TransactionTypeRefund, got)

	_, err = ParseTransactionType("transfer")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBookingOverlaps(t *testing.T) {
	base := Booking{
		StartTime: mustTime(t, "2026-03-10T09:00:00Z"),
		EndTime:   mustTime(t, "2026-03-10T11:00:00Z"),
	}

	assert.True(t, base.Overlaps(mustTime(t, "2026-03-10T10:00:00Z"), mustTime(t, "2026-03-10T12:00:00Z")))
	assert.True(t, base.Overlaps(mustTime(t, "2026-03-10T08:00:00Z"), mustTime(t, "2026-03-10T09:30:00Z")))
	// Touching intervals do not overlap.
	assert.False(t, base.Overlaps(mustTime(t, "2026-03-10T11:00:00Z"), mustTime(t, "2026-03-10T12:00:00Z")))
	assert.False(t, base.Overlaps(mustTime(t, "2026-03-10T07:00:00Z"), mustTime(t, "2026-03-10T09:00:00Z")))
}
