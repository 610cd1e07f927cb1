package domain

import (
	"fmt"
	"strings"
	"time"
)

type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "SCHEDULED"
	MatchStatusInProgress MatchStatus = "IN_PROGRESS"
	MatchStatusFinished   MatchStatus = "FINISHED"
)

func ParseMatchStatus(s string) (MatchStatus, error) {
	switch t := MatchStatus(strings.ReplaceAll(strings.ToUpper(s), "INPROGRESS", "IN_PROGRESS")); t {
	case MatchStatusScheduled, MatchStatusInProgress, MatchStatusFinished:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown match status %q", ErrInvalidInput, s)
}

type WinningSide string

const (
	WinningSideTeam1 WinningSide = "TEAM1"
	WinningSideTeam2 WinningSide = "TEAM2"
	WinningSideDraw  WinningSide = "DRAW"
)

func ParseWinningSide(s string) (WinningSide, error) {
	switch t := WinningSide(strings.ToUpper(s)); t {
	case WinningSideTeam1, WinningSideTeam2, WinningSideDraw:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown winning side %q", ErrInvalidInput, s)
}

// Match is a scheduled or recorded game. TournamentID is nil for ad-hoc
// matches. Up to two players per side; Team2Player1ID is nil for a bye.
type Match struct {
	ID             int64        `json:"id"`
	TournamentID   *int64       `json:"tournament_id,omitempty"`
	RoundName      string       `json:"round_name"`
	Date           time.Time    `json:"date"`
	Team1Player1ID int64        `json:"team1_player1_id"`
	Team1Player2ID *int64       `json:"team1_player2_id,omitempty"`
	Team2Player1ID *int64       `json:"team2_player1_id,omitempty"`
	Team2Player2ID *int64       `json:"team2_player2_id,omitempty"`
	Score1         int32        `json:"score1"`
	Score2         int32        `json:"score2"`
	Details        *string      `json:"details,omitempty"`
	WinningSide    *WinningSide `json:"winning_side,omitempty"`
	IsRanked       bool         `json:"is_ranked"`
	Status         MatchStatus  `json:"status"`
}
