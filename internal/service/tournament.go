package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"clubcourt-backend/internal/domain"
	"clubcourt-backend/internal/repository"
)

type tournamentService struct {
	tournRepo  repository.TournamentRepository
	matchRepo  repository.MatchRepository
	memberRepo repository.MemberRepository
	noteRepo   repository.NotificationRepository
}

func NewTournamentService(
	tournRepo repository.TournamentRepository,
	matchRepo repository.MatchRepository,
	memberRepo repository.MemberRepository,
	noteRepo repository.NotificationRepository,
) TournamentService {
	return &tournamentService{
		tournRepo:  tournRepo,
		matchRepo:  matchRepo,
		memberRepo: memberRepo,
		noteRepo:   noteRepo,
	}
}

func validateTournament(t *domain.Tournament) error {
	if t.Name == "" {
		return fmt.Errorf("%w: tournament name is required", domain.ErrInvalidInput)
	}
	if t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", domain.ErrInvalidInput)
	}
	if t.EntryFeeCents < 0 {
		return fmt.Errorf("%w: entry fee cannot be negative", domain.ErrInvalidInput)
	}
	switch t.Format {
	case domain.TournamentFormatRoundRobin, domain.TournamentFormatKnockout, domain.TournamentFormatHybrid:
	default:
		return fmt.Errorf("%w: unknown tournament format %q", domain.ErrInvalidInput, t.Format)
	}
	return nil
}

func (s *tournamentService) CreateTournament(ctx context.Context, t *domain.Tournament) error {
	if err := validateTournament(t); err != nil {
		return err
	}
	return s.tournRepo.Create(ctx, t)
}

func (s *tournamentService) UpdateTournament(ctx context.Context, t *domain.Tournament) error {
	if err := validateTournament(t); err != nil {
		return err
	}
	return s.tournRepo.Update(ctx, t)
}

func (s *tournamentService) GetTournament(ctx context.Context, id int64) (*domain.Tournament, []domain.TournamentParticipant, error) {
	t, err := s.tournRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	participants, err := s.tournRepo.ListParticipants(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return t, participants, nil
}

func (s *tournamentService) ListTournaments(ctx context.Context, status string, page, pageSize int32) ([]domain.Tournament, int32, error) {
	if status != "" {
		parsed, err := domain.ParseTournamentStatus(status)
		if err != nil {
			return nil, 0, err
		}
		status = string(parsed)
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.tournRepo.List(ctx, status, page, pageSize)
}

func (s *tournamentService) JoinTournament(ctx context.Context, tournamentID, memberID int64, teamName *string) (*domain.TournamentParticipant, error) {
	t, err := s.tournRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	p := &domain.TournamentParticipant{
		TournamentID: tournamentID,
		MemberID:     memberID,
		TeamName:     teamName,
	}
	if err := s.tournRepo.Join(ctx, p, fmt.Sprintf("Entry fee: %s", t.Name)); err != nil {
		return nil, err
	}

	_ = s.noteRepo.Create(ctx, &domain.Notification{
		MemberID: memberID,
		Type:     domain.NotificationTournamentJoined,
		Message:  fmt.Sprintf("You joined %s", t.Name),
	})
	return p, nil
}

func (s *tournamentService) LeaveTournament(ctx context.Context, tournamentID, memberID int64) error {
	t, err := s.tournRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return err
	}
	return s.tournRepo.Leave(ctx, tournamentID, memberID, fmt.Sprintf("Entry fee refund: %s", t.Name))
}

func (s *tournamentService) DeleteTournament(ctx context.Context, id int64) error {
	return s.tournRepo.Delete(ctx, id)
}

func (s *tournamentService) GenerateSchedule(ctx context.Context, tournamentID int64) ([]domain.Match, error) {
	t, err := s.tournRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	switch t.Status {
	case domain.TournamentStatusOngoing, domain.TournamentStatusFinished:
		return nil, fmt.Errorf("%w: tournament %d already started", domain.ErrInvalidState, tournamentID)
	}

	participants, err := s.tournRepo.ListParticipants(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if len(participants) < 2 {
		return nil, fmt.Errorf("%w: tournament %d needs at least 2 participants", domain.ErrInvalidState, tournamentID)
	}

	var matches []domain.Match
	switch t.Format {
	case domain.TournamentFormatKnockout:
		matches = buildKnockout(t, participants)
	default:
		// Hybrid runs a round robin group stage first, so its initial
		// draw matches the round robin one.
		matches = buildRoundRobin(t, participants)
	}

	if err := s.tournRepo.ReplaceMatches(ctx, tournamentID, matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// buildRoundRobin pairs every participant against every other, C(n,2)
// matches in total.
func buildRoundRobin(t *domain.Tournament, ps []domain.TournamentParticipant) []domain.Match {
	var matches []domain.Match
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			opponent := ps[j].MemberID
			matches = append(matches, domain.Match{
				TournamentID:   &t.ID,
				RoundName:      fmt.Sprintf("Round %d", i+1),
				Date:           t.StartDate,
				Team1Player1ID: ps[i].MemberID,
				Team2Player1ID: &opponent,
				IsRanked:       true,
				Status:         domain.MatchStatusScheduled,
			})
		}
	}
	return matches
}

// buildKnockout draws a shuffled first round. With an odd field the last
// seed gets a bye recorded as an already-finished match.
func buildKnockout(t *domain.Tournament, ps []domain.TournamentParticipant) []domain.Match {
	shuffled := make([]domain.TournamentParticipant, len(ps))
	copy(shuffled, ps)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	var matches []domain.Match
	for i := 0; i+1 < len(shuffled); i += 2 {
		opponent := shuffled[i+1].MemberID
		matches = append(matches, domain.Match{
			TournamentID:   &t.ID,
			RoundName:      "Round 1",
			Date:           t.StartDate,
			Team1Player1ID: shuffled[i].MemberID,
			Team2Player1ID: &opponent,
			IsRanked:       true,
			Status:         domain.MatchStatusScheduled,
		})
	}
	if len(shuffled)%2 == 1 {
		bye := "Bye"
		winner := domain.WinningSideTeam1
		matches = append(matches, domain.Match{
			TournamentID:   &t.ID,
			RoundName:      "Round 1",
			Date:           t.StartDate,
			Team1Player1ID: shuffled[len(shuffled)-1].MemberID,
			Details:        &bye,
			WinningSide:    &winner,
			IsRanked:       true,
			Status:         domain.MatchStatusFinished,
		})
	}
	return matches
}

func (s *tournamentService) ListMatches(ctx context.Context, tournamentID int64) ([]domain.Match, error) {
	if _, err := s.tournRepo.GetByID(ctx, tournamentID); err != nil {
		return nil, err
	}
	return s.matchRepo.ListByTournament(ctx, tournamentID)
}

func (s *tournamentService) RecordMatch(ctx context.Context, m *domain.Match) error {
	if m.Team1Player1ID == 0 {
		return fmt.Errorf("%w: match needs at least one player per side", domain.ErrInvalidInput)
	}
	if m.TournamentID != nil {
		if _, err := s.tournRepo.GetByID(ctx, *m.TournamentID); err != nil {
			return err
		}
	}
	if m.Status == "" {
		m.Status = domain.MatchStatusScheduled
	}
	if m.Date.IsZero() {
		m.Date = time.Now().UTC()
	}
	return s.matchRepo.Create(ctx, m)
}

func (s *tournamentService) UpdateScore(ctx context.Context, matchID int64, score1, score2 int32, status domain.MatchStatus) (*domain.Match, error) {
	m, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m.Status == domain.MatchStatusFinished {
		return nil, fmt.Errorf("%w: match %d already finished", domain.ErrInvalidState, matchID)
	}

	m.Score1 = score1
	m.Score2 = score2
	m.Status = status
	if status == domain.MatchStatusFinished {
		winner := domain.WinningSideDraw
		switch {
		case score1 > score2:
			winner = domain.WinningSideTeam1
		case score2 > score1:
			winner = domain.WinningSideTeam2
		}
		m.WinningSide = &winner
	}
	if err := s.matchRepo.Update(ctx, m); err != nil {
		return nil, err
	}

	for _, playerID := range matchPlayers(m) {
		_ = s.noteRepo.Create(ctx, &domain.Notification{
			MemberID: playerID,
			Type:     domain.NotificationMatchScoreUpdated,
			Message:  fmt.Sprintf("Score updated: %d - %d (%s)", score1, score2, m.RoundName),
		})
	}
	return m, nil
}

func (s *tournamentService) ListMemberMatches(ctx context.Context, memberID int64, page, pageSize int32) ([]domain.Match, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.matchRepo.ListByMember(ctx, memberID, page, pageSize)
}

func matchPlayers(m *domain.Match) []int64 {
	players := []int64{m.Team1Player1ID}
	for _, p := range []*int64{m.Team1Player2ID, m.Team2Player1ID, m.Team2Player2ID} {
		if p != nil {
			players = append(players, *p)
		}
	}
	return players
}
