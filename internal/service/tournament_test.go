package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clubcourt-backend/internal/domain"
)

func newTournamentFixture() (*MockTournamentRepo, *MockMatchRepo, *MockNotificationRepo, TournamentService) {
	tournRepo := new(MockTournamentRepo)
	matchRepo := new(MockMatchRepo)
	memberRepo := new(MockMemberRepo)
	noteRepo := new(MockNotificationRepo)
	svc := NewTournamentService(tournRepo, matchRepo, memberRepo, noteRepo)
	return tournRepo, matchRepo, noteRepo, svc
}

func participants(memberIDs ...int64) []domain.TournamentParticipant {
	ps := make([]domain.TournamentParticipant, 0, len(memberIDs))
	for _, id := range memberIDs {
		ps = append(ps, domain.TournamentParticipant{TournamentID: 1, MemberID: id})
	}
	return ps
}

func TestTournamentService_CreateTournament(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		tournRepo, _, _, svc := newTournamentFixture()
		tournRepo.On("Create", ctx, mock.Anything).Return(nil)

		err := svc.CreateTournament(ctx, &domain.Tournament{
			Name:      "Spring Open",
			Format:    domain.TournamentFormatRoundRobin,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 2),
		})
		assert.NoError(t, err)
	})

	t.Run("Rejections", func(t *testing.T) {
		_, _, _, svc := newTournamentFixture()
		base := domain.Tournament{
			Name:      "Spring Open",
			Format:    domain.TournamentFormatRoundRobin,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 2),
		}

		noName := base
		noName.Name = ""
		assert.ErrorIs(t, svc.CreateTournament(ctx, &noName), domain.ErrInvalidInput)

		backwards := base
		backwards.EndDate = start.AddDate(0, 0, -1)
		assert.ErrorIs(t, svc.CreateTournament(ctx, &backwards), domain.ErrInvalidInput)

		negativeFee := base
		negativeFee.EntryFeeCents = -100
		assert.ErrorIs(t, svc.CreateTournament(ctx, &negativeFee), domain.ErrInvalidInput)

		badFormat := base
		badFormat.Format = domain.TournamentFormat("LADDER")
		assert.ErrorIs(t, svc.CreateTournament(ctx, &badFormat), domain.ErrInvalidInput)
	})
}

func TestTournamentService_UpdateTournament(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		tournRepo, _, _, svc := newTournamentFixture()
		tournRepo.On("Update", ctx, mock.Anything).Return(nil)

		err := svc.UpdateTournament(ctx, &domain.Tournament{
			ID:        1,
			Name:      "Spring Open (rescheduled)",
			Format:    domain.TournamentFormatKnockout,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 3),
		})
		assert.NoError(t, err)
	})

	t.Run("SameValidationAsCreate", func(t *testing.T) {
		_, _, _, svc := newTournamentFixture()
		err := svc.UpdateTournament(ctx, &domain.Tournament{
			ID: 1, Format: domain.TournamentFormatKnockout, StartDate: start, EndDate: start,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestTournamentService_JoinTournament(t *testing.T) {
	ctx := context.Background()

	t.Run("ChargesEntryFeeDescription", func(t *testing.T) {
		tournRepo, _, noteRepo, svc := newTournamentFixture()
		tournRepo.On("GetByID", ctx, int64(1)).Return(&domain.Tournament{ID: 1, Name: "Spring Open", EntryFeeCents: 2500, Status: domain.TournamentStatusOpen}, nil)
		tournRepo.On("Join", ctx, mock.MatchedBy(func(p *domain.TournamentParticipant) bool {
			return p.TournamentID == 1 && p.MemberID == 7
		}), "Entry fee: Spring Open").Return(nil)
		noteRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Type == domain.NotificationTournamentJoined
		})).Return(nil)

		p, err := svc.JoinTournament(ctx, 1, 7, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), p.MemberID)
		tournRepo.AssertExpectations(t)
	})

	t.Run("AlreadyJoined", func(t *testing.T) {
		tournRepo, _, _, svc := newTournamentFixture()
		tournRepo.On("GetByID", ctx, int64(1)).Return(&domain.Tournament{ID: 1, Name: "Spring Open"}, nil)
		tournRepo.On("Join", ctx, mock.Anything, mock.Anything).Return(domain.ErrConflict)

		_, err := svc.JoinTournament(ctx, 1, 7, nil)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestTournamentService_DeleteTournament(t *testing.T) {
	ctx := context.Background()

	t.Run("BlockedWhileSeatsHeld", func(t *testing.T) {
		tournRepo, _, _, svc := newTournamentFixture()
		tournRepo.On("Delete", ctx, int64(1)).Return(domain.ErrConflict)

		assert.ErrorIs(t, svc.DeleteTournament(ctx, 1), domain.ErrConflict)
	})
}

func TestTournamentService_GenerateSchedule(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	openTournament := func(format domain.TournamentFormat) *domain.Tournament {
		return &domain.Tournament{ID: 1, Name: "Spring Open", Format: format, Status: domain.TournamentStatusOpen, StartDate: start}
	}

	t.Run("RoundRobinPairsEveryone", func(t *testing.T) {
		tournRepo, _, _, svc := newTournamentFixture()
		tournRepo.On("GetByID", ctx, int64(1)).Return(openTournament(domain.TournamentFormatRoundRobin), nil)
		tournRepo.On("ListParticipants", ctx, int64(1)).Return(participants(10, 11, 12, 13), nil)
		tournRepo.On("ReplaceMatches", ctx, int64(1), mock.Anything).Return(nil)

		matches, err := svc.GenerateSchedule(ctx, 1)
		assert.NoError(t, err)
		// C(4,2) pairings.
		assert.Len(t, matches, 6)

		seen := map[[2]int64]bool{}
		for _, m := range matches {
			assert.NotNil(t, m.Team2Player1ID)
			pair := [2]int64{m.Team1Player1ID, *m.Team2Player1ID}
			assert.False(t, seen[pair], "pair drawn twice")
			seen[pair] = true
			assert.Equal(t, domain.MatchStatusScheduled, m.Status)
		}
		assert.Equal(t, "Round 1", matches[0].RoundName)
		assert.Equal(t, "Round 3", matches[5].RoundName)
	})

	t.Run("KnockoutOddFieldGetsBye", func(t *testing.T) {
		tournRepo, _, _, svc := newTournamentFixture()
		tournRepo.On("GetByID", ctx, int64(1)).Return(openTournament(domain.TournamentFormatKnockout), nil)
		tournRepo.On("ListParticipants", ctx, int64(1)).Return(participants(10, 11, 12, 13, 14), nil)
		tournRepo.On("ReplaceMatches", ctx, int64(1), mock.Anything).Return(nil)

		matches, err := svc.GenerateSchedule(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, matches, 3)

		bye := matches[len(matches)-1]
		assert.Nil(t, bye.Team2Player1ID)
		assert.Equal(t, domain.MatchStatusFinished, bye.Status)
		assert.NotNil(t, bye.WinningSide)
		assert.Equal(t, domain.WinningSideTeam1, *bye.WinningSide)
		assert.NotNil(t, bye.Details)
		assert.Equal(t, "Bye", *bye.Details)
	})

	t.Run("HybridStartsWithGroupStage", func(t *testing.T) {
		tournRepo, _, _, svc := newTournamentFixture()
		tournRepo.On("GetByID", ctx, int64(1)).Return(openTournament(domain.TournamentFormatHybrid), nil)
		tournRepo.On("ListParticipants", ctx, int64(1)).Return(participants(10, 11, 12), nil)
		tournRepo.On("ReplaceMatches", ctx, int64(1), mock.Anything).Return(nil)

		matches, err := svc.GenerateSchedule(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, matches, 3)
	})

	t.Run("TooFewParticipants", func(t *testing.T) {
		tournRepo, _, _, svc := newTournamentFixture()
		tournRepo.On("GetByID", ctx, int64(1)).Return(openTournament(domain.TournamentFormatRoundRobin), nil)
		tournRepo.On("ListParticipants", ctx, int64(1)).Return(participants(10), nil)

		_, err := svc.GenerateSchedule(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("AlreadyStarted", func(t *testing.T) {
		tournRepo, _, _, svc := newTournamentFixture()
		ongoing := openTournament(domain.TournamentFormatRoundRobin)
		ongoing.Status = domain.TournamentStatusOngoing
		tournRepo.On("GetByID", ctx, int64(1)).Return(ongoing, nil)

		_, err := svc.GenerateSchedule(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}

func TestTournamentService_UpdateScore(t *testing.T) {
	ctx := context.Background()

	scheduled := func() *domain.Match {
		opponent := int64(8)
		return &domain.Match{
			ID:             5,
			RoundName:      "Round 1",
			Team1Player1ID: 7,
			Team2Player1ID: &opponent,
			Status:         domain.MatchStatusScheduled,
		}
	}

	t.Run("FinishedComputesWinner", func(t *testing.T) {
		_, matchRepo, noteRepo, svc := newTournamentFixture()
		matchRepo.On("GetByID", ctx, int64(5)).Return(scheduled(), nil)
		matchRepo.On("Update", ctx, mock.Anything).Return(nil)
		noteRepo.On("Create", ctx, mock.Anything).Return(nil)

		m, err := svc.UpdateScore(ctx, 5, 21, 15, domain.MatchStatusFinished)
		assert.NoError(t, err)
		assert.Equal(t, domain.MatchStatusFinished, m.Status)
		assert.NotNil(t, m.WinningSide)
		assert.Equal(t, domain.WinningSideTeam1, *m.WinningSide)
		// Both players hear about the result.
		noteRepo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("DrawAllowed", func(t *testing.T) {
		_, matchRepo, noteRepo, svc := newTournamentFixture()
		matchRepo.On("GetByID", ctx, int64(5)).Return(scheduled(), nil)
		matchRepo.On("Update", ctx, mock.Anything).Return(nil)
		noteRepo.On("Create", ctx, mock.Anything).Return(nil)

		m, err := svc.UpdateScore(ctx, 5, 18, 18, domain.MatchStatusFinished)
		assert.NoError(t, err)
		assert.Equal(t, domain.WinningSideDraw, *m.WinningSide)
	})

	t.Run("InProgressKeepsNoWinner", func(t *testing.T) {
		_, matchRepo, noteRepo, svc := newTournamentFixture()
		matchRepo.On("GetByID", ctx, int64(5)).Return(scheduled(), nil)
		matchRepo.On("Update", ctx, mock.Anything).Return(nil)
		noteRepo.On("Create", ctx, mock.Anything).Return(nil)

		m, err := svc.UpdateScore(ctx, 5, 11, 7, domain.MatchStatusInProgress)
		assert.NoError(t, err)
		assert.Nil(t, m.WinningSide)
	})

	t.Run("FinishedMatchLocked", func(t *testing.T) {
		_, matchRepo, _, svc := newTournamentFixture()
		done := scheduled()
		done.Status = domain.MatchStatusFinished
		matchRepo.On("GetByID", ctx, int64(5)).Return(done, nil)

		_, err := svc.UpdateScore(ctx, 5, 21, 15, domain.MatchStatusFinished)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}

func TestTournamentService_RecordMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsStatusAndDate", func(t *testing.T) {
		_, matchRepo, _, svc := newTournamentFixture()
		matchRepo.On("Create", ctx, mock.MatchedBy(func(m *domain.Match) bool {
			return m.Status == domain.MatchStatusScheduled && !m.Date.IsZero()
		})).Return(nil)

		err := svc.RecordMatch(ctx, &domain.Match{Team1Player1ID: 7})
		assert.NoError(t, err)
		matchRepo.AssertExpectations(t)
	})

	t.Run("NeedsPlayer", func(t *testing.T) {
		_, _, _, svc := newTournamentFixture()
		err := svc.RecordMatch(ctx, &domain.Match{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
