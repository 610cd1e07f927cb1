package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"clubcourt-backend/internal/domain"
	"clubcourt-backend/internal/repository"
)

type matchRepository struct {
	db *sql.DB
}

func NewMatchRepository(db *sql.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

const matchColumns = `id, tournament_id, round_name, date, team1_player1_id, team1_player2_id, team2_player1_id, team2_player2_id, score1, score2, details, winning_side, is_ranked, status`

func scanMatchRow(row rowScanner, m *domain.Match) error {
	return row.Scan(&m.ID, &m.TournamentID, &m.RoundName, &m.Date, &m.Team1Player1ID, &m.Team1Player2ID, &m.Team2Player1ID, &m.Team2Player2ID, &m.Score1, &m.Score2, &m.Details, &m.WinningSide, &m.IsRanked, &m.Status)
}

func (r *matchRepository) Create(ctx context.Context, m *domain.Match) error {
	if m.Date.IsZero() {
		m.Date = time.Now().UTC()
	}
	query := `INSERT INTO matches (tournament_id, round_name, date, team1_player1_id, team1_player2_id, team2_player1_id, team2_player2_id, score1, score2, details, winning_side, is_ranked, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.TournamentID, m.RoundName, m.Date, m.Team1Player1ID, m.Team1Player2ID, m.Team2Player1ID, m.Team2Player2ID, m.Score1, m.Score2, m.Details, m.WinningSide, m.IsRanked, m.Status).Scan(&m.ID)
}

func (r *matchRepository) GetByID(ctx context.Context, id int64) (*domain.Match, error) {
	m := &domain.Match{}
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	err := scanMatchRow(r.db.QueryRowContext(ctx, query, id), m)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *matchRepository) Update(ctx context.Context, m *domain.Match) error {
	query := `UPDATE matches SET round_name = $1, date = $2, score1 = $3, score2 = $4, details = $5, winning_side = $6, is_ranked = $7, status = $8 WHERE id = $9`
	res, err := r.db.ExecContext(ctx, query, m.RoundName, m.Date, m.Score1, m.Score2, m.Details, m.WinningSide, m.IsRanked, m.Status, m.ID)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *matchRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE tournament_id = $1 ORDER BY date, id`
	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMatches(rows)
}

func (r *matchRepository) ListByMember(ctx context.Context, memberID int64, page, pageSize int32) ([]domain.Match, int32, error) {
	offset := (page - 1) * pageSize
	where := `team1_player1_id = $1 OR team1_player2_id = $1 OR team2_player1_id = $1 OR team2_player2_id = $1`
	query := `SELECT ` + matchColumns + ` FROM matches WHERE ` + where + ` ORDER BY date DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, memberID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	matches, err := collectMatches(rows)
	if err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM matches WHERE `+where, memberID).Scan(&count); err != nil {
		return nil, 0, err
	}
	return matches, count, nil
}

func collectMatches(rows *sql.Rows) ([]domain.Match, error) {
	var matches []domain.Match
	for rows.Next() {
		var m domain.Match
		if err := scanMatchRow(rows, &m); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
