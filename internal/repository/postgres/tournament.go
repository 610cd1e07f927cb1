package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"clubcourt-backend/internal/domain"
	"clubcourt-backend/internal/repository"

	"github.com/lib/pq"
)

type tournamentRepository struct {
	db *sql.DB
}

func NewTournamentRepository(db *sql.DB) repository.TournamentRepository {
	return &tournamentRepository{db: db}
}

const tournamentColumns = `id, name, start_date, end_date, format, entry_fee_cents, prize_pool_cents, status, settings, created_on`

func (r *tournamentRepository) Create(ctx context.Context, t *domain.Tournament) error {
	t.CreatedOn = time.Now().UTC()
	if t.Status == "" {
		t.Status = domain.TournamentStatusOpen
	}
	query := `INSERT INTO tournaments (name, start_date, end_date, format, entry_fee_cents, prize_pool_cents, status, settings, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query, t.Name, t.StartDate, t.EndDate, t.Format, t.EntryFeeCents, t.PrizePoolCents, t.Status, t.Settings, t.CreatedOn).Scan(&t.ID)
}

func (r *tournamentRepository) GetByID(ctx context.Context, id int64) (*domain.Tournament, error) {
	t := &domain.Tournament{}
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.StartDate, &t.EndDate, &t.Format, &t.EntryFeeCents, &t.PrizePoolCents, &t.Status, &t.Settings, &t.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tournamentRepository) Update(ctx context.Context, t *domain.Tournament) error {
	query := `UPDATE tournaments SET name = $1, start_date = $2, end_date = $3, format = $4, entry_fee_cents = $5, prize_pool_cents = $6, settings = $7 WHERE id = $8`
	res, err := r.db.ExecContext(ctx, query, t.Name, t.StartDate, t.EndDate, t.Format, t.EntryFeeCents, t.PrizePoolCents, t.Settings, t.ID)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *tournamentRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Tournament, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE ($1 = '' OR status = $1) ORDER BY start_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, status, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var tournaments []domain.Tournament
	for rows.Next() {
		var t domain.Tournament
		if err := rows.Scan(&t.ID, &t.Name, &t.StartDate, &t.EndDate, &t.Format, &t.EntryFeeCents, &t.PrizePoolCents, &t.Status, &t.Settings, &t.CreatedOn); err != nil {
			return nil, 0, err
		}
		tournaments = append(tournaments, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM tournaments WHERE ($1 = '' OR status = $1)`, status).Scan(&count); err != nil {
		return nil, 0, err
	}
	return tournaments, count, nil
}

func (r *tournamentRepository) UpdateStatus(ctx context.Context, id int64, status domain.TournamentStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tournaments SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *tournamentRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM tournaments WHERE id = $1 FOR UPDATE)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	var seats int64
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM tournament_participants WHERE tournament_id = $1`, id).Scan(&seats); err != nil {
		return err
	}
	if seats > 0 {
		return fmt.Errorf("%w: tournament %d still has %d registered participants", domain.ErrConflict, id, seats)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM matches WHERE tournament_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tournaments WHERE id = $1`, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *tournamentRepository) Join(ctx context.Context, p *domain.TournamentParticipant, feeDesc string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var fee int64
	var status domain.TournamentStatus
	err = tx.QueryRowContext(ctx, `SELECT entry_fee_cents, status FROM tournaments WHERE id = $1 FOR UPDATE`, p.TournamentID).Scan(&fee, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if status != domain.TournamentStatusOpen {
		return fmt.Errorf("%w: tournament %d is not open for registration", domain.ErrInvalidState, p.TournamentID)
	}

	var seated bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM tournament_participants WHERE tournament_id = $1 AND member_id = $2)`, p.TournamentID, p.MemberID).Scan(&seated)
	if err != nil {
		return err
	}
	if seated {
		return fmt.Errorf("%w: member %d already joined tournament %d", domain.ErrConflict, p.MemberID, p.TournamentID)
	}

	now := time.Now().UTC()
	if fee > 0 {
		var balance int64
		err = tx.QueryRowContext(ctx, `SELECT wallet_balance_cents FROM members WHERE id = $1 FOR UPDATE`, p.MemberID).Scan(&balance)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		if balance < fee {
			return domain.ErrInsufficientFunds
		}
		payment := `INSERT INTO wallet_transactions (member_id, amount_cents, type, status, related_id, description, created_on)
		            VALUES ($1, $2, $3, $4, $5, $6, $7)`
		_, err = tx.ExecContext(ctx, payment, p.MemberID, -fee, domain.TransactionTypePayment, domain.TransactionStatusCompleted, strconv.FormatInt(p.TournamentID, 10), feeDesc, now)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `UPDATE members SET wallet_balance_cents = wallet_balance_cents - $1, total_spent_cents = total_spent_cents + $1, updated_on = $2 WHERE id = $3`, fee, now, p.MemberID)
		if err != nil {
			return err
		}
	}

	p.PaymentCompleted = true
	p.RegisteredOn = now
	insert := `INSERT INTO tournament_participants (tournament_id, member_id, team_name, payment_completed, registered_on)
	           VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err = tx.QueryRowContext(ctx, insert, p.TournamentID, p.MemberID, p.TeamName, p.PaymentCompleted, p.RegisteredOn).Scan(&p.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("%w: member %d already joined tournament %d", domain.ErrConflict, p.MemberID, p.TournamentID)
		}
		return err
	}
	return tx.Commit()
}

func (r *tournamentRepository) Leave(ctx context.Context, tournamentID, memberID int64, refundDesc string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var fee int64
	var status domain.TournamentStatus
	err = tx.QueryRowContext(ctx, `SELECT entry_fee_cents, status FROM tournaments WHERE id = $1 FOR UPDATE`, tournamentID).Scan(&fee, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if status != domain.TournamentStatusOpen {
		return fmt.Errorf("%w: cannot leave tournament %d after registration closed", domain.ErrInvalidState, tournamentID)
	}

	var participantID int64
	var paid bool
	err = tx.QueryRowContext(ctx, `SELECT id, payment_completed FROM tournament_participants WHERE tournament_id = $1 AND member_id = $2 FOR UPDATE`, tournamentID, memberID).Scan(&participantID, &paid)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}

	if paid && fee > 0 {
		now := time.Now().UTC()
		refund := `INSERT INTO wallet_transactions (member_id, amount_cents, type, status, related_id, description, created_on)
		           VALUES ($1, $2, $3, $4, $5, $6, $7)`
		_, err = tx.ExecContext(ctx, refund, memberID, fee, domain.TransactionTypeRefund, domain.TransactionStatusCompleted, strconv.FormatInt(tournamentID, 10), refundDesc, now)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `UPDATE members SET wallet_balance_cents = wallet_balance_cents + $1, updated_on = $2 WHERE id = $3`, fee, now, memberID)
		if err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM tournament_participants WHERE id = $1`, participantID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *tournamentRepository) ListParticipants(ctx context.Context, tournamentID int64) ([]domain.TournamentParticipant, error) {
	query := `SELECT id, tournament_id, member_id, team_name, payment_completed, registered_on
	          FROM tournament_participants WHERE tournament_id = $1 ORDER BY registered_on, id`
	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []domain.TournamentParticipant
	for rows.Next() {
		var p domain.TournamentParticipant
		if err := rows.Scan(&p.ID, &p.TournamentID, &p.MemberID, &p.TeamName, &p.PaymentCompleted, &p.RegisteredOn); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *tournamentRepository) ReplaceMatches(ctx context.Context, tournamentID int64, matches []domain.Match) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status domain.TournamentStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM tournaments WHERE id = $1 FOR UPDATE`, tournamentID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM matches WHERE tournament_id = $1`, tournamentID); err != nil {
		return err
	}

	insert := `INSERT INTO matches (tournament_id, round_name, date, team1_player1_id, team1_player2_id, team2_player1_id, team2_player2_id, score1, score2, details, winning_side, is_ranked, status)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	for i := range matches {
		m := &matches[i]
		err = tx.QueryRowContext(ctx, insert, tournamentID, m.RoundName, m.Date, m.Team1Player1ID, m.Team1Player2ID, m.Team2Player1ID, m.Team2Player2ID, m.Score1, m.Score2, m.Details, m.WinningSide, m.IsRanked, m.Status).Scan(&m.ID)
		if err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `UPDATE tournaments SET status = $1 WHERE id = $2`, domain.TournamentStatusDrawCompleted, tournamentID); err != nil {
		return err
	}
	return tx.Commit()
}
