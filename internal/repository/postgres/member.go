package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"clubcourt-backend/internal/domain"
	"clubcourt-backend/internal/repository"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `id, user_ref, full_name, email, join_date, rank_level, is_active, wallet_balance_cents, total_spent_cents, tier, avatar_url, created_on, updated_on`

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	now := time.Now().UTC()
	m.CreatedOn = now
	m.UpdatedOn = now
	if m.JoinDate.IsZero() {
		m.JoinDate = now
	}
	if m.Tier == "" {
		m.Tier = domain.MemberTierStandard
	}
	query := `INSERT INTO members (user_ref, full_name, email, join_date, rank_level, is_active, wallet_balance_cents, total_spent_cents, tier, avatar_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.UserRef, m.FullName, m.Email, m.JoinDate, m.RankLevel, m.IsActive, m.WalletBalanceCents, m.TotalSpentCents, m.Tier, m.AvatarURL, m.CreatedOn, m.UpdatedOn).Scan(&m.ID)
}

func scanMember(row *sql.Row) (*domain.Member, error) {
	m := &domain.Member{}
	err := row.Scan(&m.ID, &m.UserRef, &m.FullName, &m.Email, &m.JoinDate, &m.RankLevel, &m.IsActive, &m.WalletBalanceCents, &m.TotalSpentCents, &m.Tier, &m.AvatarURL, &m.CreatedOn, &m.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *memberRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	return scanMember(r.db.QueryRowContext(ctx, query, id))
}

func (r *memberRepository) GetByUserRef(ctx context.Context, userRef string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE user_ref = $1`
	return scanMember(r.db.QueryRowContext(ctx, query, userRef))
}

func (r *memberRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Member, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY full_name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.ID, &m.UserRef, &m.FullName, &m.Email, &m.JoinDate, &m.RankLevel, &m.IsActive, &m.WalletBalanceCents, &m.TotalSpentCents, &m.Tier, &m.AvatarURL, &m.CreatedOn, &m.UpdatedOn); err != nil {
			return nil, 0, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM members`).Scan(&count); err != nil {
		return nil, 0, err
	}
	return members, count, nil
}

func (r *memberRepository) Update(ctx context.Context, m *domain.Member) error {
	m.UpdatedOn = time.Now().UTC()
	query := `UPDATE members SET full_name = $1, email = $2, rank_level = $3, is_active = $4, tier = $5, avatar_url = $6, updated_on = $7 WHERE id = $8`
	res, err := r.db.ExecContext(ctx, query, m.FullName, m.Email, m.RankLevel, m.IsActive, m.Tier, m.AvatarURL, m.UpdatedOn, m.ID)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *memberRepository) SetTier(ctx context.Context, id int64, tier domain.MemberTier) error {
	res, err := r.db.ExecContext(ctx, `UPDATE members SET tier = $1, updated_on = $2 WHERE id = $3`, tier, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *memberRepository) HasActivity(ctx context.Context, id int64) (bool, error) {
	var active bool
	query := `SELECT EXISTS (SELECT 1 FROM wallet_transactions WHERE member_id = $1)
	              OR EXISTS (SELECT 1 FROM bookings WHERE member_id = $1)`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&active)
	return active, err
}

func (r *memberRepository) Deactivate(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE members SET is_active = false, updated_on = $1 WHERE id = $2`, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *memberRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

// requireRowChanged maps a zero-row UPDATE or DELETE to ErrNotFound.
func requireRowChanged(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
