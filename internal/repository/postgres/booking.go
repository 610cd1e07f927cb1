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
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, court_id, member_id, start_time, end_time, total_price_cents, transaction_id, is_recurring, recurrence_rule, recurrence_id, parent_booking_id, status, created_on`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingRow(row rowScanner, b *domain.Booking) error {
	return row.Scan(&b.ID, &b.CourtID, &b.MemberID, &b.StartTime, &b.EndTime, &b.TotalPriceCents, &b.TransactionID, &b.IsRecurring, &b.RecurrenceRule, &b.RecurrenceID, &b.ParentBookingID, &b.Status, &b.CreatedOn)
}

func (r *bookingRepository) CreateConfirmed(ctx context.Context, b *domain.Booking, paymentDesc string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Court row lock serializes slot checks for the same court.
	var active bool
	err = tx.QueryRowContext(ctx, `SELECT is_active FROM courts WHERE id = $1 FOR UPDATE`, b.CourtID).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if !active {
		return domain.ErrCourtInactive
	}

	var clash bool
	overlap := `SELECT EXISTS (SELECT 1 FROM bookings WHERE court_id = $1 AND status <> 'CANCELLED' AND start_time < $3 AND end_time > $2)`
	if err := tx.QueryRowContext(ctx, overlap, b.CourtID, b.StartTime, b.EndTime).Scan(&clash); err != nil {
		return err
	}
	if clash {
		return domain.ErrSlotTaken
	}

	var balance int64
	err = tx.QueryRowContext(ctx, `SELECT wallet_balance_cents FROM members WHERE id = $1 FOR UPDATE`, b.MemberID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if balance < b.TotalPriceCents {
		return domain.ErrInsufficientFunds
	}

	now := time.Now().UTC()
	var paymentID int64
	payment := `INSERT INTO wallet_transactions (member_id, amount_cents, type, status, description, created_on)
	            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err = tx.QueryRowContext(ctx, payment, b.MemberID, -b.TotalPriceCents, domain.TransactionTypePayment, domain.TransactionStatusCompleted, paymentDesc, now).Scan(&paymentID)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `UPDATE members SET wallet_balance_cents = wallet_balance_cents - $1, total_spent_cents = total_spent_cents + $1, updated_on = $2 WHERE id = $3`,
		b.TotalPriceCents, now, b.MemberID)
	if err != nil {
		return err
	}

	b.Status = domain.BookingStatusConfirmed
	b.TransactionID = &paymentID
	b.CreatedOn = now
	insert := `INSERT INTO bookings (court_id, member_id, start_time, end_time, total_price_cents, transaction_id, is_recurring, recurrence_rule, recurrence_id, parent_booking_id, status, created_on)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	err = tx.QueryRowContext(ctx, insert, b.CourtID, b.MemberID, b.StartTime, b.EndTime, b.TotalPriceCents, b.TransactionID, b.IsRecurring, b.RecurrenceRule, b.RecurrenceID, b.ParentBookingID, b.Status, b.CreatedOn).Scan(&b.ID)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE wallet_transactions SET related_id = $1 WHERE id = $2`, strconv.FormatInt(b.ID, 10), paymentID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := scanBookingRow(r.db.QueryRowContext(ctx, query, id), b)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Cancel(ctx context.Context, id, memberID int64, refundWindow time.Duration, refundDesc string) (*domain.Booking, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback()

	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	err = scanBookingRow(tx.QueryRowContext(ctx, query, id), b)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, domain.ErrNotFound
	}
	if err != nil {
		return nil, false, err
	}
	if b.MemberID != memberID {
		return nil, false, domain.ErrNotFound
	}
	switch b.Status {
	case domain.BookingStatusCancelled:
		return b, false, nil
	case domain.BookingStatusCompleted:
		return nil, false, fmt.Errorf("%w: booking %d already completed", domain.ErrInvalidState, id)
	}

	now := time.Now().UTC()
	refunded := false
	if b.TransactionID != nil && b.TotalPriceCents > 0 && b.StartTime.Sub(now) > refundWindow {
		refund := `INSERT INTO wallet_transactions (member_id, amount_cents, type, status, related_id, description, created_on)
		           VALUES ($1, $2, $3, $4, $5, $6, $7)`
		_, err = tx.ExecContext(ctx, refund, b.MemberID, b.TotalPriceCents, domain.TransactionTypeRefund, domain.TransactionStatusCompleted, strconv.FormatInt(b.ID, 10), refundDesc, now)
		if err != nil {
			return nil, false, err
		}
		_, err = tx.ExecContext(ctx, `UPDATE members SET wallet_balance_cents = wallet_balance_cents + $1, updated_on = $2 WHERE id = $3`, b.TotalPriceCents, now, b.MemberID)
		if err != nil {
			return nil, false, err
		}
		refunded = true
	}

	if _, err := tx.ExecContext(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, domain.BookingStatusCancelled, b.ID); err != nil {
		return nil, false, err
	}
	b.Status = domain.BookingStatusCancelled
	return b, refunded, tx.Commit()
}

func (r *bookingRepository) ListByMember(ctx context.Context, memberID int64, page, pageSize int32) ([]domain.Booking, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE member_id = $1 ORDER BY start_time DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, memberID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings, err := collectBookings(rows)
	if err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM bookings WHERE member_id = $1`, memberID).Scan(&count); err != nil {
		return nil, 0, err
	}
	return bookings, count, nil
}

func (r *bookingRepository) ListByCourtBetween(ctx context.Context, courtID int64, from, to time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE court_id = $1 AND status <> 'CANCELLED' AND start_time < $3 AND end_time > $2
	          ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, courtID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *bookingRepository) ListStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE status = 'CONFIRMED' AND start_time >= $1 AND start_time < $2
	          ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *bookingRepository) MarkCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = $1 WHERE status = $2 AND end_time <= $3`,
		domain.BookingStatusCompleted, domain.BookingStatusConfirmed, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func collectBookings(rows *sql.Rows) ([]domain.Booking, error) {
	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := scanBookingRow(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
