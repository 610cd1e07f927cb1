package postgres

import (
	"context"
	"database/sql"
	"time"

	"clubcourt-backend/internal/domain"
	"clubcourt-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, note *domain.Notification) error {
	note.CreatedOn = time.Now().UTC()
	query := `INSERT INTO notifications (member_id, type, message, link_url, is_read, created_on)
	          VALUES ($1, $2, $3, $4, false, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, note.MemberID, note.Type, note.Message, note.LinkURL, note.CreatedOn).Scan(&note.ID)
}

func (r *notificationRepository) List(ctx context.Context, memberID int64, limit, offset int32) ([]domain.Notification, int32, error) {
	query := `SELECT id, member_id, type, message, link_url, is_read, created_on
	          FROM notifications WHERE member_id = $1 ORDER BY created_on DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, memberID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.MemberID, &n.Type, &n.Message, &n.LinkURL, &n.IsRead, &n.CreatedOn); err != nil {
			return nil, 0, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var unread int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM notifications WHERE member_id = $1 AND is_read = false`, memberID).Scan(&unread); err != nil {
		return nil, 0, err
	}
	return notes, unread, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, memberID int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = true WHERE id = $1 AND member_id = $2`, id, memberID)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}
