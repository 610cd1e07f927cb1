package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"clubcourt-backend/internal/domain"
	"clubcourt-backend/internal/repository"
)

type courtRepository struct {
	db *sql.DB
}

func NewCourtRepository(db *sql.DB) repository.CourtRepository {
	return &courtRepository{db: db}
}

const courtColumns = `id, name, is_active, description, location, price_per_hour_cents, created_on`

func (r *courtRepository) Create(ctx context.Context, c *domain.Court) error {
	c.CreatedOn = time.Now().UTC()
	query := `INSERT INTO courts (name, is_active, description, location, price_per_hour_cents, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name, c.IsActive, c.Description, c.Location, c.PricePerHourCents, c.CreatedOn).Scan(&c.ID)
}

func (r *courtRepository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	c := &domain.Court{}
	query := `SELECT ` + courtColumns + ` FROM courts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.IsActive, &c.Description, &c.Location, &c.PricePerHourCents, &c.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *courtRepository) List(ctx context.Context, activeOnly bool) ([]domain.Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts WHERE ($1 = false OR is_active) ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courts []domain.Court
	for rows.Next() {
		var c domain.Court
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive, &c.Description, &c.Location, &c.PricePerHourCents, &c.CreatedOn); err != nil {
			return nil, err
		}
		courts = append(courts, c)
	}
	return courts, rows.Err()
}

func (r *courtRepository) Update(ctx context.Context, c *domain.Court) error {
	query := `UPDATE courts SET name = $1, is_active = $2, description = $3, location = $4, price_per_hour_cents = $5 WHERE id = $6`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.IsActive, c.Description, c.Location, c.PricePerHourCents, c.ID)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *courtRepository) SetActive(ctx context.Context, id int64, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE courts SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}
