package service

import (
	"context"
	"fmt"

	"clubcourt-backend/internal/domain"
	"clubcourt-backend/internal/repository"
)

type courtService struct {
	courtRepo repository.CourtRepository
}

func NewCourtService(courtRepo repository.CourtRepository) CourtService {
	return &courtService{courtRepo: courtRepo}
}

func (s *courtService) CreateCourt(ctx context.Context, c *domain.Court) error {
	if c.Name == "" {
		return fmt.Errorf("%w: court name is required", domain.ErrInvalidInput)
	}
	if c.PricePerHourCents < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidInput)
	}
	return s.courtRepo.Create(ctx, c)
}

func (s *courtService) GetCourt(ctx context.Context, id int64) (*domain.Court, error) {
	return s.courtRepo.GetByID(ctx, id)
}

func (s *courtService) ListCourts(ctx context.Context, activeOnly bool) ([]domain.Court, error) {
	return s.courtRepo.List(ctx, activeOnly)
}

func (s *courtService) UpdateCourt(ctx context.Context, c *domain.Court) error {
	if c.Name == "" {
		return fmt.Errorf("%w: court name is required", domain.ErrInvalidInput)
	}
	if c.PricePerHourCents < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidInput)
	}
	return s.courtRepo.Update(ctx, c)
}

func (s *courtService) SetCourtActive(ctx context.Context, id int64, active bool) error {
	return s.courtRepo.SetActive(ctx, id, active)
}
