package service

import (
	"context"
	"fmt"

	"clubcourt-backend/internal/domain"
	"clubcourt-backend/internal/logger"
	"clubcourt-backend/internal/repository"
)

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) CreateMember(ctx context.Context, m *domain.Member) error {
	if m.UserRef == "" {
		return fmt.Errorf("%w: user_ref is required", domain.ErrInvalidInput)
	}
	if m.FullName == "" {
		return fmt.Errorf("%w: full_name is required", domain.ErrInvalidInput)
	}
	m.IsActive = true
	return s.memberRepo.Create(ctx, m)
}

func (s *memberService) GetMember(ctx context.Context, id int64) (*domain.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}

func (s *memberService) GetMemberByUserRef(ctx context.Context, userRef string) (*domain.Member, error) {
	return s.memberRepo.GetByUserRef(ctx, userRef)
}

func (s *memberService) ListMembers(ctx context.Context, page, pageSize int32) ([]domain.Member, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.memberRepo.List(ctx, page, pageSize)
}

func (s *memberService) UpdateMember(ctx context.Context, m *domain.Member) error {
	if m.FullName == "" {
		return fmt.Errorf("%w: full_name is required", domain.ErrInvalidInput)
	}
	return s.memberRepo.Update(ctx, m)
}

func (s *memberService) SetTier(ctx context.Context, id int64, tier domain.MemberTier) error {
	if _, err := domain.ParseMemberTier(string(tier)); err != nil {
		return err
	}
	return s.memberRepo.SetTier(ctx, id, tier)
}

func (s *memberService) DeleteMember(ctx context.Context, id int64) error {
	hasActivity, err := s.memberRepo.HasActivity(ctx, id)
	if err != nil {
		return err
	}
	if hasActivity {
		// Ledger history must survive, so the member is only deactivated.
		logger.InfoContext(ctx, "member has history, deactivating instead of deleting", "member_id", id)
		return s.memberRepo.Deactivate(ctx, id)
	}
	return s.memberRepo.Delete(ctx, id)
}
