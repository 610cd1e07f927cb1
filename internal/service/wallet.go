package service

import (
	"context"
	"fmt"

	"clubcourt-backend/internal/domain"
	"clubcourt-backend/internal/repository"
)

type walletService struct {
	walletRepo repository.WalletRepository
	memberRepo repository.MemberRepository
	emailSvc   EmailService
	noteRepo   repository.NotificationRepository
}

func NewWalletService(
	walletRepo repository.WalletRepository,
	memberRepo repository.MemberRepository,
	emailSvc EmailService,
	noteRepo repository.NotificationRepository,
) WalletService {
	return &walletService{
		walletRepo: walletRepo,
		memberRepo: memberRepo,
		emailSvc:   emailSvc,
		noteRepo:   noteRepo,
	}
}

func (s *walletService) GetBalance(ctx context.Context, memberID int64) (int64, error) {
	return s.walletRepo.GetBalance(ctx, memberID)
}

func (s *walletService) RequestDeposit(ctx context.Context, memberID, amountCents int64, note string, proofRef *string) (*domain.WalletTransaction, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("%w: deposit amount must be positive", domain.ErrInvalidInput)
	}
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		return nil, err
	}

	if note == "" {
		note = "Deposit request"
	}
	t := &domain.WalletTransaction{
		MemberID:    memberID,
		AmountCents: amountCents,
		Description: note,
		ProofRef:    proofRef,
	}
	if err := s.walletRepo.RequestDeposit(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *walletService) ApproveDeposit(ctx context.Context, txID int64) (*domain.WalletTransaction, error) {
	t, err := s.walletRepo.ApproveDeposit(ctx, txID)
	if err != nil {
		return nil, err
	}

	_ = s.noteRepo.Create(ctx, &domain.Notification{
		MemberID: t.MemberID,
		Type:     domain.NotificationDepositApproved,
		Message:  fmt.Sprintf("Your deposit of %s was approved", formatCents(t.AmountCents)),
	})
	if member, err := s.memberRepo.GetByID(ctx, t.MemberID); err == nil && member.Email != nil {
		_ = s.emailSvc.SendDepositResult(ctx, *member.Email, member.FullName, t.AmountCents, true, "")
	}
	return t, nil
}

func (s *walletService) RejectDeposit(ctx context.Context, txID int64, reason string) (*domain.WalletTransaction, error) {
	t, err := s.walletRepo.RejectDeposit(ctx, txID, reason)
	if err != nil {
		return nil, err
	}

	_ = s.noteRepo.Create(ctx, &domain.Notification{
		MemberID: t.MemberID,
		Type:     domain.NotificationDepositRejected,
		Message:  fmt.Sprintf("Your deposit of %s was rejected: %s", formatCents(t.AmountCents), reason),
	})
	if member, err := s.memberRepo.GetByID(ctx, t.MemberID); err == nil && member.Email != nil {
		_ = s.emailSvc.SendDepositResult(ctx, *member.Email, member.FullName, t.AmountCents, false, reason)
	}
	return t, nil
}

func (s *walletService) Debit(ctx context.Context, memberID, amountCents int64, description string, relatedID *string) (*domain.WalletTransaction, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("%w: debit amount must be positive", domain.ErrInvalidInput)
	}
	t := &domain.WalletTransaction{
		MemberID:    memberID,
		AmountCents: -amountCents,
		Type:        domain.TransactionTypePayment,
		RelatedID:   relatedID,
		Description: description,
	}
	if err := s.walletRepo.Debit(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *walletService) Refund(ctx context.Context, memberID, amountCents int64, description string, relatedID *string) (*domain.WalletTransaction, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("%w: refund amount must be positive", domain.ErrInvalidInput)
	}
	t := &domain.WalletTransaction{
		MemberID:    memberID,
		AmountCents: amountCents,
		Type:        domain.TransactionTypeRefund,
		RelatedID:   relatedID,
		Description: description,
	}
	if err := s.walletRepo.Credit(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *walletService) GetHistory(ctx context.Context, memberID int64, page, pageSize int32) ([]domain.WalletTransaction, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.walletRepo.ListByMember(ctx, memberID, page, pageSize)
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
