package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clubcourt-backend/internal/domain"
)

func TestMemberService_CreateMember(t *testing.T) {
	ctx := context.Background()

	t.Run("ActivatesOnCreate", func(t *testing.T) {
		memberRepo := new(MockMemberRepo)
		svc := NewMemberService(memberRepo)
		memberRepo.On("Create", ctx, mock.MatchedBy(func(m *domain.Member) bool {
			return m.IsActive
		})).Return(nil)

		err := svc.CreateMember(ctx, &domain.Member{UserRef: "auth0|abc", FullName: "Ana"})
		assert.NoError(t, err)
		memberRepo.AssertExpectations(t)
	})

	t.Run("RequiredFields", func(t *testing.T) {
		svc := NewMemberService(new(MockMemberRepo))
		assert.ErrorIs(t, svc.CreateMember(ctx, &domain.Member{FullName: "Ana"}), domain.ErrInvalidInput)
		assert.ErrorIs(t, svc.CreateMember(ctx, &domain.Member{UserRef: "auth0|abc"}), domain.ErrInvalidInput)
	})
}

func TestMemberService_SetTier(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		memberRepo := new(MockMemberRepo)
		svc := NewMemberService(memberRepo)
		memberRepo.On("SetTier", ctx, int64(7), domain.MemberTierGold).Return(nil)

		assert.NoError(t, svc.SetTier(ctx, 7, domain.MemberTierGold))
	})

	t.Run("UnknownTier", func(t *testing.T) {
		svc := NewMemberService(new(MockMemberRepo))
		err := svc.SetTier(ctx, 7, domain.MemberTier("PLATINUM"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestMemberService_DeleteMember(t *testing.T) {
	ctx := context.Background()

	t.Run("DeactivatesWithHistory", func(t *testing.T) {
		memberRepo := new(MockMemberRepo)
		svc := NewMemberService(memberRepo)
		memberRepo.On("HasActivity", ctx, int64(7)).Return(true, nil)
		memberRepo.On("Deactivate", ctx, int64(7)).Return(nil)

		assert.NoError(t, svc.DeleteMember(ctx, 7))
		memberRepo.AssertNotCalled(t, "Delete", ctx, int64(7))
	})

	t.Run("DeletesWithoutHistory", func(t *testing.T) {
		memberRepo := new(MockMemberRepo)
		svc := NewMemberService(memberRepo)
		memberRepo.On("HasActivity", ctx, int64(8)).Return(false, nil)
		memberRepo.On("Delete", ctx, int64(8)).Return(nil)

		assert.NoError(t, svc.DeleteMember(ctx, 8))
		memberRepo.AssertNotCalled(t, "Deactivate", ctx, int64(8))
	})

	t.Run("UnknownMember", func(t *testing.T) {
		memberRepo := new(MockMemberRepo)
		svc := NewMemberService(memberRepo)
		memberRepo.On("HasActivity", ctx, int64(99)).Return(false, domain.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteMember(ctx, 99), domain.ErrNotFound)
	})
}
