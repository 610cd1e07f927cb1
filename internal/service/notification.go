package service

import (
	"context"

	"clubcourt-backend/internal/domain"
	"clubcourt-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) GetNotifications(ctx context.Context, memberID int64, page, pageSize int32) ([]domain.Notification, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.noteRepo.List(ctx, memberID, pageSize, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, memberID, notificationID int64) error {
	return s.noteRepo.MarkAsRead(ctx, notificationID, memberID)
}
