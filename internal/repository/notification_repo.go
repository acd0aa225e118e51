package repository

import (
	"Agora/internal/model"
	"context"

	"gorm.io/gorm"
)

type NotificationRepo interface {
	Create(ctx context.Context, notification *model.Notification) error
	ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Notification, error)
	CountUnread(ctx context.Context, userID uint64) (int64, error)
	MarkRead(ctx context.Context, userID uint64, ids []uint64) error
	MarkSent(ctx context.Context, ids []uint64, sentAt int64) error
}

type notificationRepoImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepo {
	return &notificationRepoImpl{db: db}
}

func (s *notificationRepoImpl) Create(ctx context.Context, notification *model.Notification) error {
	return s.db.WithContext(ctx).Create(notification).Error
}

func (s *notificationRepoImpl) ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Notification, error) {
	notifications := make([]*model.Notification, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications)
	if result.Error != nil {
		return nil, result.Error
	}
	return notifications, nil
}

func (s *notificationRepoImpl) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead 只允许标记属于自己的通知
func (s *notificationRepoImpl) MarkRead(ctx context.Context, userID uint64, ids []uint64) error {
	return s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND id IN ?", userID, ids).
		Update("is_read", true).Error
}

func (s *notificationRepoImpl) MarkSent(ctx context.Context, ids []uint64, sentAt int64) error {
	return s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id IN ?", ids).
		Update("sent_at", sentAt).Error
}
