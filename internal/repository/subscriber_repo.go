package repository

import (
	"Agora/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriberRepo interface {
	Exists(ctx context.Context, postID, userID uint64) (bool, error)
	Subscribe(ctx context.Context, subscriber *model.PostSubscriber) error
	Unsubscribe(ctx context.Context, postID, userID uint64) error
}

type subscriberRepoImpl struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) SubscriberRepo {
	return &subscriberRepoImpl{db: db}
}

func (s *subscriberRepoImpl) Exists(ctx context.Context, postID, userID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.PostSubscriber{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

// Subscribe 重复订阅按成功处理
func (s *subscriberRepoImpl) Subscribe(ctx context.Context, subscriber *model.PostSubscriber) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(subscriber).Error
}

func (s *subscriberRepoImpl) Unsubscribe(ctx context.Context, postID, userID uint64) error {
	return s.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.PostSubscriber{}).Error
}
