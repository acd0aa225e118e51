package repository

import (
	"Agora/internal/model"
	"context"

	"gorm.io/gorm"
)

type PostHistoryRepo interface {
	Append(ctx context.Context, history *model.PostHistory) error
	ListByPost(ctx context.Context, postID uint64) ([]*model.PostHistory, error)
}

type postHistoryRepoImpl struct {
	db *gorm.DB
}

func NewPostHistoryRepository(db *gorm.DB) PostHistoryRepo {
	return &postHistoryRepoImpl{db: db}
}

func (s *postHistoryRepoImpl) Append(ctx context.Context, history *model.PostHistory) error {
	return s.db.WithContext(ctx).Create(history).Error
}

func (s *postHistoryRepoImpl) ListByPost(ctx context.Context, postID uint64) ([]*model.PostHistory, error) {
	histories := make([]*model.PostHistory, 0)
	result := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&histories)
	if result.Error != nil {
		return nil, result.Error
	}
	return histories, nil
}
