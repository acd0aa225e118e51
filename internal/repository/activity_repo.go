package repository

import (
	"Agora/internal/model"
	"context"

	"gorm.io/gorm"
)

// ActivityRepo 审计语义：只提供追加与读取，不暴露修改和删除
type ActivityRepo interface {
	Record(ctx context.Context, activity *model.Activity) error
	Recent(ctx context.Context, limit int) ([]*model.Activity, error)
}

type activityRepoImpl struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepo {
	return &activityRepoImpl{db: db}
}

func (s *activityRepoImpl) Record(ctx context.Context, activity *model.Activity) error {
	return s.db.WithContext(ctx).Create(activity).Error
}

func (s *activityRepoImpl) Recent(ctx context.Context, limit int) ([]*model.Activity, error) {
	activities := make([]*model.Activity, 0)
	result := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}
	return activities, nil
}
