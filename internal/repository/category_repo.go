package repository

import (
	"Agora/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CategoryRepo interface {
	GetCategory(ctx context.Context, id uint64) (*model.Category, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
	IncrementPostCount(ctx context.Context, id uint64) error
	SetPostCount(ctx context.Context, id uint64, count int64) error
}

type categoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepo {
	return &categoryRepoImpl{db: db}
}

func (s *categoryRepoImpl) GetCategory(ctx context.Context, id uint64) (*model.Category, error) {
	category := &model.Category{}
	result := s.db.WithContext(ctx).First(category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return category, nil
}

func (s *categoryRepoImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	categories := make([]*model.Category, 0)
	result := s.db.WithContext(ctx).Order("id ASC").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

// IncrementPostCount 计数自增下推到数据库执行，并发建帖时不会丢失更新
func (s *categoryRepoImpl) IncrementPostCount(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ?", id).
		UpdateColumn("number_posts", gorm.Expr("number_posts + ?", 1)).Error
}

// SetPostCount 对账任务回写全量计数
func (s *categoryRepoImpl) SetPostCount(ctx context.Context, id uint64, count int64) error {
	return s.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ?", id).
		UpdateColumn("number_posts", count).Error
}
