package repository

import (
	"Agora/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, view *model.PostView) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	ListVisible(ctx context.Context, limit, offset int) ([]*model.Post, error)
	CountVisibleByCategory(ctx context.Context, categoryID uint64) (int64, error)
	UpdatePost(ctx context.Context, post *model.Post) error
	SoftDelete(ctx context.Context, id uint64) error
}

type postRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &postRepoImpl{db: db}
}

// CreatePost 帖子与来源浏览记录写在同一事务里，保证两者同时落库
func (s *postRepoImpl) CreatePost(ctx context.Context, post *model.Post, view *model.PostView) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		view.PostID = post.ID
		return tx.Create(view).Error
	})
}

func (s *postRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Preload("Category").
		Where("deleted = ?", false).
		First(post, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *postRepoImpl) ListVisible(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Preload("Category").
		Where("deleted = ?", false).
		Order("sticked DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *postRepoImpl) CountVisibleByCategory(ctx context.Context, categoryID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("category_id = ? AND deleted = ?", categoryID, false).
		Count(&count).Error
	return count, err
}

func (s *postRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Save(post).Error
}

// SoftDelete 逻辑删除，列表不再展示但记录保留
func (s *postRepoImpl) SoftDelete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Update("deleted", true).Error
}
