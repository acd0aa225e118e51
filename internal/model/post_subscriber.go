package model

// PostSubscriber 帖子订阅关系
type PostSubscriber struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;uniqueIndex:idx_post_user" json:"post_id"`
	UserID    uint64 `gorm:"not null;uniqueIndex:idx_post_user" json:"user_id"`
	CreatedAt int64  `gorm:"not null" json:"created_at"`
}

func (PostSubscriber) TableName() string {
	return "posts_subscribers"
}
