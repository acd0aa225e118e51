package model

// PostHistory 每次保存（创建与编辑）追加一条内容快照，归属于当前操作人
type PostHistory struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;index:idx_post_id" json:"post_id"`
	UserID    uint64 `gorm:"not null" json:"user_id"`
	Content   string `gorm:"not null" json:"content"`
	CreatedAt int64  `gorm:"not null" json:"created_at"`
}

func (PostHistory) TableName() string {
	return "posts_history"
}
