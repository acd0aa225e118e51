package model

// Notification 站内通知，每个 (帖子, 接收人) 一条记录
type Notification struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index:idx_user_id" json:"user_id"`
	PostID    uint64 `gorm:"not null;index:idx_post_id" json:"post_id"`
	Type      string `gorm:"type:char(1);not null" json:"type"`
	IsRead    bool   `gorm:"type:tinyint(1);not null;default:0;index:idx_is_read" json:"is_read"`
	SentAt    int64  `gorm:"not null;default:0" json:"sent_at"`
	CreatedAt int64  `gorm:"not null" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
