package model

// Activity 动态流，只追加不修改
type Activity struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index:idx_user_id" json:"user_id"`
	PostID    uint64 `gorm:"not null;index:idx_post_id" json:"post_id"`
	Type      string `gorm:"type:varchar(20);not null" json:"type"`
	CreatedAt int64  `gorm:"not null" json:"created_at"`
}

func (Activity) TableName() string {
	return "activities"
}
