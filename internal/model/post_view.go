package model

// PostView 帖子创建时记录一条来源地址，同一会话不会重复计入浏览量
type PostView struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;index:idx_post_id" json:"post_id"`
	IPAddress string `gorm:"type:varchar(45);not null" json:"ip_address"`
	CreatedAt int64  `gorm:"not null" json:"created_at"`
}

func (PostView) TableName() string {
	return "post_views"
}
