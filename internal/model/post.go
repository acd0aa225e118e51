package model

// Post 帖子主表。时间字段统一使用秒级时间戳，便于人性化展示与悬赏计算
type Post struct {
	ID             uint64 `gorm:"primaryKey"`
	UserID         uint64 `gorm:"not null;index:idx_user_id" json:"user_id"`
	CategoryID     uint64 `gorm:"not null;index:idx_category_id" json:"category_id"`
	Title          string `gorm:"type:varchar(255);not null" json:"title"`
	Slug           string `gorm:"type:varchar(255);uniqueIndex:idx_slug" json:"slug"`
	Content        string `gorm:"not null" json:"content"`
	NumberViews    int64  `gorm:"not null;default:0" json:"number_views"`
	NumberReplies  int64  `gorm:"not null;default:0" json:"number_replies"`
	VotesUp        int64  `gorm:"not null;default:0" json:"votes_up"`
	VotesDown      int64  `gorm:"not null;default:0" json:"votes_down"`
	Sticked        bool   `gorm:"type:tinyint(1);not null;default:0" json:"sticked"`
	Locked         bool   `gorm:"type:tinyint(1);not null;default:0" json:"locked"`
	Deleted        bool   `gorm:"type:tinyint(1);not null;default:0" json:"deleted"`
	AcceptedAnswer bool   `gorm:"type:tinyint(1);not null;default:0" json:"accepted_answer"`
	Status         string `gorm:"type:char(1);not null;default:'A'" json:"status"`
	CreatedAt      int64  `gorm:"not null" json:"created_at"`
	ModifiedAt     int64  `gorm:"not null" json:"modified_at"`
	EditedAt       int64  `gorm:"not null;default:0" json:"edited_at"`

	// 关联关系
	User     User     `gorm:"foreignKey:UserID;references:ID"`
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
