package model

// Category 版块。NumberPosts 只允许通过原子自增或对账任务修改
type Category struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Slug        string `gorm:"type:varchar(100);uniqueIndex:idx_category_slug" json:"slug"`
	NumberPosts int64  `gorm:"not null;default:0" json:"number_posts"`
}

func (Category) TableName() string {
	return "categories"
}
