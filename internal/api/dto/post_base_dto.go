package dto

type PostBaseDTO struct {
	CategoryID uint64 `json:"category_id" binding:"required"`
	Title      string `json:"title" binding:"required,max=255"`
	Slug       string `json:"slug" binding:"omitempty,max=255"`
	Content    string `json:"content" binding:"required"`
}
