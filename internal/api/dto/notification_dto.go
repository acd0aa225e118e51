package dto

type NotificationDTO struct {
	ID        uint64 `json:"id"`
	PostID    uint64 `json:"post_id"`
	Type      string `json:"type"`
	IsRead    bool   `json:"is_read"`
	CreatedAt int64  `json:"created_at"`
}

type MarkReadDTO struct {
	IDs []uint64 `json:"ids" binding:"required,min=1"`
}
