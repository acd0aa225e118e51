package dto

type ActivityDTO struct {
	UserID    uint64 `json:"user_id"`
	PostID    uint64 `json:"post_id"`
	Type      string `json:"type"`
	CreatedAt int64  `json:"created_at"`
}
