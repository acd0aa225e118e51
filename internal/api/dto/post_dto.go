package dto

type BountyDTO struct {
	Eligible bool   `json:"eligible"`
	Type     string `json:"type,omitempty"`
	Value    int64  `json:"value,omitempty"`
}

type PostDTO struct {
	ID             uint64 `json:"id"`
	UserID         uint64 `json:"user_id"`
	CategoryID     uint64 `json:"category_id"`
	CategoryName   string `json:"category_name,omitempty"`
	Title          string `json:"title"`
	Slug           string `json:"slug"`
	Content        string `json:"content"`
	NumberViews    int64  `json:"number_views"`
	NumberReplies  int64  `json:"number_replies"`
	VotesUp        int64  `json:"votes_up"`
	VotesDown      int64  `json:"votes_down"`
	Sticked        bool   `json:"sticked"`
	Locked         bool   `json:"locked"`
	AcceptedAnswer bool   `json:"accepted_answer"`
	Status         string `json:"status"`
	CreatedAt      int64  `json:"created_at"`

	// 人性化展示字段，modified 与 created 相同时为空
	HumanNumberViews string `json:"human_number_views"`
	HumanCreatedAt   string `json:"human_created_at"`
	HumanModifiedAt  string `json:"human_modified_at,omitempty"`
	HumanEditedAt    string `json:"human_edited_at,omitempty"`

	Subscribed bool       `json:"subscribed"`
	Bounty     *BountyDTO `json:"bounty,omitempty"`
}

type PostListDTO struct {
	List    []*PostDTO `json:"list"`
	HasMore bool       `json:"has_more"`
}

// PostHistoryDTO 帖子内容快照，user_id 是当次操作人
type PostHistoryDTO struct {
	ID        uint64 `json:"id"`
	PostID    uint64 `json:"post_id"`
	UserID    uint64 `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
}
