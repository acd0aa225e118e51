package kafka

// DeliveryMessage 投递队列里的一批通知：帖子 id 与 用户id -> 通知id 映射
type DeliveryMessage struct {
	PostID        uint64            `json:"post_id"`
	Notifications map[uint64]uint64 `json:"notifications"`
	EnqueuedAt    int64             `json:"enqueued_at"`
}
