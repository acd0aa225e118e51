package service

import (
	"context"
	"time"
)

// Clock 可注入时钟，级联时间戳与悬赏计算在测试里需要确定性
type Clock func() time.Time

// DefaultClock 生产环境用的真实时钟
var DefaultClock Clock = time.Now

// PostCache 帖子视图缓存，删除不存在的键不算错误
type PostCache interface {
	InvalidatePost(ctx context.Context, postID uint64) error
}

// DeliveryQueue 通知投递队列。入队成功即返回，不等待投递结果
type DeliveryQueue interface {
	Enqueue(ctx context.Context, postID uint64, notifications map[uint64]uint64) error
}
