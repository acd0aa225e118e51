package redis

import (
	"Agora/internal/pkg/consts"
	"context"
	"strconv"
)

// PostViewCache 帖子视图缓存网关，实现 service.PostCache
type PostViewCache struct{}

func NewPostViewCache() *PostViewCache {
	return &PostViewCache{}
}

// InvalidatePost 删除帖子关联的四个固定缓存键。Redis 的 DEL 对不存在的键
// 直接返回 0，因此重复失效是幂等的
func (c *PostViewCache) InvalidatePost(ctx context.Context, postID uint64) error {
	id := strconv.FormatUint(postID, 10)
	return DeleteKeys(ctx,
		consts.PostCacheKey+id,
		consts.PostBodyCacheKey+id,
		consts.PostUsersCacheKey+id,
		consts.SidebarCacheKey,
	)
}
