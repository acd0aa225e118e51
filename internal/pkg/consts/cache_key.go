package consts

// 帖子视图缓存的四个固定键，帖子任何变更时一并失效
const (
	PostCacheKey      = "post-"
	PostBodyCacheKey  = "post-body-"
	PostUsersCacheKey = "post-users-"
	SidebarCacheKey   = "sidebar"
)
