package consts

const (
	PostStatusActive = "A"
)

const (
	// NotificationTypePersonal 扇出给开启通知用户的类型
	NotificationTypePersonal = "P"
	// NotificationTypeBroadcast 发帖人自身收到的新帖通知类型
	NotificationTypeBroadcast = "B"
)

const (
	ActivityTypeNewPost = "new_post"
)
