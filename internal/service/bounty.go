package service

import (
	"Agora/internal/model"
	"time"
)

const (
	BountyTypeOld       = "old"
	BountyTypeFastReply = "fast-reply"
)

// 不参与悬赏的保留版块：闲聊、招聘、公告、社区展示
var bountyReservedCategories = map[uint64]struct{}{
	4:  {},
	7:  {},
	15: {},
	24: {},
}

type Bounty struct {
	Type  string
	Value int64
}

func bountyBaseEligible(post *model.Post) bool {
	if post.AcceptedAnswer || post.Sticked || post.NumberReplies != 0 {
		return false
	}
	if _, reserved := bountyReservedCategories[post.CategoryID]; reserved {
		return false
	}
	return post.VotesUp-post.VotesDown >= 0
}

// ComputeBounty 计算帖子的悬赏。发帖 1 小时到 1 天之间的帖子没有任何悬赏，
// 这是沿用至今的历史边界，不做"修正"
func ComputeBounty(post *model.Post, now time.Time) *Bounty {
	if !bountyBaseEligible(post) {
		return nil
	}
	diff := now.Unix() - post.CreatedAt
	if diff > 86400 {
		if diff < 86400*30 {
			return &Bounty{Type: BountyTypeOld, Value: 150 + diff*3/86400}
		}
		return nil
	}
	if diff < 3600 {
		return &Bounty{Type: BountyTypeFastReply, Value: 100}
	}
	return nil
}

// EligibleForBounty 恰好在 ComputeBounty 能给出悬赏时为真
func EligibleForBounty(post *model.Post, now time.Time) bool {
	return ComputeBounty(post, now) != nil
}
