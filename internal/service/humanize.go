package service

import (
	"math"
	"strconv"
	"time"
)

// HumanRelativeTime 将秒级时间戳转成 "3d ago" 这样的相对描述，
// 超过 30 天退化为月份加年份
func HumanRelativeTime(ts int64, now time.Time) string {
	diff := now.Unix() - ts
	switch {
	case diff > 86400*30:
		return time.Unix(ts, 0).UTC().Format("Jan '06")
	case diff > 86400:
		return strconv.FormatInt(diff/86400, 10) + "d ago"
	case diff > 3600:
		return strconv.FormatInt(diff/3600, 10) + "h ago"
	default:
		return strconv.FormatInt(diff/60, 10) + "m ago"
	}
}

// HumanViewCount 浏览量缩写，严格大于 1000 才缩写成 k
func HumanViewCount(n int64) string {
	if n > 1000 {
		v := math.Round(float64(n)/100) / 10
		return strconv.FormatFloat(v, 'f', -1, 64) + "k"
	}
	return strconv.FormatInt(n, 10)
}
