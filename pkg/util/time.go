package util

import (
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses a duration string, accepting a "d" (day) suffix
// and bare numbers as seconds
// ParseDuration 解析时间字符串，支持 "d"（天）后缀，纯数字按秒处理
// s: duration string such as 7d, 24h, 30m, 10
// s: 时间字符串，例如 7d、24h、30m、10
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "d") {
		daysStr := strings.TrimSuffix(s, "d")
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return 0, err
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	// If it is pure numbers, default to seconds
	// 如果是纯数字，默认为秒
	if _, err := strconv.Atoi(s); err == nil {
		s += "s"
	}
	return time.ParseDuration(s)
}

// ParseDurationOr parses s and returns def when s is empty or invalid
// ParseDurationOr 解析 s，为空或无效时返回 def
func ParseDurationOr(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
