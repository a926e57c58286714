// Package convert string conversion helpers
// Package convert 字符串转换工具
package convert

import (
	"strconv"
	"strings"
)

type StrTo string

func (s StrTo) String() string {
	return strings.TrimSpace(string(s))
}

func (s StrTo) Int() (int, error) {
	return strconv.Atoi(s.String())
}

func (s StrTo) MustInt() int {
	v, _ := s.Int()
	return v
}
