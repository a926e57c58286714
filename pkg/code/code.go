package code

import (
	"fmt"
	"net/http"
)

// Code is a numbered, bilingual result code. Success codes have status true.
// Code 编号的双语结果码，成功码的 status 为 true
type Code struct {
	// 状态码
	code int
	// 状态
	status bool
	// 消息
	Lang lang
	// HTTP 状态码
	httpStatus int
	// 数据
	data any
	// 错误详细信息
	details []string
}

var codes = map[int]string{}

// NewError registers an error code, panics on a duplicate number
// NewError 注册错误码，编号重复时 panic
func NewError(code int, httpStatus int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("错误码 %d 已经存在，请更换一个", code))
	}
	codes[code] = l.en
	return &Code{code: code, status: false, Lang: l, httpStatus: httpStatus}
}

// NewSuss registers a success code
// NewSuss 注册成功码
func NewSuss(code int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("成功码 %d 已经存在，请更换一个", code))
	}
	codes[code] = l.en
	return &Code{code: code, status: true, Lang: l, httpStatus: http.StatusOK}
}

// Clone returns a copy without data and details
// Clone 返回不含数据与详情的副本
func (e *Code) Clone() *Code {
	return &Code{
		code:       e.code,
		status:     e.status,
		Lang:       e.Lang,
		httpStatus: e.httpStatus,
	}
}

func (e *Code) Error() string {
	return e.Msg()
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) Msg() string {
	return e.Lang.GetMessage()
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) Data() any {
	return e.data
}

// WithData returns a copy carrying data, the registered code is never mutated
// WithData 返回携带数据的副本，不修改已注册的码
func (e *Code) WithData(data any) *Code {
	c := e.Clone()
	c.details = e.details
	c.data = data
	return c
}

// WithDetails returns a copy carrying details
// WithDetails 返回携带详情的副本
func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.data = e.data
	c.details = append([]string{}, details...)
	return c
}

// Is reports whether target is the same registered code
// Is 判断 target 是否为同一个注册码
func (e *Code) Is(target error) bool {
	t, ok := target.(*Code)
	return ok && t.code == e.code
}

func (e *Code) StatusCode() int {
	if e.httpStatus == 0 {
		return http.StatusOK
	}
	return e.httpStatus
}
