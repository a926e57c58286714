// Package errors 统一应用错误
package errors

import (
	"errors"
	"time"

	"github.com/haierkeys/fast-note-keep/pkg/code"

	pkgerrors "github.com/pkg/errors"
)

// AppError 统一应用错误结构体
// 包含错误码、消息、详情和时间戳
type AppError struct {
	// Code 错误码
	Code int `json:"code"`
	// Message 错误消息
	Message string `json:"message"`
	// Details 错误详情（可选）
	Details []string `json:"details,omitempty"`
	// Cause 原始错误（不序列化到JSON）
	Cause error `json:"-"`
	// Timestamp 错误发生时间
	Timestamp time.Time `json:"timestamp"`

	codeObj *code.Code
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap 实现 errors.Unwrap 接口，支持错误链路追踪
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches a registered *code.Code with the same number
// Is 与同编号的 *code.Code 匹配
func (e *AppError) Is(target error) bool {
	var c *code.Code
	if errors.As(target, &c) {
		return c.Code() == e.Code
	}
	return false
}

// CodeObj returns the code this error was built from
// CodeObj 返回构造该错误的 Code
func (e *AppError) CodeObj() *code.Code {
	if e.codeObj == nil {
		return code.ErrorServerInternal
	}
	return e.codeObj
}

// NewAppError 从 Code 对象创建 AppError
func NewAppError(c *code.Code, cause error) *AppError {
	return &AppError{
		Code:      c.Code(),
		Message:   c.Msg(),
		Details:   c.Details(),
		Cause:     cause,
		Timestamp: time.Now(),
		codeObj:   c,
	}
}

// Wrap 创建 AppError 并为原始错误附加上下文
func Wrap(c *code.Code, cause error, message string) *AppError {
	if cause == nil {
		return NewAppError(c, nil)
	}
	return NewAppError(c, pkgerrors.Wrap(cause, message))
}

// WithDetails 设置详情并返回自身（链式调用）
func (e *AppError) WithDetails(details ...string) *AppError {
	e.Details = details
	return e
}

// IsAppError 检查错误是否为 AppError 类型
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 从错误链中获取 AppError
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// ToCode converts any error to the code shown to the user
// ToCode 将任意错误转换为展示给用户的 Code
func ToCode(err error) *code.Code {
	if appErr := GetAppError(err); appErr != nil {
		c := appErr.CodeObj()
		if len(appErr.Details) > 0 {
			c = c.WithDetails(appErr.Details...)
		}
		return c
	}
	var c *code.Code
	if errors.As(err, &c) {
		return c
	}
	return code.ErrorServerInternal
}
