// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"github.com/haierkeys/fast-note-keep/internal/app"
	"github.com/haierkeys/fast-note-keep/internal/middleware"
	pkgapp "github.com/haierkeys/fast-note-keep/pkg/app"
	apperrors "github.com/haierkeys/fast-note-keep/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 基础 Handler 结构体，封装 App Container
// 所有 API Handler 都应该嵌入此结构体以获得依赖注入能力
type Handler struct {
	App *app.App
}

// NewHandler 创建基础 Handler 实例
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// respondError 记录错误并输出对应的错误码
func (h *Handler) respondError(c *gin.Context, op string, err error) {
	_ = c.Error(err)
	h.App.Logger().Warn(op,
		zap.String(middleware.TraceIDKey, c.GetString(middleware.TraceIDKey)),
		zap.Error(err))
	pkgapp.NewResponse(c).ToResponse(apperrors.ToCode(err))
}
