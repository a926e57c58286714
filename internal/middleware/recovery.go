package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/haierkeys/fast-note-keep/pkg/app"
	"github.com/haierkeys/fast-note-keep/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryWithLogger 创建带日志器的 Recovery 中间件（支持依赖注入）
func RecoveryWithLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			errorMsg := fmt.Sprintf("%v", rec)
			fields := []zap.Field{
				zap.String("router", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.String("query", c.Request.URL.RawQuery),
				zap.String("ip", c.ClientIP()),
				zap.String(TraceIDKey, c.GetString(TraceIDKey)),
				zap.String("stack", string(debug.Stack())),
			}
			if err, ok := rec.(error); ok {
				fields = append(fields, zap.Error(err))
			} else {
				fields = append(fields, zap.String("panic_value", errorMsg))
			}
			logger.Error("Recovered from panic", fields...)

			// 返回统一的错误响应
			app.NewResponse(c).ToResponse(code.ErrorServerInternal.WithDetails(errorMsg))
			c.Abort()
		}()

		c.Next()
	}
}
