package routers

import (
	"time"

	"github.com/haierkeys/fast-note-keep/internal/app"
	"github.com/haierkeys/fast-note-keep/internal/middleware"
	"github.com/haierkeys/fast-note-keep/internal/routers/api_router"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"github.com/juju/ratelimit"
)

// NewRouter 创建 API 路由
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	var bucket *ratelimit.Bucket
	if cfg.App.RateLimitCapacity > 0 {
		bucket = ratelimit.NewBucketWithQuantum(cfg.GetRateLimitFillInterval(), cfg.App.RateLimitCapacity, cfg.App.RateLimitCapacity)
	}

	r := gin.New()
	r.Use(middleware.Cors())

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfo(app.Name, appContainer.Version().Version))
		if cfg.Tracer.Enabled {
			api.Use(middleware.TraceMiddleware(cfg.Tracer.Header)) // Trace ID 中间件
		}
		api.Use(middleware.RateLimiter(bucket))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		noteHandler := api_router.NewNoteHandler(appContainer)
		draftHandler := api_router.NewDraftHandler(appContainer)
		versionHandler := api_router.NewVersionHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		api.GET("/version", versionHandler.ServerVersion)
		api.GET("/health", healthHandler.Check)
		api.GET("/system", healthHandler.SystemInfo)

		api.GET("/notes", noteHandler.List)
		api.POST("/notes", noteHandler.Add)
		api.DELETE("/notes", noteHandler.Clear)
		api.PUT("/notes/:index/toggle", noteHandler.Toggle)
		api.DELETE("/notes/:index", noteHandler.Remove)
		api.PUT("/note/:id/toggle", noteHandler.ToggleByID)
		api.DELETE("/note/:id", noteHandler.RemoveByID)

		api.GET("/draft", draftHandler.Get)
		api.PUT("/draft", draftHandler.Set)
		api.POST("/draft/submit", draftHandler.Submit)
	}

	r.NoRoute(middleware.NoFound())

	return r
}
