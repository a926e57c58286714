package api_router

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/haierkeys/fast-note-keep/internal/app"
	"github.com/haierkeys/fast-note-keep/internal/dto"
	pkgapp "github.com/haierkeys/fast-note-keep/pkg/app"
	"github.com/haierkeys/fast-note-keep/pkg/code"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建健康检查处理器实例
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// Check 健康检查接口
// @Summary 健康检查
// @Description 检查服务健康状态，database 后端同时检查数据库连接
// @Tags 系统
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.HealthDTO}
// @Router /api/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	data := dto.HealthDTO{
		Status: "healthy",
		Store:  h.App.StoreType(),
		Notes:  h.App.NoteService.Len(),
		Uptime: time.Since(h.App.StartTime).Seconds(),
	}

	if h.App.DB != nil {
		if err := h.App.DB.WithContext(c.Request.Context()).Exec("SELECT 1").Error; err != nil {
			data.Status = "unhealthy"
			h.App.Logger().Warn("HealthHandler.Check database ping failed", zap.Error(err))
			response.ToResponse(code.ErrorNoteStoreClosed.WithData(data))
			return
		}
	}

	response.ToResponse(code.Success.WithData(data))
}

// SystemInfo 获取运行时与主机信息
// @Summary Get system and runtime info
// @Tags 系统
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.SystemInfoDTO} "Success"
// @Router /api/system [get]
func (h *HealthHandler) SystemInfo(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	data := dto.SystemInfoDTO{
		StartTime: h.App.StartTime,
		Uptime:    time.Since(h.App.StartTime).Seconds(),
		Runtime: dto.RuntimeInfoDTO{
			NumGoroutine: runtime.NumGoroutine(),
			MemAlloc:     m.Alloc,
			MemSys:       m.Sys,
			NumGC:        m.NumGC,
		},
	}

	// 各项采集互不依赖，并发执行；单项失败只记录日志
	var g errgroup.Group
	ctx := c.Request.Context()
	g.Go(func() error {
		vMem, err := mem.VirtualMemoryWithContext(ctx)
		if err != nil {
			return err
		}
		data.Memory = dto.MemoryInfoDTO{Total: vMem.Total, Available: vMem.Available, UsedPercent: vMem.UsedPercent}
		return nil
	})
	g.Go(func() error {
		hInfo, err := host.InfoWithContext(ctx)
		if err != nil {
			return err
		}
		data.Host = dto.HostInfoDTO{
			Hostname:      hInfo.Hostname,
			OS:            hInfo.OS,
			Platform:      hInfo.Platform,
			KernelVersion: hInfo.KernelVersion,
			Uptime:        hInfo.Uptime,
		}
		return nil
	})
	g.Go(func() error {
		return h.processInfo(ctx, &data.Process)
	})
	if err := g.Wait(); err != nil {
		h.App.Logger().Warn("HealthHandler.SystemInfo partial", zap.Error(err))
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.WithData(data))
}

func (h *HealthHandler) processInfo(ctx context.Context, out *dto.ProcessInfoDTO) error {
	p, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return err
	}
	out.PID = p.Pid
	out.CPUPercent, _ = p.CPUPercentWithContext(ctx)
	out.MemoryPercent, _ = p.MemoryPercentWithContext(ctx)
	return nil
}
