// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/haierkeys/fast-note-keep/internal/dao"
	"github.com/haierkeys/fast-note-keep/internal/domain"
	"github.com/haierkeys/fast-note-keep/internal/service"
	pkgapp "github.com/haierkeys/fast-note-keep/pkg/app"
	"github.com/haierkeys/fast-note-keep/pkg/storage"
	"github.com/haierkeys/fast-note-keep/pkg/writequeue"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB // 仅 database 后端
	Dao    *dao.Dao

	// 并发控制组件
	writeQueueMgr *writequeue.Manager

	// KV 持久化后端
	KV domain.KVStore

	// Service 层
	NoteService service.NoteService

	StartTime time.Time

	// 关闭控制
	shutdownCh   chan struct{}
	shutdownOnce sync.Once
}

// NewApp 创建应用容器实例
// 根据 store.type 构建持久化后端并注入 NoteService
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	a := &App{
		config:     cfg,
		logger:     logger,
		StartTime:  time.Now(),
		shutdownCh: make(chan struct{}),
	}

	if cfg.Store.Type == storage.DATABASE {
		if err := a.initDatabase(); err != nil {
			return nil, err
		}
	} else {
		storeCfg := cfg.Store.Config
		storeCfg.WebDAV.Timeout = cfg.GetNoteServiceConfig().PersistTimeout
		kv, err := storage.NewClient(&storeCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("init %s store: %w", cfg.Store.Type, err)
		}
		a.KV = kv
	}

	a.NoteService = service.NewNoteService(a.KV, cfg.GetNoteServiceConfig(), logger.Named("notes"))

	logger.Info("App container initialized successfully",
		zap.String("store", cfg.Store.Type))

	return a, nil
}

// initDatabase 打开数据库、执行迁移并创建按命名空间划分的 KV 仓库
func (a *App) initDatabase() error {
	dbConfig := a.config.GetDatabaseConfig()

	db, err := dao.NewDBEngineWithConfig(dbConfig, a.logger)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	a.DB = db

	// 初始化 Write Queue Manager
	wqConfig := a.config.GetWriteQueueConfig()
	a.writeQueueMgr = writequeue.New(&wqConfig, a.logger)

	// 初始化 DAO（使用依赖注入）
	a.Dao = dao.New(db, context.Background(),
		dao.WithConfig(&dbConfig),
		dao.WithLogger(a.logger),
		dao.WithWriteQueueManager(a.writeQueueMgr),
	)
	if err := a.Dao.Migrate(); err != nil {
		_ = a.Close()
		return err
	}

	a.KV = dao.NewKVRepository(a.Dao, a.config.Store.Namespace)
	return nil
}

// LoadNotes 从持久化后端加载笔记
func (a *App) LoadNotes(ctx context.Context) error {
	return a.NoteService.Load(ctx)
}

// Close 释放应用容器持有的资源
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// StoreType 获取持久化后端类型
func (a *App) StoreType() string {
	return a.config.Store.Type
}

// Version 获取版本信息
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// IsProductionMode 是否为生产模式
// 根据日志配置中的 Production 字段判断
func (a *App) IsProductionMode() bool {
	return a.config.Log.Production
}

// WriteQueueManager 获取 Write Queue Manager（仅 database 后端）
func (a *App) WriteQueueManager() *writequeue.Manager {
	return a.writeQueueMgr
}

// DefaultShutdownTimeout 默认关闭超时时间
const DefaultShutdownTimeout = 30 * time.Second

// Shutdown 优雅关闭应用容器
// 按顺序关闭：Write Queue Manager -> Database
// ctx 用于控制关闭超时，如果为 nil 则使用默认 30 秒超时
func (a *App) Shutdown(ctx context.Context) error {
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()
	}

	var errs []error
	a.shutdownOnce.Do(func() {
		a.logger.Info("App container shutting down...")
		close(a.shutdownCh)

		// 1. 关闭 Write Queue Manager（排空所有队列）
		if a.writeQueueMgr != nil {
			if err := a.writeQueueMgr.Shutdown(ctx); err != nil {
				a.logger.Warn("write queue manager shutdown error", zap.Error(err))
				errs = append(errs, fmt.Errorf("write queue manager shutdown: %w", err))
			}
		}

		// 2. 关闭数据库连接
		if err := a.Close(); err != nil {
			errs = append(errs, err)
		}
	})

	if len(errs) > 0 {
		return fmt.Errorf("shutdown completed with %d errors: %v", len(errs), errs)
	}
	a.logger.Info("App container shutdown completed successfully")
	return nil
}

// IsShuttingDown 检查应用是否正在关闭
func (a *App) IsShuttingDown() bool {
	select {
	case <-a.shutdownCh:
		return true
	default:
		return false
	}
}
