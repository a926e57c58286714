package cmd

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/radovskyb/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type runFlags struct {
	dir     string // Project root directory // 项目根目录
	port    string // Startup port // 启动端口
	runMode string // Startup mode // 启动模式
	config  string // Specified configuration file path // 指定要使用的配置文件路径
}

func init() {
	runEnv := new(runFlags)

	var runCommand = &cobra.Command{
		Use:   "run [-c config_file] [-d working_dir] [-p port]",
		Short: "Run service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(runEnv.dir) > 0 {
				if err := os.Chdir(runEnv.dir); err != nil {
					return err
				}
				bootstrapLogger.Info("working directory changed", zap.String("dir", runEnv.dir))
			}

			configPath, err := resolveConfigPath(runEnv.config)
			if err != nil {
				return err
			}
			runEnv.config = configPath

			first, err := NewServer(runEnv)
			if err != nil {
				bootstrapLogger.Error("api service start err", zap.Error(err))
				return err
			}
			var current atomic.Pointer[Server]
			current.Store(first)

			w := watcher.New()
			// 每个监听周期至多接收 1 个事件，只通知写入事件
			w.SetMaxEvents(1)
			w.FilterOps(watcher.Write)
			defer w.Close()

			// 重载失败时旧服务已关闭，进程随之退出
			reloadFailed := make(chan error, 1)

			go func() {
				for {
					select {
					case event := <-w.Event:
						current.Load().logger.Info("config watcher change", zap.String("event", event.Op.String()), zap.String("file", event.Path))
						if err := reloadServer(&current, func() (*Server, error) { return NewServer(runEnv) }); err != nil {
							bootstrapLogger.Error("service restart err", zap.Error(err))
							reloadFailed <- err
							return
						}
					case err := <-w.Error:
						current.Load().logger.Error("config watcher error", zap.Error(err))
					case <-w.Closed:
						return
					}
				}
			}()

			if err := w.Add(runEnv.config); err != nil {
				first.logger.Error("config watcher file error", zap.Error(err))
			}
			go func() {
				if err := w.Start(time.Second * 5); err != nil {
					first.logger.Error("config watcher start error", zap.Error(err))
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			select {
			case <-quit:
			case err := <-reloadFailed:
				w.Close()
				return errors.Wrap(err, "reload config")
			}

			w.Close()
			s := current.Load()
			s.logger.Info("Received shutdown signal, initiating graceful shutdown...")
			s.sc.SendCloseSignal(nil)

			// 等待所有关闭处理器完成（包括 App Container 的优雅关闭）
			if err := s.sc.WaitClosed(); err != nil {
				s.logger.Error("Shutdown completed with error", zap.Error(err))
			} else {
				s.logger.Info("Service has been shut down gracefully.")
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCommand)
	fs := runCommand.Flags()
	fs.StringVarP(&runEnv.dir, "dir", "d", "", "run dir")
	fs.StringVarP(&runEnv.port, "port", "p", "", "run port")
	fs.StringVarP(&runEnv.runMode, "mode", "m", "", "run mode")
	fs.StringVarP(&runEnv.config, "config", "c", "", "config file")
}

// reloadServer closes the current server and stores the one build returns.
// The old server holds the listen ports, so it is closed first; on a build
// error current still points at the closed server and the error is returned.
// reloadServer 关闭当前服务并替换为新构建的服务
func reloadServer(current *atomic.Pointer[Server], build func() (*Server, error)) error {
	s := current.Load()
	s.sc.SendCloseSignal(nil)
	if err := s.sc.WaitClosed(); err != nil {
		s.logger.Error("shutdown before reload", zap.Error(err))
	}

	next, err := build()
	if err != nil {
		return err
	}
	current.Store(next)
	return nil
}
