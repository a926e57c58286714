package webdav

import (
	"context"
	"os"
	"time"

	"github.com/haierkeys/fast-note-keep/pkg/fileurl"

	"github.com/pkg/errors"
	"github.com/studio-b12/gowebdav"
)

// Config 结构体用于存储 WebDAV 连接信息。
type Config struct {
	Endpoint   string `yaml:"endpoint"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	CustomPath string `yaml:"custom-path" default:"fast-note-keep"`
	// Timeout 单次请求超时，gowebdav 不接收 context，由 http.Client 超时兜底
	Timeout time.Duration `yaml:"-"`
}

// WebDAV 结构体表示 WebDAV 客户端。
type WebDAV struct {
	Client *gowebdav.Client
	Config *Config
}

// NewClient 创建一个新的 WebDAV 客户端实例。
func NewClient(conf *Config) (*WebDAV, error) {
	if conf == nil || conf.Endpoint == "" {
		return nil, errors.New("webdav: endpoint is required")
	}
	c := gowebdav.NewClient(conf.Endpoint, conf.User, conf.Password)
	if conf.Timeout > 0 {
		c.SetTimeout(conf.Timeout)
	}
	if err := c.Connect(); err != nil {
		return nil, errors.Wrap(err, "webdav")
	}
	return &WebDAV{
		Client: c,
		Config: conf,
	}, nil
}

func (w *WebDAV) keyPath(key string) string {
	return fileurl.KeyPath(w.Config.CustomPath, key+".json")
}

// Get 读取远程文件，404 时返回 ok=false
func (w *WebDAV) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	data, err := w.Client.Read(w.keyPath(key))
	if gowebdav.IsErrNotFound(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "webdav")
	}
	return string(data), true, nil
}

// Set 将内容写入远程文件
func (w *WebDAV) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.Config.CustomPath != "" {
		if err := w.Client.MkdirAll(w.Config.CustomPath, 0755); err != nil {
			return errors.Wrap(err, "webdav")
		}
	}
	if err := w.Client.Write(w.keyPath(key), []byte(value), os.ModePerm); err != nil {
		return errors.Wrap(err, "webdav")
	}
	return nil
}
