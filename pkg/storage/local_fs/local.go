// Package local_fs stores each key as a JSON file under a directory
// Package local_fs 将每个键保存为目录下的一个 JSON 文件
package local_fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/haierkeys/fast-note-keep/pkg/fileurl"

	"github.com/pkg/errors"
)

type Config struct {
	SavePath string `yaml:"save-path" default:"storage/notes"`
}

type LocalFS struct {
	Config *Config
}

var ErrInvalidKey = errors.New("local_fs: invalid key")

func NewClient(conf *Config) (*LocalFS, error) {
	if conf == nil || conf.SavePath == "" {
		return nil, errors.New("local_fs: save path is required")
	}
	if err := os.MkdirAll(conf.SavePath, 0754); err != nil {
		return nil, errors.Wrap(err, "local_fs")
	}
	return &LocalFS{Config: conf}, nil
}

// keyFile maps a key to its file, rejecting keys that would escape SavePath
// keyFile 将键映射到文件，拒绝会逃出 SavePath 的键
func (l *LocalFS) keyFile(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", errors.Wrapf(ErrInvalidKey, "%q", key)
	}
	return filepath.Join(l.Config.SavePath, key+".json"), nil
}

// Get 读取键对应的文件，文件不存在时返回 ok=false
func (l *LocalFS) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	file, err := l.keyFile(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "local_fs")
	}
	return string(data), true, nil
}

// Set 原子写入键对应的文件
func (l *LocalFS) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	file, err := l.keyFile(key)
	if err != nil {
		return err
	}
	return errors.Wrap(fileurl.WriteFileAtomic(file, []byte(value), 0644), "local_fs")
}
