package local_fs

import (
	"context"
	"os"

	"github.com/pkg/errors"
)

// Delete 删除键对应的文件，不存在时不报错
func (l *LocalFS) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	file, err := l.keyFile(key)
	if err != nil {
		return err
	}
	if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "local_fs")
	}
	return nil
}
