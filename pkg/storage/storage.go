package storage

import (
	"context"

	"github.com/haierkeys/fast-note-keep/pkg/code"
	"github.com/haierkeys/fast-note-keep/pkg/storage/aws_s3"
	"github.com/haierkeys/fast-note-keep/pkg/storage/local_fs"
	"github.com/haierkeys/fast-note-keep/pkg/storage/memory"
	"github.com/haierkeys/fast-note-keep/pkg/storage/webdav"

	"go.uber.org/zap"
)

type Type = string

const DATABASE Type = "database"
const LOCAL Type = "localfs"
const WebDAV Type = "webdav"
const S3 Type = "s3"
const MEMORY Type = "memory"

var StorageTypeMap = map[Type]bool{
	DATABASE: true,
	LOCAL:    true,
	WebDAV:   true,
	S3:       true,
	MEMORY:   true,
}

// Config Unified storage configuration
type Config struct {
	Type    Type            `yaml:"type" default:"database"`
	LocalFS local_fs.Config `yaml:"local-fs"`
	WebDAV  webdav.Config   `yaml:"webdav"`
	S3      aws_s3.Config   `yaml:"s3"`
}

// Storager is a durable string key-value store. Get reports ok=false for an
// absent key; Delete of an absent key succeeds.
type Storager interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// NewClient builds the file or remote backend named by config.Type. The
// database backend lives in internal/dao and is not built here.
func NewClient(config *Config, logger *zap.Logger) (Storager, error) {
	if config == nil {
		return nil, code.ErrorInvalidStorageType
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	switch config.Type {
	case LOCAL:
		return local_fs.NewClient(&config.LocalFS)
	case WebDAV:
		return webdav.NewClient(&config.WebDAV)
	case S3:
		return aws_s3.NewClient(&config.S3, aws_s3.WithLogger(logger))
	case MEMORY:
		return memory.NewClient(), nil
	case DATABASE:
		return nil, code.ErrorStorageConfig.WithDetails("database storage is built by the app container")
	}
	return nil, code.ErrorInvalidStorageType.WithDetails(config.Type)
}
