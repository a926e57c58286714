package domain

import "context"

// KVStore is the durable key-value collaborator the note store persists to.
// Get reports ok=false for an absent key. Delete of an absent key succeeds.
// KVStore 笔记存储持久化使用的键值存储
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// KVPair 键值对
type KVPair struct {
	Key   string
	Value string
}

// BatchKVStore is a KVStore that can write several keys atomically
// BatchKVStore 支持原子写入多个键的 KVStore
type BatchKVStore interface {
	KVStore
	SetBatch(ctx context.Context, pairs []KVPair) error
}
