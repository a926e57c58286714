// Package service implements the business logic layer
// Package service 实现业务逻辑层
package service

import "time"

// ServiceConfig service layer configuration
// ServiceConfig 服务层配置
type ServiceConfig struct {
	Note NoteServiceConfig // Note store config // 笔记存储配置
}

// NoteServiceConfig note store configuration
// NoteServiceConfig 笔记存储配置
type NoteServiceConfig struct {
	NotesKey       string        // Key holding the JSON array of note texts // 保存笔记文本 JSON 数组的键
	DoneKey        string        // Key holding the JSON array of done flags // 保存完成标记 JSON 数组的键
	PersistTimeout time.Duration // Timeout of one persistence round trip // 单次持久化超时时间
}

const (
	DefaultNotesKey       = "notes"
	DefaultDoneKey        = "done"
	DefaultPersistTimeout = 10 * time.Second
)

func (c NoteServiceConfig) withDefaults() NoteServiceConfig {
	if c.NotesKey == "" {
		c.NotesKey = DefaultNotesKey
	}
	if c.DoneKey == "" {
		c.DoneKey = DefaultDoneKey
	}
	if c.PersistTimeout <= 0 {
		c.PersistTimeout = DefaultPersistTimeout
	}
	return c
}
