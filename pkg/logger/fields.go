package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldAction 操作类型字段
	FieldAction = "action"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldKey 存储键字段
	FieldKey = "key"

	// FieldIndex 笔记下标字段
	FieldIndex = "index"

	// FieldNoteID 笔记 ID 字段
	FieldNoteID = "noteId"

	// FieldCount 笔记数量字段
	FieldCount = "count"

	// FieldBackend 存储后端字段
	FieldBackend = "backend"

	// FieldPath 文件路径字段
	FieldPath = "path"

	// FieldBucket 存储桶名称字段
	FieldBucket = "bucket"
)
