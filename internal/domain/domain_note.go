// Package domain 定义领域模型和接口
package domain

// NoteStatus is the visual state a note is projected into
// NoteStatus 笔记展示状态
type NoteStatus string

const (
	NoteStatusActive    NoteStatus = "active"
	NoteStatusCompleted NoteStatus = "completed"
)

// Done flag values as persisted
// 持久化的完成标记取值
const (
	DoneActive    = 0
	DoneCompleted = 1
)

// Note 笔记领域模型
// ID is assigned in memory when the note is created or loaded and is never
// persisted; the stored format only carries text and done flags.
type Note struct {
	ID   string
	Text string
	Done int
}

// Status 返回笔记的展示状态
func (n Note) Status() NoteStatus {
	if n.Done == DoneCompleted {
		return NoteStatusCompleted
	}
	return NoteStatusActive
}

// IsDone 是否已完成
func (n Note) IsDone() bool {
	return n.Done == DoneCompleted
}
