// Package dto Defines data transfer objects (request parameters and response structs)
// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import (
	"github.com/haierkeys/fast-note-keep/internal/domain"

	"github.com/jinzhu/copier"
)

// NoteDTO Note data transfer object
// NoteDTO 笔记数据传输对象
type NoteDTO struct {
	ID     string `json:"id"`
	Index  int    `json:"index"`
	Text   string `json:"text"`
	Done   int    `json:"done"`
	Status string `json:"status"`
}

// NoteAddRequest Request parameters for adding a note
// NoteAddRequest 添加笔记的请求参数
// Text 为指针，只有缺少该字段才校验失败，空字符串交由服务层按空白处理
type NoteAddRequest struct {
	Text *string `json:"text" form:"text" binding:"required"`
}

// NoteIndexRequest Positional note address
// NoteIndexRequest 按位置定位笔记
type NoteIndexRequest struct {
	Index int `uri:"index" binding:"min=0"`
}

// NoteIDRequest Stable note address
// NoteIDRequest 按 ID 定位笔记
type NoteIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// DraftRequest Draft text update
// DraftRequest 草稿文本更新
type DraftRequest struct {
	Text string `json:"text" form:"text"`
}

// DraftDTO Draft text response
// DraftDTO 草稿文本响应
type DraftDTO struct {
	Text string `json:"text"`
}

// NewNoteDTO builds the transport view of a note at index
// NewNoteDTO 构建位于 index 的笔记传输视图
func NewNoteDTO(note domain.Note, index int) *NoteDTO {
	out := &NoteDTO{}
	_ = copier.Copy(out, &note)
	out.Index = index
	out.Status = string(note.Status())
	return out
}

// NewNoteDTOList converts the ordered note list
// NewNoteDTOList 转换有序笔记列表
func NewNoteDTOList(notes []domain.Note) []*NoteDTO {
	out := make([]*NoteDTO, 0, len(notes))
	for i, n := range notes {
		out = append(out, NewNoteDTO(n, i))
	}
	return out
}
