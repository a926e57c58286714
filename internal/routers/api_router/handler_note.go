package api_router

import (
	"github.com/haierkeys/fast-note-keep/internal/app"
	"github.com/haierkeys/fast-note-keep/internal/dto"
	pkgapp "github.com/haierkeys/fast-note-keep/pkg/app"
	"github.com/haierkeys/fast-note-keep/pkg/code"

	"github.com/gin-gonic/gin"
)

// NoteHandler 笔记 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type NoteHandler struct {
	*Handler
}

// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{Handler: NewHandler(a)}
}

// List 获取笔记列表
// @Summary 获取笔记列表
// @Description 按插入顺序返回全部笔记
// @Tags 笔记
// @Produce json
// @Success 200 {object} pkgapp.Res{data=pkgapp.ListRes{list=[]dto.NoteDTO}} "成功"
// @Router /api/notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	notes := h.App.NoteService.List()
	response.ToResponseList(code.Success, dto.NewNoteDTOList(notes), len(notes))
}

// Add 添加笔记
// @Summary 添加笔记
// @Description 追加一条笔记，空白文本不做任何修改
// @Tags 笔记
// @Accept json
// @Produce json
// @Param params body dto.NoteAddRequest true "笔记文本"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Failure 503 {object} pkgapp.Res "保存失败"
// @Router /api/notes [post]
func (h *NoteHandler) Add(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteAddRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	note, err := h.App.NoteService.Add(c.Request.Context(), *params.Text)
	if err != nil {
		h.respondError(c, "NoteHandler.Add", err)
		return
	}
	if note == nil {
		response.ToResponse(code.Success)
		return
	}
	response.ToResponse(code.Success.WithData(dto.NewNoteDTO(*note, h.App.NoteService.IndexOf(note.ID))))
}

// Toggle 切换笔记完成状态（按位置）
// @Summary 切换完成状态
// @Tags 笔记
// @Produce json
// @Param index path int true "笔记位置"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Failure 404 {object} pkgapp.Res "笔记不存在"
// @Router /api/notes/{index}/toggle [put]
func (h *NoteHandler) Toggle(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteIndexRequest{}

	valid, errs := pkgapp.BindUriAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	note, err := h.App.NoteService.Toggle(c.Request.Context(), params.Index)
	if err != nil {
		h.respondError(c, "NoteHandler.Toggle", err)
		return
	}
	response.ToResponse(code.Success.WithData(dto.NewNoteDTO(*note, params.Index)))
}

// Remove 删除笔记（按位置）
// @Summary 删除笔记
// @Tags 笔记
// @Produce json
// @Param index path int true "笔记位置"
// @Success 200 {object} pkgapp.Res "成功"
// @Failure 404 {object} pkgapp.Res "笔记不存在"
// @Router /api/notes/{index} [delete]
func (h *NoteHandler) Remove(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteIndexRequest{}

	valid, errs := pkgapp.BindUriAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	if err := h.App.NoteService.Remove(c.Request.Context(), params.Index); err != nil {
		h.respondError(c, "NoteHandler.Remove", err)
		return
	}
	response.ToResponse(code.Success)
}

// ToggleByID 切换笔记完成状态（按 ID）
// @Summary 按 ID 切换完成状态
// @Tags 笔记
// @Produce json
// @Param id path string true "笔记 ID"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Router /api/note/{id}/toggle [put]
func (h *NoteHandler) ToggleByID(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteIDRequest{}

	valid, errs := pkgapp.BindUriAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	note, err := h.App.NoteService.ToggleByID(c.Request.Context(), params.ID)
	if err != nil {
		h.respondError(c, "NoteHandler.ToggleByID", err)
		return
	}
	response.ToResponse(code.Success.WithData(dto.NewNoteDTO(*note, h.App.NoteService.IndexOf(note.ID))))
}

// RemoveByID 删除笔记（按 ID）
// @Summary 按 ID 删除笔记
// @Tags 笔记
// @Produce json
// @Param id path string true "笔记 ID"
// @Success 200 {object} pkgapp.Res "成功"
// @Router /api/note/{id} [delete]
func (h *NoteHandler) RemoveByID(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteIDRequest{}

	valid, errs := pkgapp.BindUriAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	if err := h.App.NoteService.RemoveByID(c.Request.Context(), params.ID); err != nil {
		h.respondError(c, "NoteHandler.RemoveByID", err)
		return
	}
	response.ToResponse(code.Success)
}

// Clear 清空全部笔记
// @Summary 清空笔记
// @Description 删除持久化的两个键并清空列表
// @Tags 笔记
// @Produce json
// @Success 200 {object} pkgapp.Res "成功"
// @Router /api/notes [delete]
func (h *NoteHandler) Clear(c *gin.Context) {
	if err := h.App.NoteService.Clear(c.Request.Context()); err != nil {
		h.respondError(c, "NoteHandler.Clear", err)
		return
	}
	pkgapp.NewResponse(c).ToResponse(code.Success)
}
