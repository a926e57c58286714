package api_router

import (
	"github.com/haierkeys/fast-note-keep/internal/app"
	"github.com/haierkeys/fast-note-keep/internal/dto"
	pkgapp "github.com/haierkeys/fast-note-keep/pkg/app"
	"github.com/haierkeys/fast-note-keep/pkg/code"

	"github.com/gin-gonic/gin"
)

// DraftHandler 草稿 API 路由处理器
type DraftHandler struct {
	*Handler
}

// NewDraftHandler 创建 DraftHandler 实例
func NewDraftHandler(a *app.App) *DraftHandler {
	return &DraftHandler{Handler: NewHandler(a)}
}

// Get 获取草稿
// @Summary 获取草稿文本
// @Tags 草稿
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.DraftDTO} "成功"
// @Router /api/draft [get]
func (h *DraftHandler) Get(c *gin.Context) {
	pkgapp.NewResponse(c).ToResponse(code.Success.WithData(dto.DraftDTO{Text: h.App.NoteService.Draft()}))
}

// Set 更新草稿
// @Summary 更新草稿文本
// @Tags 草稿
// @Accept json
// @Produce json
// @Param params body dto.DraftRequest true "草稿文本"
// @Success 200 {object} pkgapp.Res{data=dto.DraftDTO} "成功"
// @Router /api/draft [put]
func (h *DraftHandler) Set(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.DraftRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	h.App.NoteService.SetDraft(params.Text)
	response.ToResponse(code.Success.WithData(dto.DraftDTO{Text: params.Text}))
}

// Submit 提交草稿为新笔记
// @Summary 提交草稿
// @Description 以当前草稿文本添加笔记，成功后清空草稿
// @Tags 草稿
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Failure 503 {object} pkgapp.Res "保存失败"
// @Router /api/draft/submit [post]
func (h *DraftHandler) Submit(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	note, err := h.App.NoteService.Submit(c.Request.Context())
	if err != nil {
		h.respondError(c, "DraftHandler.Submit", err)
		return
	}
	if note == nil {
		response.ToResponse(code.Success)
		return
	}
	response.ToResponse(code.Success.WithData(dto.NewNoteDTO(*note, h.App.NoteService.IndexOf(note.ID))))
}
