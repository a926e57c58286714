package code

import "net/http"

var (
	Success = NewSuss(200, lang{en: "Success", zh_cn: "成功"})

	ErrorServerInternal  = NewError(500, http.StatusInternalServerError, lang{en: "Internal Server Error", zh_cn: "服务内部错误"})
	ErrorInvalidParams   = NewError(400, http.StatusBadRequest, lang{en: "Invalid parameters", zh_cn: "参数错误"})
	ErrorNotFoundAPI     = NewError(404, http.StatusNotFound, lang{en: "API not found", zh_cn: "接口不存在"})
	ErrorTooManyRequests = NewError(429, http.StatusTooManyRequests, lang{en: "Too many requests", zh_cn: "请求过于频繁"})

	// Note store
	// 笔记存储
	ErrorNotePersist     = NewError(30001, http.StatusServiceUnavailable, lang{en: "Notes could not be saved", zh_cn: "笔记保存失败"})
	ErrorNoteNotFound    = NewError(30002, http.StatusNotFound, lang{en: "Note does not exist", zh_cn: "笔记不存在"})
	ErrorNoteDataCorrupt = NewError(30003, http.StatusInternalServerError, lang{en: "Stored notes are corrupted", zh_cn: "存储的笔记数据已损坏"})
	ErrorNoteStoreClosed = NewError(30004, http.StatusServiceUnavailable, lang{en: "Note store is not ready", zh_cn: "笔记存储未就绪"})

	// Storage backend
	// 存储后端
	ErrorInvalidStorageType = NewError(31001, http.StatusInternalServerError, lang{en: "Invalid storage type", zh_cn: "无效的存储类型"})
	ErrorStorageConfig      = NewError(31002, http.StatusInternalServerError, lang{en: "Storage is not configured", zh_cn: "存储未配置"})
)
