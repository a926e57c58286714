package routers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/haierkeys/fast-note-keep/internal/app"
	pkgapp "github.com/haierkeys/fast-note-keep/pkg/app"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testRes struct {
	Code    int             `json:"code"`
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Details string          `json:"details"`
}

type noteData struct {
	ID     string `json:"id"`
	Index  int    `json:"index"`
	Text   string `json:"text"`
	Done   int    `json:"done"`
	Status string `json:"status"`
}

type listData struct {
	List  []noteData `json:"list"`
	Total int        `json:"total"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *app.App) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := app.ParseConfig([]byte("store:\n  type: memory\napp:\n  rate-limit-capacity: 0\n"))
	require.NoError(t, err)
	a, err := app.NewApp(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, a.LoadNotes(t.Context()))

	uni, err := pkgapp.NewTranslator()
	require.NoError(t, err)
	return NewRouter(a, uni), a
}

func do(t *testing.T, r http.Handler, method, path, body string) (int, testRes) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var res testRes
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return w.Code, res
}

func TestNotesAPI(t *testing.T) {
	r, a := newTestRouter(t)

	status, res := do(t, r, http.MethodPost, "/api/notes", `{"text":"buy milk"}`)
	require.Equal(t, http.StatusOK, status)
	var added noteData
	require.NoError(t, json.Unmarshal(res.Data, &added))
	assert.Equal(t, "buy milk", added.Text)
	assert.Equal(t, 0, added.Index)
	assert.Equal(t, "active", added.Status)

	_, _ = do(t, r, http.MethodPost, "/api/notes", `{"text":"call mom"}`)

	status, res = do(t, r, http.MethodPut, "/api/notes/1/toggle", "")
	require.Equal(t, http.StatusOK, status)
	var toggled noteData
	require.NoError(t, json.Unmarshal(res.Data, &toggled))
	assert.Equal(t, 1, toggled.Done)
	assert.Equal(t, "completed", toggled.Status)

	status, res = do(t, r, http.MethodGet, "/api/notes", "")
	require.Equal(t, http.StatusOK, status)
	var list listData
	require.NoError(t, json.Unmarshal(res.Data, &list))
	require.Len(t, list.List, 2)
	assert.Equal(t, 2, list.Total)

	status, _ = do(t, r, http.MethodDelete, "/api/note/"+added.ID, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, a.NoteService.Len())

	status, _ = do(t, r, http.MethodDelete, "/api/notes/0", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, a.NoteService.Len())
}

func TestNotesAPI_Errors(t *testing.T) {
	r, _ := newTestRouter(t)

	status, res := do(t, r, http.MethodDelete, "/api/notes/7", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, 30002, res.Code)

	status, res = do(t, r, http.MethodPut, "/api/notes/abc/toggle", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, 400, res.Code)

	status, _ = do(t, r, http.MethodPut, "/api/note/not-a-uuid/toggle", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, res = do(t, r, http.MethodPost, "/api/notes", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, res.Details, "text")

	status, res = do(t, r, http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, 404, res.Code)
}

func TestNotesAPI_BlankTextIsNoop(t *testing.T) {
	r, a := newTestRouter(t)

	for _, body := range []string{`{"text":""}`, `{"text":"   "}`} {
		status, res := do(t, r, http.MethodPost, "/api/notes", body)
		assert.Equal(t, http.StatusOK, status, body)
		assert.True(t, res.Status, body)
		assert.Empty(t, res.Data, body)
	}
	assert.Equal(t, 0, a.NoteService.Len())

	status, res := do(t, r, http.MethodPost, "/api/draft/submit", "")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, res.Status)
	assert.Equal(t, 0, a.NoteService.Len())
}

func TestDraftAPI(t *testing.T) {
	r, a := newTestRouter(t)

	status, _ := do(t, r, http.MethodPut, "/api/draft", `{"text":"from draft"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "from draft", a.NoteService.Draft())

	status, res := do(t, r, http.MethodPost, "/api/draft/submit", "")
	require.Equal(t, http.StatusOK, status)
	var added noteData
	require.NoError(t, json.Unmarshal(res.Data, &added))
	assert.Equal(t, "from draft", added.Text)

	_, res = do(t, r, http.MethodGet, "/api/draft", "")
	assert.JSONEq(t, `{"text":""}`, string(res.Data))
}

func TestClearAPI(t *testing.T) {
	r, a := newTestRouter(t)
	_, _ = do(t, r, http.MethodPost, "/api/notes", `{"text":"a"}`)

	status, _ := do(t, r, http.MethodDelete, "/api/notes", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, a.NoteService.Len())
}

func TestSystemAPI(t *testing.T) {
	r, _ := newTestRouter(t)

	status, res := do(t, r, http.MethodGet, "/api/version", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(res.Data), app.Version)

	status, res = do(t, r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(res.Data), `"store":"memory"`)
}

func TestTraceHeader(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("X-Trace-ID", "trace-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "trace-1", w.Header().Get("X-Trace-ID"))
}

func TestLangHeader(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/notes/3", nil)
	req.Header.Set("lang", "zh-CN")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), "笔记不存在")
}

func TestPrivateRouter(t *testing.T) {
	r := NewPrivateRouterWithLogger("release", zap.NewNop())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/vars", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "memstats")
}
