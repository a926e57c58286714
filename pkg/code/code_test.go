package code

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDetailsDoesNotMutateRegisteredCode(t *testing.T) {
	c := ErrorInvalidParams.WithDetails("text is required")

	assert.Equal(t, []string{"text is required"}, c.Details())
	assert.Empty(t, ErrorInvalidParams.Details())
	assert.Equal(t, ErrorInvalidParams.Code(), c.Code())
}

func TestCodeIs(t *testing.T) {
	wrapped := fmt.Errorf("remove: %w", ErrorNoteNotFound.WithDetails("index 4"))

	assert.True(t, errors.Is(wrapped, ErrorNoteNotFound))
	assert.False(t, errors.Is(wrapped, ErrorNotePersist))
}

func TestLanguageFallback(t *testing.T) {
	t.Cleanup(func() { _ = SetGlobalDefaultLang(FALLBACK_LNG) })

	assert.NoError(t, SetGlobalDefaultLang("zh_cn"))
	assert.Equal(t, "笔记不存在", ErrorNoteNotFound.Msg())

	assert.Error(t, SetGlobalDefaultLang("fr"))
	assert.Equal(t, "Note does not exist", ErrorNoteNotFound.Msg())
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusOK, Success.StatusCode())
	assert.Equal(t, http.StatusServiceUnavailable, ErrorNotePersist.StatusCode())
}
