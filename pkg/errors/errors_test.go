package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/haierkeys/fast-note-keep/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMatchesCode(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("add note: %w", Wrap(code.ErrorNotePersist, cause, "set notes"))

	assert.True(t, errors.Is(err, code.ErrorNotePersist))
	assert.False(t, errors.Is(err, code.ErrorNoteNotFound))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "set notes: disk full")
}

func TestToCode(t *testing.T) {
	c := ToCode(NewAppError(code.ErrorNoteNotFound, nil).WithDetails("index 3"))
	require.NotNil(t, c)
	assert.Equal(t, code.ErrorNoteNotFound.Code(), c.Code())
	assert.Equal(t, []string{"index 3"}, c.Details())

	assert.Equal(t, code.ErrorInvalidParams.Code(), ToCode(code.ErrorInvalidParams).Code())
	assert.Equal(t, code.ErrorServerInternal.Code(), ToCode(errors.New("boom")).Code())
}
