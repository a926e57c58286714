package cmd

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/haierkeys/fast-note-keep/pkg/safe_close"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newIdleServer() *Server {
	return &Server{logger: zap.NewNop(), sc: safe_close.NewSafeClose()}
}

func TestReloadServer_SwapsServer(t *testing.T) {
	old, next := newIdleServer(), newIdleServer()
	var current atomic.Pointer[Server]
	current.Store(old)

	require.NoError(t, reloadServer(&current, func() (*Server, error) { return next, nil }))
	assert.Same(t, next, current.Load())

	select {
	case <-old.sc.CloseSignal():
	default:
		t.Fatal("old server was not closed")
	}
}

func TestReloadServer_BuildFailureIsReturned(t *testing.T) {
	old := newIdleServer()
	var current atomic.Pointer[Server]
	current.Store(old)

	errBuild := errors.New("bad config")
	err := reloadServer(&current, func() (*Server, error) { return nil, errBuild })
	assert.ErrorIs(t, err, errBuild)
	assert.Same(t, old, current.Load())
}
