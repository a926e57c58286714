package aws_s3

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 serves path-style PUT, GET and DELETE object requests from a map
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[r.URL.Path] = body
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		body, ok := f.objects[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		_, _ = w.Write(body)
	case http.MethodDelete:
		delete(f.objects, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeS3) has(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[path]
	return ok
}

func TestNewClient_RequiresBucket(t *testing.T) {
	_, err := NewClient(&Config{Region: "auto"})
	assert.Error(t, err)
}

func TestObjectKey(t *testing.T) {
	p, err := NewClient(&Config{
		Region:       "auto",
		Endpoint:     "http://127.0.0.1:9000",
		BucketName:   "notes",
		CustomPath:   "keep/",
		UsePathStyle: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "keep/done.json", p.objectKey("done"))
}

func TestS3_SetGetDelete(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	p, err := NewClient(&Config{
		Region:          "auto",
		Endpoint:        srv.URL,
		BucketName:      "notes",
		AccessKeyID:     "key",
		AccessKeySecret: "secret",
		CustomPath:      "keep",
		UsePathStyle:    true,
	})
	require.NoError(t, err)
	ctx := context.Background()

	_, ok, err := p.Get(ctx, "notes")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.Set(ctx, "notes", `["buy milk"]`))
	assert.True(t, fake.has("/notes/keep/notes.json"))

	v, ok, err := p.Get(ctx, "notes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["buy milk"]`, v)

	require.NoError(t, p.Delete(ctx, "notes"))
	_, ok, err = p.Get(ctx, "notes")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.Delete(ctx, "notes"))
}
