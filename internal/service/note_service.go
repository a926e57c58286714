package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/haierkeys/fast-note-keep/internal/domain"
	"github.com/haierkeys/fast-note-keep/pkg/code"
	apperrors "github.com/haierkeys/fast-note-keep/pkg/errors"
	"github.com/haierkeys/fast-note-keep/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NoteService note store business interface
// NoteService 笔记存储业务接口
type NoteService interface {
	// Load reads both persisted lists and replaces the in-memory list
	// Load 读取持久化列表并替换内存列表
	Load(ctx context.Context) error
	// Add appends a note; blank text is a no-op returning nil
	// Add 追加笔记，空白文本不做任何操作并返回 nil
	Add(ctx context.Context, text string) (*domain.Note, error)
	// Submit adds the current draft text
	// Submit 提交当前草稿
	Submit(ctx context.Context) (*domain.Note, error)
	Remove(ctx context.Context, index int) error
	RemoveByID(ctx context.Context, id string) error
	Toggle(ctx context.Context, index int) (*domain.Note, error)
	ToggleByID(ctx context.Context, id string) (*domain.Note, error)
	// Clear removes both keys from the backend and empties the list
	// Clear 删除后端两个键并清空列表
	Clear(ctx context.Context) error

	List() []domain.Note
	Get(index int) (domain.Note, bool)
	IndexOf(id string) int
	Len() int
	Draft() string
	SetDraft(text string)
}

type noteService struct {
	kv     domain.KVStore
	config NoteServiceConfig
	logger *zap.Logger

	// writeMu serializes mutators so only one persistence round trip runs at a time
	writeMu sync.Mutex

	mu    sync.RWMutex
	notes []domain.Note
	draft string
}

// NewNoteService creates a NoteService backed by kv
// NewNoteService 创建基于 kv 的 NoteService
func NewNoteService(kv domain.KVStore, config NoteServiceConfig, lg *zap.Logger) NoteService {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &noteService{
		kv:     kv,
		config: config.withDefaults(),
		logger: lg,
		notes:  []domain.Note{},
	}
}

func (s *noteService) Load(ctx context.Context) (err error) {
	defer func() { observeOp("load", err) }()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.config.PersistTimeout)
	defer cancel()

	textValue, _, err := s.kv.Get(ctx, s.config.NotesKey)
	if err != nil {
		return apperrors.Wrap(code.ErrorNotePersist, err, "read "+s.config.NotesKey)
	}
	doneValue, _, err := s.kv.Get(ctx, s.config.DoneKey)
	if err != nil {
		return apperrors.Wrap(code.ErrorNotePersist, err, "read "+s.config.DoneKey)
	}

	texts, err := decodeTexts(textValue)
	if err != nil {
		return apperrors.Wrap(code.ErrorNoteDataCorrupt, err, "decode "+s.config.NotesKey).WithDetails(s.config.NotesKey)
	}
	done, err := decodeDone(doneValue)
	if err != nil {
		return apperrors.Wrap(code.ErrorNoteDataCorrupt, err, "decode "+s.config.DoneKey).WithDetails(s.config.DoneKey)
	}

	if len(texts) != len(done) {
		s.logger.Warn("stored note lists differ in length",
			zap.Int("notes", len(texts)),
			zap.Int("done", len(done)))
	}

	notes := make([]domain.Note, 0, len(texts))
	for i, text := range texts {
		flag := domain.DoneActive
		if i < len(done) {
			flag = done[i]
		}
		notes = append(notes, domain.Note{ID: uuid.NewString(), Text: text, Done: flag})
	}

	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()
	noteCount.Set(float64(len(notes)))

	s.logger.Info("notes loaded", zap.Int(logger.FieldCount, len(notes)))
	return nil
}

func (s *noteService) Add(ctx context.Context, text string) (note *domain.Note, err error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	defer func() { observeOp("add", err) }()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	created := domain.Note{ID: uuid.NewString(), Text: text, Done: domain.DoneActive}
	next := append(s.snapshot(), created)

	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.notes = next
	s.draft = ""
	s.mu.Unlock()
	noteCount.Set(float64(len(next)))

	s.logger.Debug("note added", zap.String(logger.FieldNoteID, created.ID), zap.Int(logger.FieldIndex, len(next)-1))
	return &created, nil
}

func (s *noteService) Submit(ctx context.Context) (*domain.Note, error) {
	return s.Add(ctx, s.Draft())
}

func (s *noteService) Remove(ctx context.Context, index int) (err error) {
	defer func() { observeOp("remove", err) }()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.removeAt(ctx, index)
}

func (s *noteService) RemoveByID(ctx context.Context, id string) (err error) {
	defer func() { observeOp("remove", err) }()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	index := s.IndexOf(id)
	if index < 0 {
		return notFoundByID(id)
	}
	return s.removeAt(ctx, index)
}

// removeAt expects writeMu to be held
func (s *noteService) removeAt(ctx context.Context, index int) error {
	current := s.snapshot()
	if index < 0 || index >= len(current) {
		return notFoundByIndex(index)
	}
	removed := current[index]
	next := append(current[:index:index], current[index+1:]...)

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.mu.Lock()
	s.notes = next
	s.mu.Unlock()
	noteCount.Set(float64(len(next)))

	s.logger.Debug("note removed", zap.String(logger.FieldNoteID, removed.ID), zap.Int(logger.FieldIndex, index))
	return nil
}

func (s *noteService) Toggle(ctx context.Context, index int) (note *domain.Note, err error) {
	defer func() { observeOp("toggle", err) }()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.toggleAt(ctx, index)
}

func (s *noteService) ToggleByID(ctx context.Context, id string) (note *domain.Note, err error) {
	defer func() { observeOp("toggle", err) }()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	index := s.IndexOf(id)
	if index < 0 {
		return nil, notFoundByID(id)
	}
	return s.toggleAt(ctx, index)
}

// toggleAt expects writeMu to be held
func (s *noteService) toggleAt(ctx context.Context, index int) (*domain.Note, error) {
	next := s.snapshot()
	if index < 0 || index >= len(next) {
		return nil, notFoundByIndex(index)
	}
	next[index].Done = domain.DoneCompleted - next[index].Done

	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.notes = next
	s.mu.Unlock()

	toggled := next[index]
	s.logger.Debug("note toggled",
		zap.String(logger.FieldNoteID, toggled.ID),
		zap.Int(logger.FieldIndex, index),
		zap.String("status", string(toggled.Status())))
	return &toggled, nil
}

func (s *noteService) Clear(ctx context.Context) (err error) {
	defer func() { observeOp("clear", err) }()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.config.PersistTimeout)
	defer cancel()

	for _, key := range []string{s.config.NotesKey, s.config.DoneKey} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return apperrors.Wrap(code.ErrorNotePersist, err, "delete "+key)
		}
	}

	s.mu.Lock()
	s.notes = []domain.Note{}
	s.mu.Unlock()
	noteCount.Set(0)

	s.logger.Info("notes cleared")
	return nil
}

func (s *noteService) List() []domain.Note {
	return s.snapshot()
}

func (s *noteService) Get(index int) (domain.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.notes) {
		return domain.Note{}, false
	}
	return s.notes[index], true
}

func (s *noteService) IndexOf(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

func (s *noteService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

func (s *noteService) Draft() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

func (s *noteService) SetDraft(text string) {
	s.mu.Lock()
	s.draft = text
	s.mu.Unlock()
}

func (s *noteService) snapshot() []domain.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// persist writes the full list to both keys. The in-memory list is untouched;
// callers commit only after a nil return.
func (s *noteService) persist(ctx context.Context, next []domain.Note) error {
	start := time.Now()
	defer func() { notePersistDuration.Observe(time.Since(start).Seconds()) }()

	ctx, cancel := context.WithTimeout(ctx, s.config.PersistTimeout)
	defer cancel()

	texts, done, err := encodeNotes(next)
	if err != nil {
		return apperrors.Wrap(code.ErrorNotePersist, err, "encode notes")
	}

	if batch, ok := s.kv.(domain.BatchKVStore); ok {
		err := batch.SetBatch(ctx, []domain.KVPair{
			{Key: s.config.NotesKey, Value: texts},
			{Key: s.config.DoneKey, Value: done},
		})
		if err != nil {
			s.logger.Error("persist notes failed", zap.Error(err))
			return apperrors.Wrap(code.ErrorNotePersist, err, "write notes batch")
		}
		return nil
	}

	if err := s.kv.Set(ctx, s.config.NotesKey, texts); err != nil {
		s.logger.Error("persist notes failed", zap.String(logger.FieldKey, s.config.NotesKey), zap.Error(err))
		return apperrors.Wrap(code.ErrorNotePersist, err, "write "+s.config.NotesKey)
	}
	if err := s.kv.Set(ctx, s.config.DoneKey, done); err != nil {
		s.logger.Error("persist notes failed", zap.String(logger.FieldKey, s.config.DoneKey), zap.Error(err))
		s.restoreNotesKey(ctx)
		return apperrors.Wrap(code.ErrorNotePersist, err, "write "+s.config.DoneKey)
	}
	return nil
}

// restoreNotesKey rewrites the notes key from the committed list after a
// failed done write, keeping the stored arrays aligned.
func (s *noteService) restoreNotesKey(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.PersistTimeout)
	defer cancel()

	texts, _, err := encodeNotes(s.snapshot())
	if err == nil {
		err = s.kv.Set(ctx, s.config.NotesKey, texts)
	}
	if err != nil {
		s.logger.Error("restore notes key failed", zap.String(logger.FieldKey, s.config.NotesKey), zap.Error(err))
	}
}

func notFoundByIndex(index int) error {
	return apperrors.NewAppError(code.ErrorNoteNotFound, nil).WithDetails("index " + strconv.Itoa(index))
}

func notFoundByID(id string) error {
	return apperrors.NewAppError(code.ErrorNoteNotFound, nil).WithDetails("id " + id)
}
