package dto

import (
	"testing"

	"github.com/haierkeys/fast-note-keep/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNewNoteDTO(t *testing.T) {
	d := NewNoteDTO(domain.Note{ID: "x", Text: "buy milk", Done: domain.DoneCompleted}, 3)
	assert.Equal(t, &NoteDTO{ID: "x", Index: 3, Text: "buy milk", Done: 1, Status: "completed"}, d)
}

func TestNewNoteDTOList(t *testing.T) {
	list := NewNoteDTOList([]domain.Note{{ID: "a", Text: "a"}, {ID: "b", Text: "b"}})
	if assert.Len(t, list, 2) {
		assert.Equal(t, 0, list[0].Index)
		assert.Equal(t, 1, list[1].Index)
		assert.Equal(t, "active", list[1].Status)
	}
}
