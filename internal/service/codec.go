package service

import (
	"fmt"

	"github.com/haierkeys/fast-note-keep/internal/domain"

	"github.com/bytedance/sonic"
)

// encodeNotes splits the records into the two persisted JSON arrays
func encodeNotes(notes []domain.Note) (texts string, done string, err error) {
	textList := make([]string, 0, len(notes))
	doneList := make([]int, 0, len(notes))
	for _, n := range notes {
		textList = append(textList, n.Text)
		doneList = append(doneList, n.Done)
	}
	if texts, err = sonic.MarshalString(textList); err != nil {
		return "", "", err
	}
	if done, err = sonic.MarshalString(doneList); err != nil {
		return "", "", err
	}
	return texts, done, nil
}

func decodeTexts(value string) ([]string, error) {
	var texts []string
	if value == "" {
		return texts, nil
	}
	if err := sonic.UnmarshalString(value, &texts); err != nil {
		return nil, err
	}
	return texts, nil
}

func decodeDone(value string) ([]int, error) {
	var done []int
	if value == "" {
		return done, nil
	}
	if err := sonic.UnmarshalString(value, &done); err != nil {
		return nil, err
	}
	for i, d := range done {
		if d != domain.DoneActive && d != domain.DoneCompleted {
			return nil, fmt.Errorf("done flag %d at index %d is not 0 or 1", d, i)
		}
	}
	return done, nil
}
