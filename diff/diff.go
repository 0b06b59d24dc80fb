package diff

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Diff splits both sources into words and aligns them.
func Diff(oldSource, newSource Source, opts ...Option) ([]Segment, error) {
	oldWords, err := oldSource.Tokens()
	if err != nil {
		return nil, fmt.Errorf("old: %w", err)
	}
	newWords, err := newSource.Tokens()
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	segments := Align(oldWords, newWords, opts...)
	log.WithFields(log.Fields{
		"old":      len(oldWords),
		"new":      len(newWords),
		"segments": len(segments),
	}).Debug("Aligned")
	return segments, nil
}

// DiffText wraps Diff and Render for the common case of two raw texts.
func DiffText(oldText, newText string, opts ...Option) (Views, error) {
	segments, err := Diff(Text(oldText), Text(newText), opts...)
	if err != nil {
		return Views{}, err
	}
	return Render(segments, opts...), nil
}
