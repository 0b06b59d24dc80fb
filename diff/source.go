package diff

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Source is something that can be diffed: raw text to be split into
// words, or words already split by the caller.
type Source interface {
	// Tokens returns the words to compare. The returned slice is
	// not modified by this package.
	Tokens() ([]string, error)
}

// Text is raw text. Words are separated by runs of white space.
type Text string

func (t Text) Tokens() ([]string, error) {
	return Tokenize(string(t))
}

// Bytes is raw text, as read from a file, for instance.
type Bytes []byte

func (b Bytes) Tokens() ([]string, error) {
	return Tokenize(string(b))
}

// Tokens are words split by the caller. They are compared as they
// are, even if empty or containing white space.
type Tokens []string

func (t Tokens) Tokens() ([]string, error) {
	return t, nil
}

// Tokenize splits text around each run of white space. Leading and
// trailing white space is ignored, so a blank text has no words. The
// text must be valid UTF-8.
func Tokenize(text string) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, errors.Wrapf(ErrInvalidEncoding, "at byte %d", invalidOffset(text))
	}
	return strings.Fields(text), nil
}

func invalidOffset(text string) int {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
