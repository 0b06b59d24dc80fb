// Package normalize turns words into comparison keys. Two words are
// considered the same word when their keys are equal: the key ignores
// accents and other diacritics, drops symbols that have no letter
// equivalent, and (by default) ignores case.
//
// Keys are meant for equality tests only. They are not meant to be
// displayed, nor normalized again.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/norm"
)

// Letters that don't decompose into a base letter plus marks, but
// that are conventionally written with plain Latin letters.
var folds = map[rune]string{
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ß': "sz", 'ẞ': "SZ",
	'ø': "o", 'Ø': "O",
	'ð': "e", 'Ð': "E",
	'þ': "t", 'Þ': "T",
	'ł': "l", 'Ł': "L",
	'đ': "d", 'Đ': "D",
}

var marks = runes.In(unicode.Mn)

// Option values influence the behavior of New.
type Option func(*Normalizer)

// WithCaseFold specifies whether keys ignore case. The default is true.
func WithCaseFold(fold bool) Option {
	return func(n *Normalizer) {
		n.caseFold = fold
	}
}

// Normalizer computes comparison keys. The zero value does not fold
// case; use New for the defaults. A Normalizer is not safe for
// concurrent use.
type Normalizer struct {
	caseFold bool
	upper    cases.Caser
}

// New returns a Normalizer configured by opts.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{caseFold: true}
	for _, opt := range opts {
		opt(n)
	}
	if n.caseFold {
		n.upper = cases.Upper(language.Und)
	}
	return n
}

// Key returns the comparison key for token. It never fails: runes
// that can't be reduced to letters are dropped, so the key of a
// token made only of symbols is the empty string.
func (n *Normalizer) Key(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for _, r := range norm.NFD.String(token) {
		if marks.Contains(r) || dropped(r) {
			continue
		}
		if s, ok := folds[r]; ok {
			b.WriteString(s)
			continue
		}
		b.WriteRune(r)
	}
	key := b.String()
	if n.caseFold {
		key = n.upper.String(key)
	}
	return key
}

// Equal reports whether a and b have the same key.
func (n *Normalizer) Equal(a, b string) bool {
	return n.Key(a) == n.Key(b)
}

// Key returns the comparison key of token using the default options.
func Key(token string) string {
	return New().Key(token)
}

// Markup characters are dropped, as is any non-ASCII symbol or
// punctuation (©, €, «, ·, ...). ASCII punctuation stays.
func dropped(r rune) bool {
	switch r {
	case '&', '<', '>':
		return true
	}
	return r > unicode.MaxASCII && (unicode.IsSymbol(r) || unicode.IsPunct(r))
}
