package diff

import (
	"sort"

	"github.com/nicolagi/worddiff/normalize"
)

// Align computes the alignment of two word sequences. If both are
// empty, the alignment is empty. Otherwise, concatenating the common
// and deleted words of each segment gives back oldWords, and
// concatenating the common and inserted words gives back newWords
// (common words are always taken from newWords).
//
// Of the longest common runs, the first one in oldWords wins, and of
// its matches, the first one in newWords.
func Align(oldWords, newWords []string, opts ...Option) []Segment {
	o := newOptions(opts)
	a := newAligner(oldWords, newWords, normalize.New(normalize.WithCaseFold(o.caseFold)))
	a.align(0, len(oldWords), 0, len(newWords))
	return a.segments
}

type aligner struct {
	old []string
	new []string

	oldKeys []string

	// For each key, the positions in new of words with that key, in
	// increasing order.
	positions map[string][]int

	segments []Segment
}

func newAligner(oldWords, newWords []string, n *normalize.Normalizer) *aligner {
	a := &aligner{
		old:       oldWords,
		new:       newWords,
		oldKeys:   make([]string, len(oldWords)),
		positions: make(map[string][]int),
	}
	for j, w := range newWords {
		k := n.Key(w)
		a.positions[k] = append(a.positions[k], j)
	}
	for i, w := range oldWords {
		a.oldKeys[i] = n.Key(w)
	}
	return a
}

// align appends the segments for old[o0:o1] and new[n0:n1].
func (a *aligner) align(o0, o1, n0, n1 int) {
	if o0 == o1 && n0 == n1 {
		return
	}
	oStart, nStart, length := a.longest(o0, o1, n0, n1)
	if length == 0 {
		a.segments = append(a.segments, Segment{
			Deleted:  span(a.old, o0, o1),
			Inserted: span(a.new, n0, n1),
		})
		return
	}
	a.align(o0, oStart, n0, nStart)
	a.segments = append(a.segments, Segment{
		Common: span(a.new, nStart, nStart+length),
	})
	a.align(oStart+length, o1, nStart+length, n1)
}

// longest finds the longest common run of old[o0:o1] and new[n0:n1].
// Only matching positions are tracked: runs maps a position in new to
// the length of the run ending there and at the previous old position.
func (a *aligner) longest(o0, o1, n0, n1 int) (oStart, nStart, length int) {
	var runs map[int]int
	for i := o0; i < o1; i++ {
		var next map[int]int
		ps := a.positions[a.oldKeys[i]]
		for k := sort.SearchInts(ps, n0); k < len(ps) && ps[k] < n1; k++ {
			j := ps[k]
			if next == nil {
				next = make(map[int]int)
			}
			l := runs[j-1] + 1
			next[j] = l
			if l > length {
				length = l
				oStart = i + 1 - l
				nStart = j + 1 - l
			}
		}
		runs = next
	}
	return oStart, nStart, length
}

func span(words []string, i, j int) []string {
	if i == j {
		return nil
	}
	return words[i:j:j]
}
