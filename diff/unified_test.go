package diff_test

import (
	"errors"
	"testing"

	linediff "github.com/andreyvit/diff"
	"github.com/nicolagi/worddiff/diff"
	"github.com/stretchr/testify/assert"
)

type brokenWriter struct {
	err error
}

func (w brokenWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestUnified(t *testing.T) {
	for _, c := range []struct {
		name    string
		old     string
		new     string
		context int
		want    string
	}{
		{
			name:    "no changes",
			old:     "a b c",
			new:     "a b c",
			context: 3,
		},
		{
			name:    "nothing to compare",
			context: 3,
		},
		{
			name:    "one word replaced",
			old:     "the cat sat on the mat",
			new:     "the dog sat on the mat",
			context: 1,
			want:    "@@ -1,3 +1,3 @@\n the\n-cat\n+dog\n sat\n",
		},
		{
			name:    "distant changes make two hunks",
			old:     "a b c d e f g h",
			new:     "a X c d e f g Y",
			context: 1,
			want:    "@@ -1,3 +1,3 @@\n a\n-b\n+X\n c\n@@ -7,2 +7,2 @@\n g\n-h\n+Y\n",
		},
		{
			name:    "close changes make one hunk",
			old:     "a b c d e f g h",
			new:     "a X c d e f g Y",
			context: 3,
			want:    "@@ -1,8 +1,8 @@\n a\n-b\n+X\n c\n d\n e\n f\n g\n-h\n+Y\n",
		},
		{
			name:    "insertion without context",
			old:     "a b",
			new:     "a x b",
			context: 0,
			want:    "@@ -1,0 +2 @@\n+x\n",
		},
		{
			name:    "deletion without context",
			old:     "x a",
			new:     "a",
			context: 0,
			want:    "@@ -1 +0,0 @@\n-x\n",
		},
		{
			name:    "negative context is no context",
			old:     "x a",
			new:     "a",
			context: -5,
			want:    "@@ -1 +0,0 @@\n-x\n",
		},
		{
			name:    "insertions at the end",
			old:     "a",
			new:     "a b c",
			context: 2,
			want:    "@@ -1 +1,3 @@\n a\n+b\n+c\n",
		},
	} {
		t.Run(c.name, func(t *testing.T) {
			segments, err := diff.Diff(diff.Text(c.old), diff.Text(c.new))
			if err != nil {
				t.Fatal(err)
			}
			got, err := diff.Unified(segments, c.context)
			assert.Nil(t, err)
			if got != c.want {
				t.Errorf("unexpected output:\n%v", linediff.LineDiff(c.want, got))
			}
		})
	}
}

func TestUnifiedToPassesWriteError(t *testing.T) {
	w := brokenWriter{err: errors.New("disk full")}
	segments := diff.Align(words("a b"), words("a c"))
	err := diff.UnifiedTo(w, segments, 3)
	assert.True(t, errors.Is(err, w.err))
}

func TestUnifiedSkipsMalformedSegments(t *testing.T) {
	got, err := diff.Unified([]diff.Segment{{}, {Common: words("a")}}, 3)
	assert.Nil(t, err)
	assert.Equal(t, "", got)
}
