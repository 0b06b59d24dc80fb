package diff

import (
	"bytes"
	"io"
)

// Unified wraps UnifiedTo to return a string instead of writing it to a writer.
func Unified(segments []Segment, contextWords int) (string, error) {
	var buf bytes.Buffer
	err := UnifiedTo(&buf, segments, contextWords)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// UnifiedTo writes an alignment in the unified diff format, one word
// per line, with contextWords words of context around changes. Hunk
// locations count words rather than lines. Nothing is written if the
// alignment has no changes.
func UnifiedTo(w io.Writer, segments []Segment, contextWords int) error {
	if contextWords < 0 {
		contextWords = 0
	}

	// While processing lines, we're either in a hunk or in common segment. The
	// hunk is nil if we are in a common segment.
	var hunk *hunk

	// When we're not in the middle of a hunk, we keep the most recent common
	// lines in a ring buffer. When starting a new hunk, the common lines will
	// be backfilled into the hunk and the ring buffer will be emptied out.
	common := newRingBuffer(contextWords)

	var leftOffset, rightOffset int
	for _, s := range segments {
		for _, word := range s.Common {
			line := " " + word
			if hunk != nil {
				hunk.appendCommon(line)
				if hunk.isComplete() {
					for _, line := range hunk.trim() {
						common.enqueue(line)
					}
					if err := hunk.printTo(w); err != nil {
						return err
					}
					hunk = nil
				}
			} else {
				common.enqueue(line)
			}
			leftOffset++
			rightOffset++
		}
		if hunk == nil && (len(s.Deleted) > 0 || len(s.Inserted) > 0) {
			hunk = newHunk(leftOffset, rightOffset, common.dequeueAll(), contextWords)
		}
		for _, word := range s.Deleted {
			hunk.appendLeft("-" + word)
			leftOffset++
		}
		for _, word := range s.Inserted {
			hunk.appendRight("+" + word)
			rightOffset++
		}
	}
	if hunk != nil {
		hunk.trim()
		return hunk.printTo(w)
	}
	return nil
}
