// Package diff computes word-level differences between two texts and
// renders them as a pair of annotated strings: the old text with
// deletions marked and the new text with insertions marked.
//
// Alignment is the simple longest-common-run algorithm (see
// https://github.com/paulgb/simplediff): find the longest run of
// words common to both inputs, then recurse on what's on its left and
// on its right. Words are compared by their keys as computed by
// package normalize, so that "Café" and "CAFE" are the same word.
// When matched words differ in spelling, the output carries the new
// spelling.
//
// Rendering does not escape words. Callers that produce HTML should
// pass WithEscaper(html.EscapeString) or escape the words themselves.
package diff
