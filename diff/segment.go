package diff

// Segment is a unit of an alignment. A common segment has words in
// Common only. A change segment has no words in Common, and words in
// Deleted, Inserted, or both.
//
// Segments share memory with the slices passed to Align.
type Segment struct {
	Common   []string
	Deleted  []string
	Inserted []string
}

// IsCommon reports whether s is a common segment.
func (s Segment) IsCommon() bool {
	return len(s.Common) > 0
}

// OldSide reconstructs the old words from an alignment. Common words
// are in their new spelling.
func OldSide(segments []Segment) []string {
	var words []string
	for _, s := range segments {
		words = append(words, s.Common...)
		words = append(words, s.Deleted...)
	}
	return words
}

// NewSide reconstructs the new words from an alignment.
func NewSide(segments []Segment) []string {
	var words []string
	for _, s := range segments {
		words = append(words, s.Common...)
		words = append(words, s.Inserted...)
	}
	return words
}
