package diff

import "strings"

// Views holds the rendered old and new texts.
type Views struct {
	Old string
	New string
}

// Render renders an alignment. Each common segment is written to both
// views, each run of deleted words is written to the old view within
// the deletion marker, and each run of inserted words is written to the
// new view within the insertion marker. Words are separated by a
// single space and every segment is followed by one.
func Render(segments []Segment, opts ...Option) Views {
	o := newOptions(opts)
	var oldView, newView strings.Builder
	for _, s := range segments {
		if s.IsCommon() {
			text := o.join(s.Common)
			oldView.WriteString(text)
			oldView.WriteByte(' ')
			newView.WriteString(text)
			newView.WriteByte(' ')
			continue
		}
		if len(s.Deleted) > 0 {
			o.deletion.writeTo(&oldView, o.join(s.Deleted))
		}
		if len(s.Inserted) > 0 {
			o.insertion.writeTo(&newView, o.join(s.Inserted))
		}
	}
	return Views{Old: oldView.String(), New: newView.String()}
}

func (o *options) join(words []string) string {
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = o.escape(w)
	}
	return strings.Join(escaped, " ")
}

func (m Marker) writeTo(b *strings.Builder, text string) {
	b.WriteString(m.Prefix)
	b.WriteString(text)
	b.WriteString(m.Suffix)
	b.WriteByte(' ')
}
