package diff

// Marker is the text written around runs of deleted or inserted words.
type Marker struct {
	Prefix string
	Suffix string
}

var (
	DefaultDeletionMarker  = Marker{Prefix: "<del>", Suffix: "</del>"}
	DefaultInsertionMarker = Marker{Prefix: "<ins>", Suffix: "</ins>"}
)

// Option values influence alignment and rendering. Options that don't
// apply to an operation are ignored, so the same options can be passed
// to Align and Render.
type Option func(*options)

type options struct {
	caseFold  bool
	deletion  Marker
	insertion Marker
	escape    func(string) string
}

// WithCaseFold specifies whether words that differ only in case are
// the same word. The default is true.
func WithCaseFold(fold bool) Option {
	return func(o *options) {
		o.caseFold = fold
	}
}

// WithDeletionMarker replaces the marker around deleted words. An
// empty prefix and suffix select the default marker.
func WithDeletionMarker(prefix, suffix string) Option {
	return func(o *options) {
		o.deletion = Marker{Prefix: prefix, Suffix: suffix}
	}
}

// WithInsertionMarker replaces the marker around inserted words. An
// empty prefix and suffix select the default marker.
func WithInsertionMarker(prefix, suffix string) Option {
	return func(o *options) {
		o.insertion = Marker{Prefix: prefix, Suffix: suffix}
	}
}

// WithEscaper specifies a function applied to each word when
// rendering, e.g., html.EscapeString. Markers are not escaped.
func WithEscaper(escape func(string) string) Option {
	return func(o *options) {
		o.escape = escape
	}
}

func newOptions(opts []Option) *options {
	o := &options{caseFold: true}
	for _, opt := range opts {
		opt(o)
	}
	if o.deletion == (Marker{}) {
		o.deletion = DefaultDeletionMarker
	}
	if o.insertion == (Marker{}) {
		o.insertion = DefaultInsertionMarker
	}
	if o.escape == nil {
		o.escape = func(s string) string { return s }
	}
	return o
}
