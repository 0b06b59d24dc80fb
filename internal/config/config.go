package config

import (
	"bufio"
	"html"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nicolagi/worddiff/diff"
)

// DefaultPath is the configuration file used when none is given on
// the command line. It is $WORDDIFF_CONFIG, if set.
var DefaultPath string

func init() {
	DefaultPath = os.Getenv("WORDDIFF_CONFIG")
}

type C struct {
	// Whether words differing only in case are the same word.
	CaseFold bool

	// Empty markers select the defaults of the diff package.
	DeletionPrefix  string
	DeletionSuffix  string
	InsertionPrefix string
	InsertionSuffix string

	// Number of context words for unified output. If negative, the
	// command outputs the old and new views instead.
	Context int

	// Whether words are HTML-escaped when rendering views.
	EscapeHTML bool
}

// Default returns the configuration in effect when there's no
// configuration file.
func Default() *C {
	return &C{
		CaseFold: true,
		Context:  -1,
	}
}

// Load loads the configuration from the named file. If filename is
// empty, it returns the default configuration.
func Load(filename string) (*C, error) {
	if filename == "" {
		return Default(), nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, errorf("Load", "%w", err)
	}
	defer func() {
		// Ignore error closing file opened only for reading.
		_ = f.Close()
	}()
	c, err := load(f)
	if err != nil {
		return nil, errorf("Load", "%q: %w", filename, err)
	}
	return c, nil
}

func load(f io.Reader) (*C, error) {
	c := Default()
	s := bufio.NewScanner(f)
	for lineno := 1; s.Scan(); lineno++ {
		line := strings.TrimSpace(s.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		i := strings.IndexAny(line, " 	")
		if i == -1 {
			return nil, errorf("load", "line %d: no separator in %q", lineno, line)
		}
		key, val := line[:i], strings.TrimSpace(line[i:])
		if strings.HasPrefix(val, `"`) {
			uq, err := strconv.Unquote(val)
			if err != nil {
				return nil, errorf("load", "line %d: %s: %w", lineno, val, err)
			}
			val = uq
		}
		var err error
		switch key {
		case "case-fold":
			c.CaseFold, err = strconv.ParseBool(val)
		case "context":
			c.Context, err = strconv.Atoi(val)
		case "deletion-prefix":
			c.DeletionPrefix = val
		case "deletion-suffix":
			c.DeletionSuffix = val
		case "escape-html":
			c.EscapeHTML, err = strconv.ParseBool(val)
		case "insertion-prefix":
			c.InsertionPrefix = val
		case "insertion-suffix":
			c.InsertionSuffix = val
		default:
			return nil, errorf("load", "line %d: unknown key %q", lineno, key)
		}
		if err != nil {
			return nil, errorf("load", "line %d: %s: %w", lineno, key, err)
		}
	}
	if err := s.Err(); err != nil {
		return nil, errorf("load", "%w", err)
	}
	return c, nil
}

// Options translates the configuration to options for the diff package.
func (c *C) Options() []diff.Option {
	opts := []diff.Option{
		diff.WithCaseFold(c.CaseFold),
		diff.WithDeletionMarker(c.DeletionPrefix, c.DeletionSuffix),
		diff.WithInsertionMarker(c.InsertionPrefix, c.InsertionSuffix),
	}
	if c.EscapeHTML {
		opts = append(opts, diff.WithEscaper(html.EscapeString))
	}
	return opts
}
