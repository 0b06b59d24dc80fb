package config

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nicolagi/worddiff/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.Nil(t, err)
	assert.Equal(t, &C{CaseFold: true, Context: -1}, c)
}

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "worddiff")
	require.Nil(t, err)
	defer func() {
		_ = os.RemoveAll(dir)
	}()
	filename := filepath.Join(dir, "config")
	contents := `
# plain text markers
deletion-prefix [-
deletion-suffix -]
insertion-prefix "{+ "
insertion-suffix " +}"
	case-fold   false
context 3
escape-html true
`
	require.Nil(t, ioutil.WriteFile(filename, []byte(contents), 0600))
	c, err := Load(filename)
	require.Nil(t, err)
	assert.Equal(t, &C{
		CaseFold:        false,
		DeletionPrefix:  "[-",
		DeletionSuffix:  "-]",
		InsertionPrefix: "{+ ",
		InsertionSuffix: " +}",
		Context:         3,
		EscapeHTML:      true,
	}, c)
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(os.TempDir(), "worddiff-does-not-exist", "config"))
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadErrors(t *testing.T) {
	for _, c := range []struct {
		input string
		want  string
	}{
		{"context", `line 1: no separator in "context"`},
		{"\n\ncolour red", `line 3: unknown key "colour"`},
		{"case-fold maybe", "line 1: case-fold"},
		{"context three", "line 1: context"},
		{`deletion-prefix "unterminated`, "line 1"},
	} {
		_, err := load(strings.NewReader(c.input))
		if assert.NotNil(t, err, c.input) {
			assert.Contains(t, err.Error(), c.want)
			assert.True(t, strings.HasPrefix(err.Error(), "github.com/nicolagi/worddiff/internal/config.load: "))
		}
	}
}

func TestOptions(t *testing.T) {
	c := &C{
		CaseFold:        false,
		DeletionPrefix:  "[-",
		DeletionSuffix:  "-]",
		InsertionPrefix: "{+",
		InsertionSuffix: "+}",
		EscapeHTML:      true,
	}
	opts := c.Options()
	views := diff.Render(diff.Align([]string{"a&b", "X"}, []string{"a&b", "x"}, opts...), opts...)
	assert.Equal(t, diff.Views{
		Old: "a&amp;b [-X-] ",
		New: "a&amp;b {+x+} ",
	}, views)
}

func TestDefaultOptions(t *testing.T) {
	opts := Default().Options()
	views := diff.Render(diff.Align([]string{"<b>", "X"}, []string{"Y", "x"}, opts...), opts...)
	assert.Equal(t, diff.Views{
		Old: "<del><b></del> x ",
		New: "<ins>Y</ins> x ",
	}, views)
}
