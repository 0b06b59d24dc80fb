// Command worddiff compares pairs of text files word by word.
//
// For each pair, it prints the old text with deleted words marked and
// the new text with inserted words marked, or, with -U, a unified diff
// with one word per line.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/nicolagi/worddiff/diff"
	"github.com/nicolagi/worddiff/internal/config"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	// To set this at build time, use go build -ldflags '-X main.version=something'.
	version = "unknown"

	globalContext struct {
		config   string
		logLevel string
		version  bool

		// These override the configuration file, if given.
		context  int
		html     bool
		caseFold bool
	}
)

type pair struct {
	old string
	new string
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("worddiff", flag.ExitOnError)
	fs.StringVar(&globalContext.config, "config", config.DefaultPath, "configuration `file`, defaults to $WORDDIFF_CONFIG")
	var levels []string
	for _, l := range log.AllLevels {
		levels = append(levels, l.String())
	}
	fs.StringVar(&globalContext.logLevel, "verbosity", "warning", "sets the log `level`, among "+strings.Join(levels, ", "))
	fs.BoolVar(&globalContext.version, "version", false, "show version information")
	fs.IntVar(&globalContext.context, "U", -1, "output a unified diff with `count` words of context")
	fs.BoolVar(&globalContext.html, "html", false, "escape words for HTML")
	fs.BoolVar(&globalContext.caseFold, "i", true, "ignore case when comparing words")
	fs.Usage = func() {
		exitUsage(fs, "")
	}
	return fs
}

func exitUsage(fs *flag.FlagSet, msg string) {
	if msg != "" {
		_, _ = fmt.Fprintln(os.Stderr, msg)
	}
	_, _ = fmt.Fprintf(os.Stderr, `Usage: %s [FLAGS] OLD NEW [OLD NEW ...]

Compares each OLD file to the following NEW file, word by word. Words are
separated by white space, and compared regardless of accents and, by default,
of case. Pairs are compared concurrently, output is in argument order.

Flags:

`, os.Args[0])
	fs.SetOutput(os.Stderr)
	fs.PrintDefaults()
	os.Exit(2)
}

func main() {
	fs := newFlagSet()
	// Ignoring error because the flag set exits on error.
	_ = fs.Parse(os.Args[1:])

	if globalContext.version {
		fmt.Println(version)
		return
	}

	args := fs.Args()
	if len(args) == 0 || len(args)%2 != 0 {
		exitUsage(fs, fmt.Sprintf("want pairs of files, got %d args", len(args)))
	}

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.JSONFormatter{})
	ll, err := log.ParseLevel(globalContext.logLevel)
	if err != nil {
		log.Fatalf("Could not parse log level %q: %v", globalContext.logLevel, err)
	}
	log.SetLevel(ll)

	cfg, err := config.Load(globalContext.config)
	if err != nil {
		log.Fatalf("Could not load config from %q: %v", globalContext.config, err)
	}
	applyFlags(fs, cfg)

	var pairs []pair
	for i := 0; i < len(args); i += 2 {
		pairs = append(pairs, pair{old: args[i], new: args[i+1]})
	}
	if err := run(context.Background(), os.Stdout, cfg, pairs); err != nil {
		log.Fatalf("Could not diff: %v", err)
	}
}

// applyFlags overrides the configuration with the flags that were set
// explicitly.
func applyFlags(fs *flag.FlagSet, cfg *config.C) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "U":
			cfg.Context = globalContext.context
		case "html":
			cfg.EscapeHTML = globalContext.html
		case "i":
			cfg.CaseFold = globalContext.caseFold
		}
	})
}

// run diffs all pairs concurrently and writes the results in order.
// Nothing is written if any pair fails.
func run(ctx context.Context, w io.Writer, cfg *config.C, pairs []pair) error {
	outputs := make([]bytes.Buffer, len(pairs))
	g, ctx := errgroup.WithContext(ctx)
	for i := range pairs {
		p, out := pairs[i], &outputs[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return diffFiles(out, cfg, p)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i := range outputs {
		if _, err := outputs[i].WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

func diffFiles(w io.Writer, cfg *config.C, p pair) error {
	a, err := ioutil.ReadFile(p.old)
	if err != nil {
		return err
	}
	b, err := ioutil.ReadFile(p.new)
	if err != nil {
		return err
	}
	opts := cfg.Options()
	segments, err := diff.Diff(diff.Bytes(a), diff.Bytes(b), opts...)
	if err != nil {
		return fmt.Errorf("%s %s: %w", p.old, p.new, err)
	}
	log.WithFields(log.Fields{
		"old":      p.old,
		"new":      p.new,
		"segments": len(segments),
	}).Info("Diffed")
	if cfg.Context >= 0 {
		return unified(w, p, segments, cfg.Context)
	}
	views := diff.Render(segments, opts...)
	_, err = fmt.Fprintf(w, "--- %s\n+++ %s\n%s\n%s\n", p.old, p.new, views.Old, views.New)
	return err
}

// Like diff(1), no output for pairs that have no differences.
func unified(w io.Writer, p pair, segments []diff.Segment, contextWords int) error {
	hunks, err := diff.Unified(segments, contextWords)
	if err != nil || hunks == "" {
		return err
	}
	_, err = fmt.Fprintf(w, "--- %s\n+++ %s\n%s", p.old, p.new, hunks)
	return err
}
