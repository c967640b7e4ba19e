// Command tmlex lexes a turmeric source file and prints its tokens, one per
// line.
//
// Usage:
//
//	tmlex [flags] file
//
// On a lexing error, tmlex prints a diagnostic to stderr and exits with
// status 1.
//
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/turmeric-lang/lex"
	"github.com/turmeric-lang/lex/diag"
	"github.com/turmeric-lang/lex/token"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	verbosity int
	json      bool
	pos       bool
	color     bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg config
	fs := flag.NewFlagSet("tmlex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.verbosity, "v", 0, "log verbosity (1: debug, 2: trace)")
	fs.BoolVar(&cfg.json, "json", false, "print tokens as JSON objects")
	fs.BoolVar(&cfg.pos, "pos", false, "prefix tokens with their position")
	fs.BoolVar(&cfg.color, "color", false, "colorize error carets")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: tmlex [flags] file")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	logger := newLogger(stderr, cfg.verbosity)

	f, err := readFile(fs.Arg(0))
	if err != nil {
		logger.WithError(err).Error("cannot load source")
		return 1
	}
	items, err := lex.LexFile(f, lex.Logger(logger), lex.Capacity(f.Size()/4))
	if err != nil {
		r := diag.NewReporter(stderr, f)
		r.Color = cfg.color
		if rerr := r.ReportError(err); rerr != nil {
			logger.WithError(rerr).Error("cannot report error")
		}
		return 1
	}
	if err = printItems(stdout, f, items, &cfg); err != nil {
		logger.WithError(err).Error("cannot print tokens")
		return 1
	}
	return 0
}

func newLogger(w io.Writer, verbosity int) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	switch {
	case verbosity >= 2:
		l.SetLevel(log.TraceLevel)
	case verbosity == 1:
		l.SetLevel(log.DebugLevel)
	default:
		l.SetLevel(log.InfoLevel)
	}
	return l
}

func readFile(name string) (*token.File, error) {
	src, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "tmlex: read")
	}
	return token.NewFile(name, src), nil
}

type jsonItem struct {
	Pos   string `json:"pos"`
	Token string `json:"token"`
	Text  string `json:"text,omitempty"`
	Sym   *int   `json:"sym,omitempty"`
}

func printItems(w io.Writer, f *token.File, items []lex.Item, cfg *config) error {
	enc := json.NewEncoder(w)
	for _, i := range items {
		var err error
		switch {
		case cfg.json:
			ji := jsonItem{Pos: f.Position(i.Pos).String(), Token: i.Token.String(), Text: i.Text}
			if i.Token == token.Sym {
				sym := int(i.Sym)
				ji.Sym = &sym
			}
			err = enc.Encode(&ji)
		case cfg.pos:
			_, err = fmt.Fprintf(w, "%s\t%s\n", f.Position(i.Pos), i)
		default:
			_, err = fmt.Fprintln(w, i)
		}
		if err != nil {
			return errors.Wrap(err, "tmlex: write")
		}
	}
	return nil
}
