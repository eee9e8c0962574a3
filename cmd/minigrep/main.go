// Command minigrep prints lines matching a minire pattern.
//
// Usage:
//
//	minigrep [flags] PATTERN [FILE...]
//
// With no FILE, standard input is read. The exit status is 0 if any line
// matched, 1 if none did and 2 on error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/coregx/minire"
	"github.com/coregx/minire/nfa"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

type options struct {
	strategy    string
	maxDepth    int
	lineNumbers bool
	count       bool
	dump        bool
	interactive bool
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("minigrep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.strategy, "strategy", "pike", "execution strategy: backtrack or pike")
	fs.IntVar(&opts.maxDepth, "max-depth", 0, "backtracking depth limit (0 derives it from the input)")
	fs.BoolVar(&opts.lineNumbers, "n", false, "prefix lines with line numbers")
	fs.BoolVar(&opts.count, "c", false, "print only a count of matching lines per file")
	fs.BoolVar(&opts.dump, "dump", false, "print the compiled program and exit")
	fs.BoolVar(&opts.interactive, "i", false, "read lines interactively and report match offsets")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: minigrep [flags] PATTERN [FILE...]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitMatch
		}
		return exitError
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return exitError
	}

	re, err := compile(fs.Arg(0), opts)
	if err != nil {
		fatal(stderr, err)
		return exitError
	}

	switch {
	case opts.dump:
		fmt.Fprint(stdout, re.Program())
		return exitMatch
	case opts.interactive:
		if err := repl(re, stdout); err != nil {
			fatal(stderr, err)
			return exitError
		}
		return exitMatch
	}

	found, err := grep(ctx, re, fs.Args()[1:], stdin, stdout, opts)
	if err != nil {
		fatal(stderr, err)
		return exitError
	}
	if found {
		return exitMatch
	}
	return exitNoMatch
}

func compile(pattern string, opts options) (*minire.Regex, error) {
	strategy, err := nfa.ParseStrategy(opts.strategy)
	if err != nil {
		return nil, err
	}
	config := minire.DefaultConfig()
	config.Strategy = strategy
	config.MaxBacktrackDepth = opts.maxDepth
	return minire.CompileWithConfig(pattern, config)
}

func fatal(w io.Writer, err error) {
	fmt.Fprintf(w, "minigrep: %v\n", err)
}
