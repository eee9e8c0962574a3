package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/coregx/minire"
)

// repl reads lines from a readline prompt and reports, for each, the offset
// of the leftmost match. Ctrl-C or Ctrl-D ends the session.
func repl(re *minire.Regex, stdout io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: re.String() + "> ",
		Stdout: stdout,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Fprintln(stdout, evalLine(re, line))
	}
}

// evalLine describes the leftmost match of re in line.
func evalLine(re *minire.Regex, line string) string {
	i, err := re.SearchIndex(line)
	switch {
	case err != nil:
		return "error: " + err.Error()
	case i < 0:
		return "no match"
	default:
		return fmt.Sprintf("match at %d", i)
	}
}
