package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/coregx/minire"
)

// checkEvery is how many lines are scanned between cancellation checks.
const checkEvery = 1024

// result is the output of scanning one input.
type result struct {
	out   bytes.Buffer
	count int
}

// grep scans every file, or stdin when files is empty, and writes the
// output in argument order. It reports whether any line matched.
func grep(ctx context.Context, re *minire.Regex, files []string, stdin io.Reader, stdout io.Writer, opts options) (bool, error) {
	if len(files) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return false, fmt.Errorf("read stdin: %w", err)
		}
		var res result
		if err := scan(ctx, re, "", data, opts, &res); err != nil {
			return false, fmt.Errorf("stdin: %w", err)
		}
		if _, err := res.out.WriteTo(stdout); err != nil {
			return false, err
		}
		return res.count > 0, nil
	}

	prefix := len(files) > 1
	results := make([]result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range files {
		g.Go(func() error {
			data, release, err := readFile(name)
			if err != nil {
				return err
			}
			defer func() { _ = release() }()

			label := ""
			if prefix {
				label = name
			}
			if err := scan(ctx, re, label, data, opts, &results[i]); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	found := false
	for i := range results {
		if _, err := results[i].out.WriteTo(stdout); err != nil {
			return false, err
		}
		found = found || results[i].count > 0
	}
	return found, nil
}

// scan searches each line of data and records matching lines in res.
// label, when not empty, prefixes every output line.
func scan(ctx context.Context, re *minire.Regex, label string, data []byte, opts options, res *result) error {
	lineNo := 0
	for len(data) > 0 {
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			line, data = data, nil
		}
		lineNo++

		if lineNo%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		text := string(bytes.TrimSuffix(line, []byte{'\r'}))
		ok, err := re.Search(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if !ok {
			continue
		}
		res.count++
		if opts.count {
			continue
		}
		writeLine(&res.out, label, lineNo, text, opts)
	}

	if opts.count {
		if label != "" {
			res.out.WriteString(label)
			res.out.WriteByte(':')
		}
		res.out.WriteString(strconv.Itoa(res.count))
		res.out.WriteByte('\n')
	}
	return nil
}

func writeLine(out *bytes.Buffer, label string, lineNo int, text string, opts options) {
	if label != "" {
		out.WriteString(label)
		out.WriteByte(':')
	}
	if opts.lineNumbers {
		out.WriteString(strconv.Itoa(lineNo))
		out.WriteByte(':')
	}
	out.WriteString(text)
	out.WriteByte('\n')
}
