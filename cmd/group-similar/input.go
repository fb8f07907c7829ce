package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const maxLineBytes = 1 << 20

// readRecords returns one record per line of each path in order, or of stdin
// when paths is empty. A path of "-" also means stdin. Empty lines are kept.
func readRecords(stdin io.Reader, paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	var records []string
	for _, path := range paths {
		if path == "-" {
			lines, err := readLines(stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			records = append(records, lines...)
			continue
		}

		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		lines, err := readLines(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		records = append(records, lines...)
	}
	return records, nil
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

// record is one input line plus the key it is compared by.
type record struct {
	text string
	key  string
}

// Name returns the comparison key.
func (r record) Name() string { return r.key }

// keyFunc derives a comparison key from a line.
type keyFunc func(string) string

// newKeyFunc composes the requested transforms. Normalization runs before
// case folding so that decomposed and composed forms fold alike.
func newKeyFunc(ignoreCase, normalize bool) keyFunc {
	var steps []keyFunc
	if normalize {
		steps = append(steps, norm.NFC.String)
	}
	if ignoreCase {
		fold := cases.Fold()
		steps = append(steps, func(s string) string { return fold.String(s) })
	}
	return func(s string) string {
		for _, step := range steps {
			s = step(s)
		}
		return s
	}
}

// toRecords precomputes the key of every line.
func toRecords(lines []string, key keyFunc) []record {
	out := make([]record, len(lines))
	for i, line := range lines {
		out[i] = record{text: line, key: key(line)}
	}
	return out
}
