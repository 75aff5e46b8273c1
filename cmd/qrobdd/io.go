package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// readSource resolves the formula source text from either the -e flag, a
// FILE positional argument, or stdin ("-" or no argument at all).
func readSource(expr string, args []string) (string, error) {
	if expr != "" {
		if len(args) > 0 {
			return "", fmt.Errorf("-e is mutually exclusive with a FILE argument")
		}
		return expr, nil
	}

	path := "-"
	if len(args) > 0 {
		path = args[0]
	}
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(b), nil
}

// readOrderingOverride reads one variable name per line (blank lines and
// "#"-prefixed comments skipped) from path.
func readOrderingOverride(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading ordering file %s: %w", path, err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ordering file %s: %w", path, err)
	}
	return names, nil
}

// openOutput opens path for writing, or wraps os.Stdout when path is "-",
// matching the teacher's own PrintDot convention for its filename argument.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
