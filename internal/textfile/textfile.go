package textfile

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ReadLines loads path wholesale and splits it into lines. The file must be
// valid UTF-8; anything else is a read error.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: not valid UTF-8", path)
	}
	return SplitLines(string(data)), nil
}

// SplitLines cuts content after every newline. A final chunk without a
// terminator is its own line, and a trailing newline does not produce an
// empty last element, so joining the result reproduces the input exactly.
// Carriage returns stay inside the line content and are never interpreted.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// WriteLines overwrites path in place with the concatenation of lines. No
// backup is kept and the write is not atomic; an interrupted run leaves the
// file in an undefined state.
func WriteLines(path string, lines []string) error {
	return os.WriteFile(path, []byte(strings.Join(lines, "")), 0o644)
}
