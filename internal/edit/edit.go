package edit

import "fmt"

// IndentPrefix is prepended to every line inside an indent range.
const IndentPrefix = "  "

// BraceLine is the literal line inserted by the brace operation, terminator
// included. The ten spaces match the nesting depth of the block it closes.
const BraceLine = "          }\n"

// IndentRange returns a copy of lines where every line with index in the
// half-open range [start, end) gains IndentPrefix. Indices at or past the end
// of the slice are skipped without error. Each line carries its own
// terminator at the end, so prefixing the content never touches it.
func IndentRange(lines []string, start, end int) []string {
	out := make([]string, len(lines))
	copy(out, lines)

	if start < 0 {
		start = 0
	}
	for i := start; i < end && i < len(out); i++ {
		out[i] = IndentPrefix + out[i]
	}
	return out
}

// InsertLine returns a copy of lines with text inserted before the line
// currently at index, shifting the rest down by one. index == len(lines)
// appends. An index past the end of the file cannot be satisfied and is an
// error.
func InsertLine(lines []string, index int, text string) ([]string, error) {
	if index < 0 || index > len(lines) {
		return nil, fmt.Errorf("insert index %d out of range (file has %d lines)", index, len(lines))
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:index]...)
	out = append(out, text)
	out = append(out, lines[index:]...)
	return out, nil
}
