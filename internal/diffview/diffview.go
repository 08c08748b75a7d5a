package diffview

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/kaiosilva24/potentecar/internal/textfile"
)

// contextLines is how many unchanged lines are kept on each side of a change
// before the rest of an equal run is elided.
const contextLines = 3

const ellipsis = "  ...\n"

// Render produces a unified-style preview of the change to path: removed
// lines prefixed with "-", added lines with "+", unchanged context with a
// space. Long unchanged runs are elided. Returns "" when there is no change.
func Render(path string, before, after []string) string {
	oldText := strings.Join(before, "")
	newText := strings.Join(after, "")
	if oldText == newText {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, arr := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, arr)

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", path, path)
	for i, d := range diffs {
		lines := textfile.SplitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writeLines(&sb, "-", lines)
		case diffmatchpatch.DiffInsert:
			writeLines(&sb, "+", lines)
		case diffmatchpatch.DiffEqual:
			writeLines(&sb, " ", elide(lines, i == 0, i == len(diffs)-1))
		}
	}
	return sb.String()
}

func writeLines(sb *strings.Builder, prefix string, lines []string) {
	for _, line := range lines {
		if line == ellipsis {
			sb.WriteString(line)
			continue
		}
		sb.WriteString(prefix)
		sb.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			sb.WriteString("\n")
		}
	}
}

// elide trims an unchanged run down to its context edges. The leading run
// only needs trailing context, the final run only leading context.
func elide(lines []string, first, last bool) []string {
	switch {
	case first && len(lines) > contextLines+1:
		return append([]string{ellipsis}, lines[len(lines)-contextLines:]...)
	case last && len(lines) > contextLines+1:
		return append(append([]string{}, lines[:contextLines]...), ellipsis)
	case !first && !last && len(lines) > 2*contextLines+1:
		out := append([]string{}, lines[:contextLines]...)
		out = append(out, ellipsis)
		return append(out, lines[len(lines)-contextLines:]...)
	}
	return lines
}
