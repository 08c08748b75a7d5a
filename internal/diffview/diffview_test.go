package diffview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kaiosilva24/potentecar/internal/edit"
)

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d\n", i)
	}
	return lines
}

func TestRenderShowsChange(t *testing.T) {
	before := []string{"a\n", "b\n", "c\n"}
	after := edit.IndentRange(before, 1, 2)

	got := Render("dash.tsx", before, after)

	for _, want := range []string{"--- dash.tsx\n", "+++ dash.tsx\n", "-b\n", "+  b\n", " a\n", " c\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("preview missing %q:\n%s", want, got)
		}
	}
}

func TestRenderInsertion(t *testing.T) {
	before := []string{"x\n", "y\n", "z\n"}
	after, err := edit.InsertLine(before, 2, edit.BraceLine)
	if err != nil {
		t.Fatal(err)
	}

	got := Render("dash.tsx", before, after)

	if !strings.Contains(got, "+"+edit.BraceLine) {
		t.Errorf("preview missing inserted line:\n%s", got)
	}
	if strings.Contains(got, "-x\n") || strings.Contains(got, "-z\n") {
		t.Errorf("pure insertion should not remove lines:\n%s", got)
	}
}

func TestRenderElidesLongContext(t *testing.T) {
	before := numberedLines(40)
	after := edit.IndentRange(before, 20, 21)

	got := Render("big.txt", before, after)

	if !strings.Contains(got, ellipsis) {
		t.Errorf("long unchanged runs should be elided:\n%s", got)
	}
	if n := strings.Count(got, "\n"); n > 25 {
		t.Errorf("preview of a one-line change is %d lines long:\n%s", n, got)
	}
}

func TestRenderNoChange(t *testing.T) {
	lines := []string{"a\n", "b\n"}
	if got := Render("same.txt", lines, lines); got != "" {
		t.Errorf("expected empty preview for identical content, got:\n%s", got)
	}
}

func TestRenderUnterminatedLastLine(t *testing.T) {
	before := []string{"a\n", "b"}
	after := edit.IndentRange(before, 1, 2)

	got := Render("tail.txt", before, after)

	if !strings.HasSuffix(got, "\n") {
		t.Errorf("preview must stay line-structured even without a trailing terminator:\n%q", got)
	}
	if !strings.Contains(got, "+  b\n") {
		t.Errorf("preview missing indented unterminated line:\n%s", got)
	}
}
