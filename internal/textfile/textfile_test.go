package textfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitLines(t *testing.T) {
	tests := map[string]struct {
		content string
		want    []string
	}{
		"trailing newline":      {"a\nb\n", []string{"a\n", "b\n"}},
		"no trailing newline":   {"a\nb", []string{"a\n", "b"}},
		"single newline":        {"\n", []string{"\n"}},
		"empty":                 {"", nil},
		"crlf kept inside line": {"a\r\nb\r\n", []string{"a\r\n", "b\r\n"}},
		"blank lines":           {"a\n\n\nb\n", []string{"a\n", "\n", "\n", "b\n"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := SplitLines(tt.content)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitLines(%q) mismatch (-want +got):\n%s", tt.content, diff)
			}
		})
	}
}

func TestReadWriteRoundtrip(t *testing.T) {
	contents := []string{
		"a\nb\nc\n",
		"a\nb\nno trailing newline",
		"windows\r\nline endings\r\n",
		"acentuação preservada: ção\n",
		"",
	}

	dir := t.TempDir()
	for i, content := range contents {
		path := filepath.Join(dir, "roundtrip.txt")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("case %d: write fixture: %v", i, err)
		}

		lines, err := ReadLines(path)
		if err != nil {
			t.Fatalf("case %d: ReadLines: %v", i, err)
		}
		if err := WriteLines(path, lines); err != nil {
			t.Fatalf("case %d: WriteLines: %v", i, err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("case %d: reread: %v", i, err)
		}
		if string(got) != content {
			t.Errorf("case %d: roundtrip changed contents:\ngot  %q\nwant %q", i, got, content)
		}
	}
}

func TestReadLinesErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
		if !os.IsNotExist(err) {
			t.Errorf("expected a not-exist error, got %v", err)
		}
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "latin1.txt")
		if err := os.WriteFile(path, []byte{'a', 0xe7, '\n'}, 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := ReadLines(path); err == nil {
			t.Error("expected an encoding error for non-UTF-8 content, got nil")
		}
	})
}

func TestResolver(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	if err := os.WriteFile(filepath.Join(second, "present.txt"), []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := NewResolver([]string{first, second})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("existing file found in later lookup dir", func(t *testing.T) {
		if got, want := r.Resolve("present.txt"), filepath.Join(second, "present.txt"); got != want {
			t.Errorf("Resolve = %q, want %q", got, want)
		}
	})

	t.Run("missing file joins first lookup dir", func(t *testing.T) {
		if got, want := r.Resolve("new.txt"), filepath.Join(first, "new.txt"); got != want {
			t.Errorf("Resolve = %q, want %q", got, want)
		}
	})

	t.Run("absolute path passes through", func(t *testing.T) {
		abs := filepath.Join(second, "present.txt")
		if got := r.Resolve(abs); got != abs {
			t.Errorf("Resolve = %q, want %q", got, abs)
		}
	})

	t.Run("defaults to working directory", func(t *testing.T) {
		r, err := NewResolver(nil)
		if err != nil {
			t.Fatal(err)
		}
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if got, want := r.Resolve("rel.txt"), filepath.Join(wd, "rel.txt"); got != want {
			t.Errorf("Resolve = %q, want %q", got, want)
		}
	})
}
