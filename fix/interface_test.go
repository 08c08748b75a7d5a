package fix_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kaiosilva24/potentecar/fix"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "index.js")
	if err := os.WriteFile(target, []byte("console.log(\"hi\");\nrender();\n"), 0644); err != nil {
		t.Fatalf("failed to write target file: %v", err)
	}

	jobYAML := "steps:\n  - op: indent\n    file: " + target + "\n    start: 1\n    end: 2\n"

	result, err := fix.Run(jobYAML, fix.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if len(result["Modified"]) == 0 {
		t.Fatal("expected files to be modified, but none were")
	}
	if !strings.HasSuffix(result["Modified"][0], "index.js") {
		t.Fatalf("expected 'index.js' to be modified, got '%s'", result["Modified"][0])
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("failed to read target file: %v", err)
	}
	if got, want := string(data), "console.log(\"hi\");\n  render();\n"; got != want {
		t.Fatalf("unexpected file content:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRunDryRun(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "index.js")
	const content = "a\nb\n"
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write target file: %v", err)
	}

	jobYAML := "steps:\n  - op: insert-brace\n    file: " + target + "\n    line: 2\n"

	result, err := fix.Run(jobYAML, fix.Config{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(result["Previews"]) == 0 {
		t.Fatal("expected a diff preview, but got none")
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("failed to read target file: %v", err)
	}
	if string(data) != content {
		t.Fatalf("dry run must not modify the file, got %q", string(data))
	}
}

func TestRunRejectsInvalidJob(t *testing.T) {
	if _, err := fix.Run("steps:\n  - op: indent\n", fix.Config{}); err == nil {
		t.Fatal("expected an error for a step without a file")
	}
}
