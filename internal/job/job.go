package job

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"

	"github.com/kaiosilva24/potentecar/internal/edit"
)

// Operation names accepted in a step.
const (
	OpIndent      = "indent"
	OpInsertBrace = "insert-brace"
)

// Step is one fix applied to one file. Start/End parameterize the indent
// operation (zero-based, half-open), Line the insert operation.
type Step struct {
	Op    string `yaml:"op"`
	File  string `yaml:"file"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Line  int    `yaml:"line"`
}

// Job is an ordered list of steps, applied strictly in sequence.
type Job struct {
	Steps []Step `yaml:"steps"`
}

// Parse decodes a YAML job. Unknown keys are errors.
func Parse(data []byte) (*Job, error) {
	var j Job
	if err := yaml.UnmarshalWithOptions(data, &j, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to decode job: %w", err)
	}
	return &j, nil
}

// Validate checks every step and reports all problems at once.
func (j *Job) Validate() error {
	var result *multierror.Error
	if len(j.Steps) == 0 {
		result = multierror.Append(result, fmt.Errorf("job has no steps"))
	}
	for i, s := range j.Steps {
		if err := s.validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("step %d: %w", i+1, err))
		}
	}
	return result.ErrorOrNil()
}

func (s *Step) validate() error {
	if s.File == "" {
		return fmt.Errorf("missing file")
	}
	switch s.Op {
	case OpIndent:
		if s.Start < 0 || s.End < s.Start {
			return fmt.Errorf("invalid line range [%d, %d)", s.Start, s.End)
		}
	case OpInsertBrace:
		if s.Line < 0 {
			return fmt.Errorf("negative insert line %d", s.Line)
		}
	case "":
		return fmt.Errorf("missing op")
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
	return nil
}

// Apply runs the step's operation over lines and returns the new lines.
func (s *Step) Apply(lines []string) ([]string, error) {
	switch s.Op {
	case OpIndent:
		return edit.IndentRange(lines, s.Start, s.End), nil
	case OpInsertBrace:
		return edit.InsertLine(lines, s.Line, edit.BraceLine)
	default:
		return nil, fmt.Errorf("unknown op %q", s.Op)
	}
}

// Describe renders a step for progress and summary lines.
func (s *Step) Describe() string {
	switch s.Op {
	case OpIndent:
		return fmt.Sprintf("%s [%d,%d) %s", s.Op, s.Start, s.End, s.File)
	case OpInsertBrace:
		return fmt.Sprintf("%s @%d %s", s.Op, s.Line, s.File)
	default:
		return fmt.Sprintf("%s %s", s.Op, s.File)
	}
}
