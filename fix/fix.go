package fix

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/kaiosilva24/potentecar/internal/cli"
	"github.com/kaiosilva24/potentecar/internal/diffview"
	"github.com/kaiosilva24/potentecar/internal/job"
	"github.com/kaiosilva24/potentecar/internal/source"
	"github.com/kaiosilva24/potentecar/internal/textfile"
)

// ProgressUpdate is a callback function to report progress.
type ProgressUpdate func(current, total int)

// Summary describes the outcome of a run.
type Summary struct {
	Modified []string
	Failed   []string
	Previews []string
	Message  string
	DryRun   bool
}

// App orchestrates the entire application logic.
type App struct {
	cfg              *cli.Config
	resolver         *textfile.Resolver
	sourceProvider   *source.Provider
	progressCallback ProgressUpdate
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

// New creates a new App instance.
func New(cfg *cli.Config) (*App, error) {
	resolver, err := textfile.NewResolver(cfg.LookupDirs)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize path resolver: %w", err)
	}

	return &App{
		cfg:            cfg,
		resolver:       resolver,
		sourceProvider: source.New(),
	}, nil
}

// SetProgressCallback sets a function to be called for progress updates.
func (a *App) SetProgressCallback(cb ProgressUpdate) {
	a.progressCallback = cb
}

// Execute reads the job from the configured source, validates it and applies
// all of its steps.
func (a *App) Execute() (summary Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	content, err := a.sourceProvider.GetContent(a.cfg.JobPath)
	if err != nil {
		return Summary{}, err
	}
	if content == "" {
		return Summary{Message: "Job source is empty. Nothing to process."}, nil
	}

	return a.runJob(content)
}

// runJob parses and validates a job held in content, then applies its steps.
func (a *App) runJob(content string) (Summary, error) {
	j, err := job.Parse([]byte(content))
	if err != nil {
		return Summary{}, fmt.Errorf("failed to parse job: %w", err)
	}
	if err := j.Validate(); err != nil {
		return Summary{}, fmt.Errorf("invalid job: %w", err)
	}

	return a.Apply(j.Steps), nil
}

// Apply runs the given steps in order. A failing step is recorded in the
// summary and does not stop the remaining steps.
func (a *App) Apply(steps []job.Step) Summary {
	summary := Summary{DryRun: a.cfg.DryRun}

	total := len(steps)
	if a.progressCallback != nil {
		a.progressCallback(0, total)
	}

	for i, step := range steps {
		if err := a.applyStep(step, &summary); err != nil {
			summary.Failed = append(summary.Failed, fmt.Sprintf("%s: %v", step.Describe(), err))
		}
		if a.progressCallback != nil {
			a.progressCallback(i+1, total)
		}
	}

	a.relativizeSummaryPaths(&summary)
	return summary
}

// applyStep reads the step's target file, applies the edit and either writes
// the result back in place or records a diff preview for dry runs.
func (a *App) applyStep(step job.Step, summary *Summary) error {
	path := a.resolver.Resolve(step.File)

	lines, err := textfile.ReadLines(path)
	if err != nil {
		return err
	}

	patched, err := step.Apply(lines)
	if err != nil {
		return err
	}

	if a.cfg.DryRun {
		if diff := diffview.Render(path, lines, patched); diff != "" {
			summary.Previews = append(summary.Previews, diff)
		}
		summary.Modified = append(summary.Modified, path)
		return nil
	}

	if err := textfile.WriteLines(path, patched); err != nil {
		return err
	}
	summary.Modified = append(summary.Modified, path)
	return nil
}

// relativizeSummaryPaths converts absolute file paths in a summary to be
// relative to the current working directory for cleaner display.
func (a *App) relativizeSummaryPaths(summary *Summary) {
	wd, err := os.Getwd()
	if err != nil {
		// Cannot get CWD, so we can't make paths relative.
		// Return without changing anything.
		return
	}

	relPaths := make([]string, len(summary.Modified))
	for i, p := range summary.Modified {
		rel, err := filepath.Rel(wd, p)
		if err != nil {
			relPaths[i] = p // Fallback to absolute path
		} else {
			relPaths[i] = rel
		}
	}
	summary.Modified = relPaths
}
