package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values.
type Config struct {
	File        string
	Start       int
	End         int
	Line        int
	DryRun      bool
	JobPath     string
	LookupDirs  []string
	NoAnimation bool
}

// ParseIndentFlags defines and parses the fix-indentation command line.
// file, start and end are the hardcoded defaults of the command.
func ParseIndentFlags(name string, args []string, file string, start, end int) (*Config, error) {
	cfg := &Config{}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.StringVarP(&cfg.File, "file", "f", file, "Target file to patch in place.")
	fs.IntVar(&cfg.Start, "start", start, "First line index to indent (zero-based).")
	fs.IntVar(&cfg.End, "end", end, "One past the last line index to indent.")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Print the change as a diff instead of writing the file.")

	fs.Usage = func() {
		fmt.Printf("Usage: %s [flags]\n", name)
		fmt.Println("\nPrepend two spaces to every line in a fixed index range of the target file.")
		fmt.Println("\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.End < cfg.Start {
		return nil, fmt.Errorf("error: --end (%d) must not be smaller than --start (%d)", cfg.End, cfg.Start)
	}
	return cfg, nil
}

// ParseBraceFlags defines and parses the fix-missing-brace command line.
// file and line are the hardcoded defaults of the command.
func ParseBraceFlags(name string, args []string, file string, line int) (*Config, error) {
	cfg := &Config{}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.StringVarP(&cfg.File, "file", "f", file, "Target file to patch in place.")
	fs.IntVar(&cfg.Line, "line", line, "Line index the closing brace is inserted before (zero-based).")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Print the change as a diff instead of writing the file.")

	fs.Usage = func() {
		fmt.Printf("Usage: %s [flags]\n", name)
		fmt.Println("\nInsert the missing closing brace line at a fixed index of the target file.")
		fmt.Println("\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.Line < 0 {
		return nil, fmt.Errorf("error: --line must not be negative")
	}
	return cfg, nil
}

// ParseFixupFlags defines and parses the fixup command line. The single
// optional positional argument is the job file path; "-" or no argument
// falls back to stdin, then the clipboard.
func ParseFixupFlags(name string, args []string) (*Config, error) {
	cfg := &Config{}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.StringSliceVarP(&cfg.LookupDirs, "lookup-dir", "l", []string{}, "Directories to look up relative step paths in (default: current directory).")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Print every change as a diff instead of writing files.")
	fs.BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable the spinner and render plain output.")

	fs.Usage = func() {
		fmt.Printf("Usage: %s [flags] [job.yaml]\n", name)
		fmt.Println("\nApply a YAML fix job to files. Without a job path the job is read from")
		fmt.Println("stdin (pipe) or the clipboard.")
		fmt.Println("\nExample: fixup dashboard-fix.yaml")
		fmt.Println("\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		cfg.JobPath = rest[0]
	default:
		return nil, fmt.Errorf("error: at most one job path argument is accepted, got %d", len(rest))
	}
	return cfg, nil
}
