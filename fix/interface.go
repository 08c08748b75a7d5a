package fix

import (
	"fmt"

	"github.com/kaiosilva24/potentecar/internal/cli"
)

// Config for using fix as a library.
type Config struct {
	// Print diff previews instead of writing files.
	DryRun bool
	// Directories to look up relative step paths in.
	LookupDirs []string
}

// Run parses the given YAML job and applies its steps to files.
// It returns a summary of the operations in a map.
func Run(jobYAML string, config Config) (map[string][]string, error) {
	cliCfg := &cli.Config{
		DryRun:     config.DryRun,
		LookupDirs: config.LookupDirs,
	}

	app, err := New(cliCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize fix app: %w", err)
	}

	summary, err := app.runJob(jobYAML)
	if err != nil {
		return nil, err
	}

	result := map[string][]string{
		"Modified": summary.Modified,
		"Failed":   summary.Failed,
		"Previews": summary.Previews,
	}

	return result, nil
}
