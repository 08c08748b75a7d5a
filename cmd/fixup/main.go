package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/kaiosilva24/potentecar/fix"
	"github.com/kaiosilva24/potentecar/internal/cli"
	"github.com/kaiosilva24/potentecar/internal/tui"
	"github.com/kaiosilva24/potentecar/internal/ui"
)

func main() {
	cfg, err := cli.ParseFixupFlags("fixup", os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		ui.Error("%v", err)
		os.Exit(1)
	}

	app, err := fix.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	if useTUI(cfg) {
		runTUI(app)
		return
	}
	runPlain(app)
}

// useTUI reports whether the animated interface can run. Dry runs and piped
// streams fall back to plain output.
func useTUI(cfg *cli.Config) bool {
	if cfg.NoAnimation || cfg.DryRun {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())
}

func runTUI(app *fix.App) {
	model := tui.New(app)
	p := tea.NewProgram(model)
	model.SetProgram(p)

	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	if m, ok := final.(tui.Model); ok && m.Failed() {
		os.Exit(1)
	}
}

func runPlain(app *fix.App) {
	summary, err := app.Execute()
	if err != nil {
		var detailed *fix.DetailedError
		if errors.As(err, &detailed) {
			fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", detailed.Stack)
		}
		ui.Error("%v", err)
		os.Exit(1)
	}

	if summary.Message != "" {
		ui.Info("%s", summary.Message)
		return
	}

	for _, preview := range summary.Previews {
		fmt.Print(preview)
	}
	ui.PrintRunSummary(summary.Modified, summary.Failed, summary.DryRun)

	if len(summary.Failed) > 0 {
		os.Exit(1)
	}
}
