package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/kaiosilva24/potentecar/fix"
	"github.com/kaiosilva24/potentecar/internal/cli"
	"github.com/kaiosilva24/potentecar/internal/job"
	"github.com/kaiosilva24/potentecar/internal/ui"
)

// Defaults point at the dashboard file this fix was written for, so running
// the command with no arguments applies exactly that fix.
const (
	targetFile = `C:\Users\kaiob\Downloads\sistemarec-1\sistemarec-1\src\components\sales\SalesDashboard.tsx`
	insertLine = 1251
)

const successMessage = "✅ Chave de fechamento adicionada com sucesso!"

func main() {
	cfg, err := cli.ParseBraceFlags("fix-missing-brace", os.Args[1:], targetFile, insertLine)
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

	summary := app.Apply([]job.Step{{
		Op:   job.OpInsertBrace,
		File: cfg.File,
		Line: cfg.Line,
	}})

	if len(summary.Failed) > 0 {
		for _, f := range summary.Failed {
			ui.Error("%s", f)
		}
		os.Exit(1)
	}

	if cfg.DryRun {
		for _, preview := range summary.Previews {
			fmt.Print(preview)
		}
		ui.Warning("Dry run: no files were written.")
		return
	}

	fmt.Println(successMessage)
}
