package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/foldcal/internal/config"
	"github.com/javiermolinar/foldcal/internal/ui"
)

// Overridden with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = ""
	commit  = ""
)

func main() {
	if version != "" {
		ui.Version = version
	}
	if commit != "" {
		ui.Commit = commit
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config %s: %w", config.DefaultConfigPath(), err)
	}

	app := ui.NewApp(nil, cfg)
	defer func() { _ = app.Close() }()
	return app.Execute()
}
