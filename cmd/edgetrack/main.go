// edgetrack is a terminal demo of the off-screen indicator: two scripted
// targets roam a world larger than the terminal and the border points at
// them.
//
// Run: go run ./cmd/edgetrack/ [-line-width 1] [-debug]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/wesen/edgetrack/internal/applog"
	"github.com/wesen/edgetrack/internal/config"
	"github.com/wesen/edgetrack/internal/trackui"
)

const debugLogPath = "edgetrack-debug.log"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.DefaultFromEnv(config.Config{LineWidth: 1})
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("edgetrack", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs only ever go to a file.
	var logger applog.Logger = applog.NoopLogger{}
	var closer io.Closer
	if cfg.Debug {
		l, c, err := applog.OpenFile(debugLogPath)
		if err != nil {
			return err
		}
		logger, closer = l, c
		defer closer.Close()
	}

	m, err := trackui.NewModel(trackui.Options{LineWidth: cfg.LineWidth, Logger: logger})
	if err != nil {
		return err
	}
	logger.Infof("main", "starting, line width %g", cfg.LineWidth)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}
	logger.Infof("main", "exit")
	return nil
}
