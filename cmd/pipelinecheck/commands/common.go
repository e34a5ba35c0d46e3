// Package commands implements the pipelinecheck subcommands.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jmgilman/go/fs/core"
)

// Global carries the dependencies shared by every subcommand.
type Global struct {
	Logger *slog.Logger
	FS     core.FS
	Stdout io.Writer
}

// CLI is the pipelinecheck command tree. --verbose applies to every
// subcommand and may also be set through PIPELINE_VERBOSE.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging" env:"PIPELINE_VERBOSE"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Demo  DemoCmd  `cmd:"" help:"Trigger a division by zero and report it through the failure context"`
	Score ScoreCmd `cmd:"" help:"Compute a classification metrics artifact from a labels file"`
}

// AfterApply installs the process logger before a subcommand runs; main
// passes slog.Default to Global once parsing is done. Verbose runs log at
// debug level with source locations.
func (c *CLI) AfterApply() error {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if c.Verbose {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
	return nil
}
