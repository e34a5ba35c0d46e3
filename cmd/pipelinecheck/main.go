// Command pipelinecheck exercises the pipeline failure context and computes
// classification metrics artifacts from label files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/pipeline/cmd/pipelinecheck/commands"
	pipelineerrors "github.com/jmgilman/go/pipeline/errors"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("pipelinecheck"),
		kong.Description("Pipeline failure context and classification metrics tooling."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	global := &commands.Global{
		Logger: slog.Default(),
		FS:     billy.NewLocal(),
		Stdout: os.Stdout,
	}

	if err := ctx.Run(global); err != nil {
		fmt.Fprintln(os.Stderr, pipelineerrors.Render(err))
		os.Exit(1)
	}
}
