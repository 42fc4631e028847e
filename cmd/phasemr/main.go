// Command phasemr is the CLI entrypoint (spec.md §6): one positional
// <input_directory> argument, no flags, exit 0 on success and non-zero on
// any surfaced error.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sakkammadam/phasemr/bootstrap"
	"github.com/sakkammadam/phasemr/engine"
	"github.com/sakkammadam/phasemr/pluginloader"
	"github.com/sakkammadam/phasemr/reporter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "phasemr <input_directory>",
		Short:         "Run the four-stage word-count MapReduce pipeline over a directory of text files",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0])
		},
	}
	return cmd
}

// run loads the seven plugin artifacts from the conventional libs/ tree
// under the current working directory (spec.md §6) and drives the
// orchestrator against inputDir.
func run(ctx context.Context, inputDir string) error {
	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	plugins, err := bootstrap.Load(pluginloader.DefaultArtifactPaths("."))
	if err != nil {
		return err
	}

	return engine.Run(ctx, inputDir, plugins, engine.WithReporter(reporter.New(log.Sugar())))
}
