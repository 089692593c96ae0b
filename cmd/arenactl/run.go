package main

import (
	"log/slog"
	"os"

	"github.com/joshuapare/arenakit/arena"
	"github.com/spf13/cobra"
)

var (
	runTrace bool
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().BoolVar(&runTrace, "trace", false, "Log each allocation and release")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run an allocation scenario file",
		Long: `The run command loads a YAML scenario file, drives its allocations
through a registry for the configured number of cycles, and reports the
final counters.

Example:
  arenactl run workload.yaml
  arenactl run workload.yaml --trace
  arenactl run workload.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(args)
		},
	}
	return cmd
}

func runScenario(args []string) error {
	scenario, err := LoadScenario(args[0])
	if err != nil {
		return err
	}

	printVerbose("Loaded scenario %q: %d allocations x %d cycles\n",
		scenario.Name, len(scenario.Allocations), scenario.Cycles)

	opts := arena.DefaultOptions()
	if runTrace {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts.Tracker = arena.NewLogTracker(logger)
	}

	metrics, err := scenario.Execute(opts)
	if err != nil {
		printError("scenario failed: %v\n", err)
		return err
	}

	if jsonOut {
		return printJSON(metrics)
	}
	printInfo("%s\n", metrics)
	return nil
}
