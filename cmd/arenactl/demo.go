package main

import (
	"log/slog"
	"os"

	"github.com/joshuapare/arenakit/arena"
	"github.com/spf13/cobra"
)

var (
	demoCycles int
)

func init() {
	cmd := newDemoCmd()
	cmd.Flags().IntVar(&demoCycles, "cycles", 1, "Number of allocate/release cycles")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the canonical allocation cycle",
		Long: `The demo command runs the canonical registry workload: an int array of
100 elements, a float array of 200 elements, and one composite object,
all released in a single call at the end of each cycle.

Example:
  arenactl demo
  arenactl demo --cycles 3 --verbose
  arenactl demo --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
	return cmd
}

func runDemo() error {
	opts := arena.DefaultOptions()
	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts.Tracker = arena.NewLogTracker(logger)
	}

	r := arena.New(opts)
	defer r.Close()

	for cycle := 1; cycle <= demoCycles; cycle++ {
		ints, err := arena.AllocArray[int64](r, 100)
		if err != nil {
			return err
		}
		for i := range ints {
			ints[i] = int64(i)
		}

		floats, err := arena.AllocArray[float64](r, 200)
		if err != nil {
			return err
		}
		for i := range floats {
			floats[i] = float64(i) * 0.1
		}

		rec, err := arena.AllocObject(r, func(rec *record) error {
			rec.id = 42
			rec.ratio = 3.14
			return nil
		})
		if err != nil {
			return err
		}

		printVerbose("cycle %d: ints[99]=%d floats[199]=%.1f record={%d %.2f}\n",
			cycle, ints[99], floats[199], rec.id, rec.ratio)

		if err := r.ReleaseAll(); err != nil {
			return err
		}
		printVerbose("cycle %d released, %d entries remain\n", cycle, r.Len())
	}

	if jsonOut {
		return printJSON(r.Metrics())
	}
	printInfo("%s\n", r.Metrics())
	return nil
}
