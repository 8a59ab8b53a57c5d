package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/sghaida/arbitrary/arb"
	"github.com/sghaida/arbitrary/internal/logging"
	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	logLevel string
	seed     uint64
	size     int
	count    int
	shape    string
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "arbsample",
		Short: "Sample size-scaled arbitrary values",
		Long: `arbsample draws values from the arb generators so their shape and
size scaling can be inspected by eye or summarised.

Runs are reproducible: pass --seed, or note the seed logged when --seed is 0.`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", logging.LevelFromEnv("info"), "log level: info, debug, trace (env "+logging.EnvLevel+")")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed; 0 picks one from the clock")
	flags.IntVar(&opts.size, "size", 10, "size passed to the generator")
	flags.IntVar(&opts.count, "count", 5, "number of values to draw")
	flags.StringVar(&opts.shape, "shape", "slice-int", "shape to generate (see shapes)")

	rootCmd.AddCommand(
		newSampleCmd(opts),
		newStatsCmd(opts),
		newShapesCmd(),
	)
	return rootCmd
}

// prepare validates shared options and returns a logger and seeded handle.
func (o *options) prepare(cmd *cobra.Command) (*slog.Logger, *shape, uint64, error) {
	logger := logging.NewLogger(o.logLevel, cmd.ErrOrStderr())

	if !knownShape(o.shape) {
		return nil, nil, 0, fmt.Errorf("unknown shape %q (run arbsample shapes)", o.shape)
	}
	if o.size < 0 {
		return nil, nil, 0, fmt.Errorf("size must be non-negative, got %d", o.size)
	}
	if o.count <= 0 {
		return nil, nil, 0, fmt.Errorf("count must be positive, got %d", o.count)
	}

	seed := o.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		logger.Info("picked seed", "seed", seed)
	}
	s := shapes[o.shape]
	logger.Debug("generating", "shape", o.shape, "size", o.size, "count", o.count, "seed", seed)
	return logger, &s, seed, nil
}

func newSampleCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print generated values, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, s, seed, err := opts.prepare(cmd)
			if err != nil {
				return err
			}

			r := arb.NewRand(seed)
			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for i := range opts.count {
				v := s.gen(r, opts.size)
				logger.Log(cmd.Context(), logging.LevelTrace, "drew value", "index", i)
				if asJSON {
					if err := enc.Encode(v); err != nil {
						return fmt.Errorf("encode value %d: %w", i, err)
					}
					continue
				}
				fmt.Fprintf(out, "%v\n", v)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print values as JSON lines")
	return cmd
}

// summary aggregates measured values.
type summary struct {
	Shape    string  `json:"shape"`
	Size     int     `json:"size"`
	Seed     uint64  `json:"seed"`
	Count    int     `json:"count"`
	Measured int     `json:"measured"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
}

func summarise(s *shape, r func() any, count int) summary {
	out := summary{Count: count, Min: math.Inf(1), Max: math.Inf(-1)}
	var total float64
	for range count {
		m, ok := s.measure(r())
		if !ok {
			continue
		}
		out.Measured++
		total += m
		out.Min = min(out.Min, m)
		out.Max = max(out.Max, m)
	}
	if out.Measured == 0 {
		out.Min, out.Max = 0, 0
		return out
	}
	out.Mean = total / float64(out.Measured)
	return out
}

func newStatsCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarise lengths (or presence ratios) over many draws",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, seed, err := opts.prepare(cmd)
			if err != nil {
				return err
			}

			r := arb.NewRand(seed)
			sum := summarise(s, func() any { return s.gen(r, opts.size) }, opts.count)
			sum.Shape, sum.Size, sum.Seed = opts.shape, opts.size, seed

			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(sum)
			}
			if sum.Measured == 0 {
				fmt.Fprintf(out, "shape=%s size=%d count=%d (nothing to measure)\n", sum.Shape, sum.Size, sum.Count)
				return nil
			}
			fmt.Fprintf(out, "shape=%s size=%d count=%d min=%g max=%g mean=%.3f\n",
				sum.Shape, sum.Size, sum.Count, sum.Min, sum.Max, sum.Mean)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return cmd
}

func newShapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the shapes that can be sampled",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range shapeNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", name, shapes[name].desc)
			}
		},
	}
}
