package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nozzle/randseed"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

var (
	nextMin, nextMax     int32
	doubleMin, doubleMax float64
	drawWeights          []float64
	drawCount            int
	drawReplace          bool
	drawFreq             bool
	chanceP              float64
	chanceCount          int
	normalMu, normalSig  float64
)

func parseCount(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid count %q", args[0])
	}
	return n, nil
}

var nextCmd = &cobra.Command{
	Use:   "next [count]",
	Short: "Integer draws",
	Long: `Draw integers. Without bounds each value is in [0, 2147483647).
--max alone draws from [0, max), --min with --max from [min, max). For example:
  randseed next 10 --min 1 --max 7 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseCount(args)
		if err != nil {
			return err
		}
		r, err := newRand()
		if err != nil {
			return err
		}

		draw := r.Next
		switch {
		case cmd.Flags().Changed("min"):
			draw = func() int32 { return r.NextRange(nextMin, nextMax) }
		case cmd.Flags().Changed("max"):
			draw = func() int32 { return r.NextN(nextMax) }
		}

		t := newTable(cmd.OutOrStdout(), "value")
		for range n {
			if err := t.Write(formatInt(draw())); err != nil {
				return err
			}
		}
		return t.Flush()
	},
}

var doubleCmd = &cobra.Command{
	Use:   "double [count]",
	Short: "Floating point draws",
	Long: `Draw floating point values in [0, 1), or between --min and --max. For example:
  randseed double 3 --min -1 --max 1`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseCount(args)
		if err != nil {
			return err
		}
		r, err := newRand()
		if err != nil {
			return err
		}

		draw := r.Float64
		if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
			draw = func() float64 { return r.Float64Range(doubleMin, doubleMax) }
		}

		t := newTable(cmd.OutOrStdout(), "value")
		for range n {
			if err := t.Write(formatFloat(draw())); err != nil {
				return err
			}
		}
		return t.Flush()
	},
}

var shuffleCmd = &cobra.Command{
	Use:   "shuffle items...",
	Short: "Print the items in random order",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRand()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(randseed.Shuffled(r, args), " "))
		return err
	},
}

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Weighted index draws",
	Long: `Draw indexes with probability proportional to their weights. Without
--replace each index is drawn at most once. For example:
  randseed draw --weights 1,2,3,4 --count 1000 --replace --freq`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRand()
		if err != nil {
			return err
		}
		indexes := randseed.DrawWeightedIndexes(r, drawWeights, drawCount, drawReplace)

		if drawFreq {
			return writeFrequencies(cmd, drawWeights, indexes)
		}
		t := newTable(cmd.OutOrStdout(), "index")
		for _, idx := range indexes {
			if err := t.Write(strconv.Itoa(idx)); err != nil {
				return err
			}
		}
		return t.Flush()
	},
}

// writeFrequencies reports the expected and observed share of each index.
func writeFrequencies(cmd *cobra.Command, weights []float64, indexes []int) error {
	observed := make([]float64, len(weights))
	for _, idx := range indexes {
		observed[idx]++
	}

	total := floats.Sum(weights)
	drawn := float64(len(indexes))
	t := newTable(cmd.OutOrStdout(), "index", "weight", "expected", "observed")
	for i, w := range weights {
		expected, share := 0.0, 0.0
		if total > 0 {
			expected = w / total
		}
		if drawn > 0 {
			share = observed[i] / drawn
		}
		if err := t.Write(strconv.Itoa(i), formatFloat(w), formatFloat(expected), formatFloat(share)); err != nil {
			return err
		}
	}
	if err := t.Flush(); err != nil {
		return err
	}

	if len(indexes) > 0 && isTerminal(cmd.OutOrStdout()) {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "most drawn: %d (%d of %d)\n",
			floats.MaxIdx(observed), int(floats.Max(observed)), len(indexes))
		return err
	}
	return nil
}

var chanceCmd = &cobra.Command{
	Use:   "chance",
	Short: "Chance checks",
	Long: `Run --count chance checks with probability --p and print how many succeeded.
p <= 0 never succeeds and p >= 1 always does.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRand()
		if err != nil {
			return err
		}

		satisfied := 0
		for range chanceCount {
			if r.ChanceSatisfied(chanceP) {
				satisfied++
			}
		}

		fraction := 0.0
		if chanceCount > 0 {
			fraction = float64(satisfied) / float64(chanceCount)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d/%d satisfied (%s)\n", satisfied, chanceCount, formatFloat(fraction))
		return err
	},
}

var normalCmd = &cobra.Command{
	Use:   "normal [count]",
	Short: "Normally distributed draws",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseCount(args)
		if err != nil {
			return err
		}
		r, err := newRand()
		if err != nil {
			return err
		}

		t := newTable(cmd.OutOrStdout(), "value")
		for range n {
			if err := t.Write(formatFloat(r.NormFloat64(normalMu, normalSig))); err != nil {
				return err
			}
		}
		return t.Flush()
	},
}

func init() {
	rootCmd.AddCommand(nextCmd, doubleCmd, shuffleCmd, drawCmd, chanceCmd, normalCmd)

	flags := nextCmd.Flags()
	flags.Int32Var(&nextMin, "min", 0, "inclusive lower bound")
	flags.Int32Var(&nextMax, "max", 0, "exclusive upper bound")

	flags = doubleCmd.Flags()
	flags.Float64Var(&doubleMin, "min", 0, "lower bound")
	flags.Float64Var(&doubleMax, "max", 1, "upper bound")

	flags = drawCmd.Flags()
	flags.Float64SliceVar(&drawWeights, "weights", nil, "comma separated weights")
	flags.IntVarP(&drawCount, "count", "n", 1, "number of draws")
	flags.BoolVar(&drawReplace, "replace", false, "allow an index to be drawn more than once")
	flags.BoolVar(&drawFreq, "freq", false, "print expected and observed frequencies instead of the draws")
	drawCmd.MarkFlagRequired("weights")

	flags = chanceCmd.Flags()
	flags.Float64Var(&chanceP, "p", 0.5, "probability of success")
	flags.IntVarP(&chanceCount, "count", "n", 1, "number of checks")

	flags = normalCmd.Flags()
	flags.Float64Var(&normalMu, "mu", 0, "mean")
	flags.Float64Var(&normalSig, "sigma", 1, "standard deviation")
}
