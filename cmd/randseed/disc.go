package main

import (
	"context"
	"log"
	"math"
	"strconv"

	"github.com/nozzle/randseed"
	"github.com/nozzle/randseed/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	scatterCount int
	scatterPick  int
)

var discCmd = &cobra.Command{
	Use:   "disc [count]",
	Short: "Points inside the unit disc",
	Long: `Generate points uniformly inside the unit disc as x,y rows. Points are
generated in parallel and do not depend on --workers. For example:
  randseed disc 100000 --seed 7 > points.csv`,
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

		points, err := discPoints(cmd.Context(), r, n, parallelConfig())
		if err != nil {
			return err
		}

		t := newTable(cmd.OutOrStdout(), "x", "y")
		for _, p := range points {
			if err := t.Write(formatFloat(p[0]), formatFloat(p[1])); err != nil {
				return err
			}
		}
		return t.Flush()
	},
}

var scatterCmd = &cobra.Command{
	Use:   "scatter",
	Short: "Pick points from the unit disc weighted by distance from the centre",
	Long: `Place --count points in the unit disc, then pick --pick distinct points with
probability proportional to their distance from the centre. For example:
  randseed scatter --count 500 --pick 20 --seed 3 -v`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRand()
		if err != nil {
			return err
		}

		config := pipeline.DefaultConfig()
		config.Verbose = viper.GetBool("verbose")
		if config.Verbose {
			config.Logger = func(msg string) { log.Println(msg) }
		}

		res, err := scatterPipeline(config).Run(cmd.Context(), map[string]any{
			pipeline.RandKey: r,
			"count":          scatterCount,
			"pick":           scatterPick,
			"parallel":       parallelConfig(),
		})
		if err != nil {
			return err
		}

		points, err := pipeline.Output[[][2]float64](res, "points")
		if err != nil {
			return err
		}
		picked, err := pipeline.Output[[]int](res, "picked")
		if err != nil {
			return err
		}

		t := newTable(cmd.OutOrStdout(), "index", "x", "y")
		for _, idx := range picked {
			p := points[idx]
			if err := t.Write(strconv.Itoa(idx), formatFloat(p[0]), formatFloat(p[1])); err != nil {
				return err
			}
		}
		return t.Flush()
	},
}

func discPoints(ctx context.Context, r *randseed.Rand, n int, config randseed.ParallelConfig) ([][2]float64, error) {
	points := make([][2]float64, n)
	err := randseed.ParallelChunks(ctx, r, n, config, func(start, end int, rng *randseed.Rand) {
		for i := start; i < end; i++ {
			x, y := rng.InsideUnitCircle()
			points[i] = [2]float64{x, y}
		}
	})
	return points, err
}

func scatterPipeline(config pipeline.Config) *pipeline.Pipeline {
	return pipeline.New(config, placeStep{}, pickStep{})
}

// placeStep fills the "points" output with "count" points in the unit disc.
type placeStep struct{}

func (placeStep) Name() string { return "place" }

func (placeStep) ApplyStep(ctx context.Context, res *pipeline.Results) error {
	r, err := pipeline.RandInput(res)
	if err != nil {
		return err
	}
	n, err := pipeline.Input[int](res, "count")
	if err != nil {
		return err
	}
	config, err := pipeline.Input[randseed.ParallelConfig](res, "parallel")
	if err != nil {
		config = randseed.DefaultParallelConfig()
	}

	points, err := discPoints(ctx, r, n, config)
	if err != nil {
		return err
	}
	return res.AddOutput("points", points)
}

// pickStep draws "pick" distinct points, weighted by distance from the
// centre, into the "picked" output.
type pickStep struct{}

func (pickStep) Name() string { return "pick" }

func (pickStep) ApplyStep(ctx context.Context, res *pipeline.Results) error {
	r, err := pipeline.RandInput(res)
	if err != nil {
		return err
	}
	points, err := pipeline.Output[[][2]float64](res, "points")
	if err != nil {
		return err
	}
	k, err := pipeline.Input[int](res, "pick")
	if err != nil {
		return err
	}

	weights := make([]float64, len(points))
	for i, p := range points {
		weights[i] = math.Hypot(p[0], p[1])
	}
	return res.AddOutput("picked", randseed.DrawWeightedIndexes(r, weights, k, false))
}

func init() {
	rootCmd.AddCommand(discCmd, scatterCmd)

	flags := scatterCmd.Flags()
	flags.IntVarP(&scatterCount, "count", "n", 100, "number of points to place")
	flags.IntVarP(&scatterPick, "pick", "k", 10, "number of points to pick")
}
