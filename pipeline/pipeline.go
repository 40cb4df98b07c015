// Package pipeline runs a sequence of generation steps over shared results.
//
// Steps run one after another on the calling goroutine. A step that draws
// random numbers should take its generator from the results, typically the
// input stored under RandKey, so that a run is reproducible from its seed.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nozzle/randseed"
)

// RandKey is the conventional input key for the run's generator.
const RandKey = "rand"

// ErrStepFailed wraps the error of the step that stopped a run.
var ErrStepFailed = errors.New("pipeline: step failed")

// Step is one stage of a pipeline.
type Step interface {
	ApplyStep(ctx context.Context, res *Results) error
}

// StepFunc adapts a function to a Step.
type StepFunc func(ctx context.Context, res *Results) error

// ApplyStep calls f.
func (f StepFunc) ApplyStep(ctx context.Context, res *Results) error {
	return f(ctx, res)
}

// Logger receives progress messages.
type Logger func(msg string)

// MultiLogger returns a Logger that forwards each message to every non-nil
// logger in order.
func MultiLogger(loggers ...Logger) Logger {
	return func(msg string) {
		for _, l := range loggers {
			if l != nil {
				l(msg)
			}
		}
	}
}

// Config configures a Pipeline.
type Config struct {
	// Logger receives progress messages.
	// Default: nil (discard)
	Logger Logger

	// Verbose adds a message before each step.
	// Default: false
	Verbose bool
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		Logger:  nil,
		Verbose: false,
	}
}

// Pipeline is an ordered list of steps.
type Pipeline struct {
	Config Config
	Steps  []Step
}

// New creates a pipeline running steps in order.
func New(config Config, steps ...Step) *Pipeline {
	return &Pipeline{Config: config, Steps: steps}
}

func (p *Pipeline) log(format string, args ...any) {
	if p.Config.Logger != nil {
		p.Config.Logger(fmt.Sprintf(format, args...))
	}
}

// Run executes the steps against a copy of inputs. It stops at the first
// step that fails or when ctx is done, returning the partial results along
// with the error. On success the results are marked complete.
func (p *Pipeline) Run(ctx context.Context, inputs map[string]any) (*Results, error) {
	p.log("Running pipeline...")
	res := NewResults(inputs)

	for i, step := range p.Steps {
		if err := ctx.Err(); err != nil {
			p.log("Pipeline failed.")
			return res, err
		}
		if p.Config.Verbose {
			p.log("Step %d/%d: %s", i+1, len(p.Steps), stepName(step))
		}
		if err := step.ApplyStep(ctx, res); err != nil {
			p.log("Pipeline failed.")
			return res, fmt.Errorf("%w: step %d: %w", ErrStepFailed, i+1, err)
		}
	}

	res.Complete()
	p.log("Pipeline complete.")
	return res, nil
}

// RandInput returns the generator stored under RandKey.
func RandInput(res *Results) (*randseed.Rand, error) {
	return Argument[*randseed.Rand](res, RandKey)
}

func stepName(step Step) string {
	if n, ok := step.(interface{ Name() string }); ok {
		return n.Name()
	}
	name := fmt.Sprintf("%T", step)
	return strings.TrimPrefix(name, "*")
}
