package pipeline

import (
	"errors"
	"fmt"
	"maps"
)

var (
	// ErrMissingArgument is returned when a key is in neither inputs nor outputs.
	ErrMissingArgument = errors.New("pipeline: missing argument")
	// ErrInvalidCast is returned when a value does not have the requested type.
	ErrInvalidCast = errors.New("pipeline: invalid cast")
	// ErrDuplicateOutput is returned by AddOutput when the key already exists.
	ErrDuplicateOutput = errors.New("pipeline: duplicate output")
)

// Results holds the inputs of a pipeline run and the outputs produced by
// its steps.
type Results struct {
	Inputs  map[string]any
	Outputs map[string]any

	success bool
}

// NewResults creates results holding a copy of inputs.
func NewResults(inputs map[string]any) *Results {
	res := &Results{
		Inputs:  make(map[string]any, len(inputs)),
		Outputs: make(map[string]any),
	}
	maps.Copy(res.Inputs, inputs)
	return res
}

// Success reports whether every step of the run succeeded.
func (r *Results) Success() bool {
	return r.success
}

// Complete marks the run as successful.
func (r *Results) Complete() {
	r.success = true
}

// SetOutput stores value under key, replacing any previous output.
func (r *Results) SetOutput(key string, value any) {
	r.Outputs[key] = value
}

// AddOutput stores value under key. It fails if the key already exists.
func (r *Results) AddOutput(key string, value any) error {
	if _, ok := r.Outputs[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateOutput, key)
	}
	r.Outputs[key] = value
	return nil
}

// Argument returns the output stored under key, falling back to the input.
func Argument[T any](r *Results, key string) (T, error) {
	if v, ok := r.Outputs[key]; ok {
		return cast[T](key, v)
	}
	return Input[T](r, key)
}

// Input returns the input stored under key.
func Input[T any](r *Results, key string) (T, error) {
	v, ok := r.Inputs[key]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: input %s", ErrMissingArgument, key)
	}
	return cast[T](key, v)
}

// Output returns the output stored under key.
func Output[T any](r *Results, key string) (T, error) {
	v, ok := r.Outputs[key]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: output %s", ErrMissingArgument, key)
	}
	return cast[T](key, v)
}

func cast[T any](key string, v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		return t, fmt.Errorf("%w: %s is %T, not %T", ErrInvalidCast, key, v, t)
	}
	return t, nil
}
