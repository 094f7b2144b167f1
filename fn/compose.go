package fn

import (
	"context"
	"fmt"
)

// ─── Composition ──────────────────────────────────────────────────────────────

// Pipe passes v through fns from left to right. With no fns it returns v.
func Pipe[T any](v T, fns ...func(T) T) T {
	for _, f := range fns {
		v = f(v)
	}
	return v
}

// Then returns a function applying f and then g. Use it for stages that
// change type, which Pipe and Compose cannot express.
//
//	wordCount := fn.Then(strings.Fields, func(w []string) int { return len(w) })
func Then[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// Compose returns a function applying fns from right to left:
// Compose(f, g, h)(x) == f(g(h(x))). A single function is returned as is.
// Returns an error wrapping [ErrInvalidArgument] if fns is empty.
func Compose[T any](fns ...func(T) T) (func(T) T, error) {
	switch len(fns) {
	case 0:
		return nil, fmt.Errorf("%w: compose requires at least one function", ErrInvalidArgument)
	case 1:
		return fns[0], nil
	}
	stages := make([]func(T) T, len(fns))
	copy(stages, fns)
	return func(v T) T {
		for i := len(stages) - 1; i >= 0; i-- {
			v = stages[i](v)
		}
		return v
	}, nil
}

// ─── Currying & partial application ───────────────────────────────────────────

// Curry2 turns a two-argument function into a chain of one-argument calls.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R { return f(a, b) }
	}
}

// Curry3 turns a three-argument function into a chain of one-argument calls.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R { return f(a, b, c) }
		}
	}
}

// Curried collects arguments across calls. Once at least the declared arity
// has been supplied it returns the wrapped function's result; before that it
// returns another Curried holding the arguments so far.
type Curried func(args ...any) any

// CurryN curries a variadic function of the given arity. Arguments may be
// supplied one at a time or several per call; surplus arguments in the
// completing call are passed through. An arity of 0 invokes f on the first
// call. Returns an error wrapping [ErrInvalidArgument] if arity < 0.
//
//	add, _ := fn.CurryN(3, func(a ...any) any { return a[0].(int) + a[1].(int) + a[2].(int) })
//	add(1).(fn.Curried)(2, 3) // → 6
func CurryN(arity int, f func(args ...any) any) (Curried, error) {
	if arity < 0 {
		return nil, fmt.Errorf("%w: curry arity must be non-negative, got %d", ErrInvalidArgument, arity)
	}
	return curried(arity, f, nil), nil
}

func curried(arity int, f func(args ...any) any, held []any) Curried {
	return func(args ...any) any {
		all := make([]any, 0, len(held)+len(args))
		all = append(append(all, held...), args...)
		if len(all) >= arity {
			return f(all...)
		}
		return curried(arity, f, all)
	}
}

// Partial fixes the leading arguments of a variadic function.
//
//	path := fn.Partial(filepath.Join, "/srv", "data")
//	path("a.txt") // → "/srv/data/a.txt"
func Partial[T, R any](f func(args ...T) R, fixed ...T) func(args ...T) R {
	held := make([]T, len(fixed))
	copy(held, fixed)
	return func(args ...T) R {
		all := make([]T, 0, len(held)+len(args))
		all = append(append(all, held...), args...)
		return f(all...)
	}
}

// Bind fixes the first argument of a two-argument function.
func Bind[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R { return f(a, b) }
}

// ─── Pipeline ─────────────────────────────────────────────────────────────────

// Stage is a pipeline step that may fail or observe cancellation.
type Stage[T any] func(ctx context.Context, v T) (T, error)

// Pipeline is an immutable list of stages applied to a starting value.
//
//	out := fn.NewPipeline(" Hello ").
//	    Pipe(strings.TrimSpace).
//	    Pipe(strings.ToUpper).
//	    Execute() // → "HELLO"
type Pipeline[T any] struct {
	initial T
	stages  []Stage[T]
}

// NewPipeline starts a pipeline from v.
func NewPipeline[T any](v T) *Pipeline[T] {
	return &Pipeline[T]{initial: v}
}

// Pipe returns a new pipeline with f appended.
func (p *Pipeline[T]) Pipe(f func(T) T) *Pipeline[T] {
	return p.PipeContext(func(_ context.Context, v T) (T, error) { return f(v), nil })
}

// PipeContext returns a new pipeline with a fallible stage appended.
func (p *Pipeline[T]) PipeContext(s Stage[T]) *Pipeline[T] {
	stages := make([]Stage[T], len(p.stages), len(p.stages)+1)
	copy(stages, p.stages)
	return &Pipeline[T]{initial: p.initial, stages: append(stages, s)}
}

// Len returns the number of stages.
func (p *Pipeline[T]) Len() int { return len(p.stages) }

// Execute runs every stage in order and returns the final value. A failing
// stage stops the run; Execute then returns the value reached so far. Use
// [Pipeline.ExecuteContext] to observe the error.
func (p *Pipeline[T]) Execute() T {
	v, _ := p.ExecuteContext(context.Background())
	return v
}

// ExecuteContext runs every stage in order, checking ctx before each one.
// It stops at the first failing stage or cancellation and returns the value
// reached so far together with the error.
func (p *Pipeline[T]) ExecuteContext(ctx context.Context) (T, error) {
	v := p.initial
	for i, s := range p.stages {
		if err := ctx.Err(); err != nil {
			return v, err
		}
		next, err := s(ctx, v)
		if err != nil {
			return v, fmt.Errorf("fn: pipeline stage %d: %w", i, err)
		}
		v = next
	}
	return v, nil
}
