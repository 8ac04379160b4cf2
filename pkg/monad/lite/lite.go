package lite

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/ib-77/monads/pkg/monad"
	"github.com/ib-77/monads/pkg/monad/core"
)

// Run binds f over every value received from inputCh using the given number
// of worker lines. The output channel closes once inputCh is drained or ctx
// is done. A non-positive lines falls back to core.GetWorkerMaxCount.
func Run[T, U any](ctx context.Context, inputCh <-chan monad.Maybe[T],
	f func(ctx context.Context, t T) monad.Maybe[U], lines int) (<-chan monad.Maybe[U], error) {
	return run(ctx, inputCh, Bind(f), lines)
}

type indexed[T any] struct {
	pos int
	m   monad.Maybe[T]
}

// Collect binds f over values and returns the results in input order.
func Collect[T, U any](ctx context.Context, values []T,
	f func(ctx context.Context, t T) monad.Maybe[U], lines int) ([]monad.Maybe[U], error) {

	in := make([]indexed[T], len(values))
	for i, v := range values {
		in[i] = indexed[T]{pos: i, m: monad.Just(v)}
	}

	engine := Bind(f)
	outCh, err := run(ctx, core.ToChanMany(ctx, in),
		func(ctx context.Context, x indexed[T]) indexed[U] {
			return indexed[U]{pos: x.pos, m: engine(ctx, x.m)}
		}, lines)
	if err != nil {
		return nil, err
	}

	out := make([]monad.Maybe[U], len(values))
	for _, r := range core.FromChanMany(ctx, outCh) {
		out[r.pos] = r.m
	}

	return out, ctx.Err()
}

// Bind adapts f into an engine that skips absent inputs
func Bind[T, U any](f func(ctx context.Context, t T) monad.Maybe[U]) func(ctx context.Context,
	input monad.Maybe[T]) monad.Maybe[U] {
	return func(ctx context.Context, input monad.Maybe[T]) monad.Maybe[U] {
		if input.IsAbsent() {
			return monad.Nothing[U]()
		}
		return f(ctx, input.Value())
	}
}

// Step adapts a context-free step
func Step[T, U any](f func(t T) monad.Maybe[U]) func(ctx context.Context, t T) monad.Maybe[U] {
	return func(_ context.Context, t T) monad.Maybe[U] {
		return f(t)
	}
}

func run[In, Out any](ctx context.Context, inputCh <-chan In,
	engine func(ctx context.Context, input In) Out, lines int) (<-chan Out, error) {

	if lines < 1 {
		lines = core.GetWorkerMaxCount(ctx, 1)
	}

	pool, err := ants.NewPool(lines)
	if err != nil {
		return nil, fmt.Errorf("lite: worker pool: %w", err)
	}

	out := make(chan Out)
	wg := &sync.WaitGroup{}

	started := 0
	for i := 0; i < lines; i++ {
		wg.Add(1)
		if err = pool.Submit(func() {
			core.Locomotive(ctx, inputCh, out, engine, nil, wg)
		}); err != nil {
			wg.Done()
			break
		}
		started++
	}

	if started == 0 {
		pool.Release()
		return nil, fmt.Errorf("lite: start worker line: %w", err)
	}

	go func() {
		wg.Wait()
		close(out)
		pool.Release()
	}()

	if err != nil {
		core.Logger(ctx).WithError(err).Warn("worker line not started")
	}

	return out, nil
}
