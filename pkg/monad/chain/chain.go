package chain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lthibault/log"

	"github.com/ib-77/monads/pkg/monad"
	"github.com/ib-77/monads/pkg/monad/core"
)

type Chain[T any] struct {
	ctx       context.Context
	id        uuid.UUID
	createdAt time.Time
	res       monad.Maybe[T]
	steps     int
}

func Start[T any](ctx context.Context, m monad.Maybe[T]) Chain[T] {
	return Chain[T]{
		ctx:       ctx,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		res:       m,
	}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, monad.Just(v))
}

func (c Chain[T]) Result() monad.Maybe[T] {
	return c.res
}

func (c Chain[T]) Id() uuid.UUID {
	return c.id
}

func (c Chain[T]) CreatedAt() time.Time {
	return c.createdAt
}

// Steps returns how many steps were actually applied
func (c Chain[T]) Steps() int {
	return c.steps
}

func (c Chain[T]) logger() log.Logger {
	return core.Logger(c.ctx).WithField("chain", c.id.String())
}

// advance builds the successor of c holding res
func advance[T, U any](c Chain[T], res monad.Maybe[U]) Chain[U] {
	n := Chain[U]{
		ctx:       c.ctx,
		id:        c.id,
		createdAt: c.createdAt,
		res:       res,
		steps:     c.steps + 1,
	}

	l := n.logger().WithField("step", n.steps)
	if res.IsAbsent() {
		l.Debug("chain became absent")
	} else {
		l.WithField("value", res.String()).Debug("step applied")
	}
	return n
}

// Bind applies a context-free step, see monad.Maybe.Bind
func (c Chain[T]) Bind(f func(T) monad.Maybe[T]) Chain[T] {
	if c.res.IsAbsent() {
		return c
	}
	return advance(c, f(c.res.Value()))
}

func (c Chain[T]) Then(onPresent func(ctx context.Context, t T) monad.Maybe[T]) Chain[T] {
	if c.res.IsAbsent() {
		return c
	}
	return advance(c, onPresent(c.ctx, c.res.Value()))
}

// Map transforms the held value
func (c Chain[T]) Map(onPresent func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsAbsent() {
		return c
	}
	return advance(c, monad.Just(onPresent(c.ctx, c.res.Value())))
}

// Ensure triggers side effects without changing the result
func (c Chain[T]) Ensure(onPresent func(context.Context, T), onAbsent func(context.Context)) Chain[T] {
	if c.res.IsAbsent() {
		if onAbsent != nil {
			onAbsent(c.ctx)
		}
		return c
	}

	if onPresent != nil {
		onPresent(c.ctx, c.res.Value())
	}
	return c
}

func (c Chain[T]) Finally(onPresent func(context.Context, T) T, onAbsent func(context.Context) T) T {
	return Finally(c, onPresent, onAbsent)
}

// Bind is Chain.Bind for steps that change the value type
func Bind[T, U any](c Chain[T], f func(T) monad.Maybe[U]) Chain[U] {
	if c.res.IsAbsent() {
		return skip[T, U](c)
	}
	return advance(c, f(c.res.Value()))
}

// Then is Chain.Then for steps that change the value type
func Then[T, U any](c Chain[T], onPresent func(ctx context.Context, t T) monad.Maybe[U]) Chain[U] {
	if c.res.IsAbsent() {
		return skip[T, U](c)
	}
	return advance(c, onPresent(c.ctx, c.res.Value()))
}

// Map is Chain.Map for transformations that change the value type
func Map[T, U any](c Chain[T], onPresent func(ctx context.Context, t T) U) Chain[U] {
	if c.res.IsAbsent() {
		return skip[T, U](c)
	}
	return advance(c, monad.Just(onPresent(c.ctx, c.res.Value())))
}

// Finally collapses the chain into a final value
func Finally[T, R any](c Chain[T], onPresent func(context.Context, T) R, onAbsent func(context.Context) R) R {
	return monad.Match(c.res,
		func(v T) R { return onPresent(c.ctx, v) },
		func() R { return onAbsent(c.ctx) })
}

func skip[T, U any](c Chain[T]) Chain[U] {
	return Chain[U]{
		ctx:       c.ctx,
		id:        c.id,
		createdAt: c.createdAt,
		res:       monad.Nothing[U](),
		steps:     c.steps,
	}
}
