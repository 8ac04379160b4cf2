package core

import (
	"context"

	"github.com/ib-77/monads/pkg/monad"
)

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs(ctx, values...)
}

// ToChanManyJust wraps every value in monad.Just
func ToChanManyJust[T any](ctx context.Context, values []T) <-chan monad.Maybe[T] {
	wrapped := make([]monad.Maybe[T], len(values))
	for i, v := range values {
		wrapped[i] = monad.Just(v)
	}
	return ToChanFromArgs(ctx, wrapped...)
}

// FromChanMany drains out until it closes or ctx is done
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
