package core

import (
	"context"
	"sync"
)

// Locomotive pulls values from inputCh, runs engine on each and forwards the
// result to outCh. It returns when inputCh closes or ctx is done.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out,
	engine func(ctx context.Context, input In) Out,
	onProcessed func(ctx context.Context, out Out), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			pr := engine(ctx, in)

			select {
			case <-ctx.Done():
				return
			case outCh <- pr:
				if onProcessed != nil {
					onProcessed(ctx, pr)
				}
			}
		}
	}
}
