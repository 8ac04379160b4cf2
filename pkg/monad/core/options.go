package core

import (
	"context"
	"io"

	"github.com/lthibault/log"
)

type OptionKey string

const (
	LoggerOptionKey OptionKey = "logger_options"
	WorkerOptionKey OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

var discard = log.New(log.WithWriter(io.Discard))

func WithLogger(ctx context.Context, logger log.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, logger)
}

// Logger returns the logger bound to ctx, or one that discards everything.
func Logger(ctx context.Context) log.Logger {
	if logger, ok := ctx.Value(LoggerOptionKey).(log.Logger); ok && logger != nil {
		return logger
	}
	return discard
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}
