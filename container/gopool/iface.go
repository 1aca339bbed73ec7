package gopool

import "context"

type TaskFunc func(ctx context.Context, param ...interface{})
type TaskFutureFunc func(ctx context.Context, param ...interface{}) (interface{}, error)

// Pool runs tasks on a bounded set of goroutines.
//
// ScheduleFuture delivers exactly one value on chRsp: the task result, or an
// error if the task failed, panicked or its context was done before it ran.
type Pool interface {
	Schedule(ctx context.Context, task TaskFunc, param ...interface{}) error
	ScheduleFuture(ctx context.Context, chRsp chan interface{}, task TaskFutureFunc, param ...interface{}) error
	Release()
}
