package gopool

import (
	"context"

	"github.com/panjf2000/ants/v2"

	"github.com/tezrry/queuebench/pkg/logging"
)

// AntsPool is a Pool backed by an ants goroutine pool.
type AntsPool struct {
	pool *ants.Pool
}

var _ Pool = (*AntsPool)(nil)

// NewAntsPool creates a pool with at most size workers. A pool of size 1
// runs tasks one at a time in submission order.
func NewAntsPool(size int) (*AntsPool, error) {
	p, err := ants.NewPool(size, ants.WithPanicHandler(func(v interface{}) {
		logging.Errorf("panic occurs in pooled task: %v", v)
	}))
	if err != nil {
		return nil, err
	}

	return &AntsPool{pool: p}, nil
}

func (inst *AntsPool) Schedule(ctx context.Context, f TaskFunc, param ...interface{}) error {
	task := newTask(ctx, f, param...)
	err := inst.pool.Submit(func() {
		defer freeTask(task)
		task.run()
	})
	if err != nil {
		freeTask(task)
	}
	return err
}

func (inst *AntsPool) ScheduleFuture(ctx context.Context, chRsp chan interface{}, f TaskFutureFunc, param ...interface{}) error {
	task := newTaskFuture(ctx, chRsp, f, param...)
	err := inst.pool.Submit(func() {
		defer freeTaskFuture(task)
		task.run()
	})
	if err != nil {
		freeTaskFuture(task)
	}
	return err
}

// Running returns the number of busy workers.
func (inst *AntsPool) Running() int {
	return inst.pool.Running()
}

func (inst *AntsPool) Release() {
	inst.pool.Release()
}
