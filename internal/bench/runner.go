package bench

import (
	"context"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/tezrry/queuebench/container/gopool"
	"github.com/tezrry/queuebench/container/queue"
	util_math "github.com/tezrry/queuebench/util/math"
)

// Runner executes benchmark cases one after another on a single pooled worker.
type Runner struct {
	config Config
	pool   gopool.Pool
}

func NewRunner(config ...ConfigFunc) (*Runner, error) {
	inst := &Runner{config: defaultConfig()}
	for _, cf := range config {
		cf(&inst.config)
	}

	if err := inst.config.validate(); err != nil {
		return nil, err
	}

	pool, err := gopool.NewAntsPool(1)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "create worker pool")
	}
	inst.pool = pool

	return inst, nil
}

// Config returns a copy of the effective configuration.
func (inst *Runner) Config() Config {
	return inst.config
}

// Run executes every case from Cases in order. It stops at the first failing
// case and returns the results gathered so far together with the error.
// ctx is checked between cases; a running case is never interrupted.
func (inst *Runner) Run(ctx context.Context) ([]Result, error) {
	return inst.RunCases(ctx, Cases())
}

func (inst *Runner) RunCases(ctx context.Context, cases []Case) ([]Result, error) {
	logger := inst.config.Logger
	logger.Debugf("running %d cases, operations=%d, initial capacity=%d, expected %s resizes=%d",
		len(cases), inst.config.Operations, inst.config.InitialCapacity, queue.KindArray,
		util_math.GrowthSteps(inst.config.InitialCapacity, inst.config.Operations))

	results := make([]Result, 0, len(cases))
	chRsp := make(chan interface{}, 1)
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return results, pkgerrors.Wrapf(err, "case %s", c.Label)
		}

		err := inst.pool.ScheduleFuture(ctx, chRsp, inst.runCase, c)
		if err != nil {
			return results, pkgerrors.Wrapf(err, "schedule case %s", c.Label)
		}

		switch rsp := (<-chRsp).(type) {
		case error:
			return results, pkgerrors.Wrapf(rsp, "case %s", c.Label)
		case Result:
			logger.Debugf("case %s finished in %v", rsp.Label, rsp.Duration)
			results = append(results, rsp)
			if inst.config.Output != nil {
				if err = WriteResult(inst.config.Output, rsp); err != nil {
					return results, pkgerrors.Wrap(err, "write result")
				}
			}
		default:
			return results, fmt.Errorf("case %s: unexpected response %T", c.Label, rsp)
		}
	}

	return results, nil
}

func (inst *Runner) runCase(ctx context.Context, param ...interface{}) (interface{}, error) {
	c := param[0].(Case)
	r, err := c.Run(&inst.config)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Close releases the worker pool.
func (inst *Runner) Close() {
	inst.pool.Release()
}
