package bench

import (
	"fmt"
	"time"

	"github.com/tezrry/queuebench/container/queue"
	"github.com/tezrry/queuebench/pkg/errors"
	"github.com/tezrry/queuebench/util/clock"
)

// Case is one (element type, queue kind) combination.
type Case struct {
	Label    string
	Kind     queue.Kind
	TypeName string

	run func(c *Config) (time.Duration, error)
}

// Result is the outcome of one case.
type Result struct {
	Label    string
	Duration time.Duration
}

type releaser interface {
	Release()
}

func newCase[T any](kind queue.Kind, typeName string, sample T) Case {
	return Case{
		Label:    fmt.Sprintf("%s[%s]", kind, typeName),
		Kind:     kind,
		TypeName: typeName,
		run: func(c *Config) (time.Duration, error) {
			q, err := queue.New[T](kind, c.InitialCapacity)
			if err != nil {
				return 0, err
			}

			d := measure(q, sample, c.Operations)

			if !q.IsEmpty() {
				return d, fmt.Errorf("%w: %d left", errors.ErrQueueNotDrained, q.Len())
			}
			if r, ok := q.(releaser); ok {
				r.Release()
			}
			return d, nil
		},
	}
}

// measure times ops enqueues of sample followed by ops dequeues.
func measure[T any](q queue.IQueue[T], sample T, ops int) time.Duration {
	sw := clock.Start()
	for i := 0; i < ops; i++ {
		q.Enqueue(sample)
	}
	for i := 0; i < ops; i++ {
		q.Dequeue()
	}
	return sw.Elapsed()
}

// Cases returns the nine cases in report order: every queue kind for int,
// then string, then Record.
func Cases() []Case {
	kinds := queue.Kinds()
	cases := make([]Case, 0, 3*len(kinds))
	for _, k := range kinds {
		cases = append(cases, newCase[int](k, "int", SampleInt))
	}
	for _, k := range kinds {
		cases = append(cases, newCase[string](k, "string", SampleString))
	}
	for _, k := range kinds {
		cases = append(cases, newCase[Record](k, "Record", SampleRecord))
	}
	return cases
}

// Run executes the case synchronously on the calling goroutine.
func (c Case) Run(config *Config) (Result, error) {
	d, err := c.run(config)
	if err != nil {
		return Result{}, err
	}
	return Result{Label: c.Label, Duration: d}, nil
}
