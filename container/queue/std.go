package queue

import (
	"container/list"

	"github.com/tezrry/queuebench/pkg/errors"
)

// StdQueue is the baseline FIFO queue built on container/list. Elements are
// boxed as *T so that Peek can hand out a mutable reference.
type StdQueue[T any] struct {
	l *list.List
}

func NewStdQueue[T any]() *StdQueue[T] {
	return &StdQueue[T]{l: list.New()}
}

func (inst *StdQueue[T]) Enqueue(v T) {
	inst.l.PushBack(&v)
}

func (inst *StdQueue[T]) Dequeue() bool {
	e := inst.l.Front()
	if e == nil {
		return false
	}
	inst.l.Remove(e)
	return true
}

func (inst *StdQueue[T]) Peek() (*T, error) {
	e := inst.l.Front()
	if e == nil {
		return nil, errors.ErrEmptyQueue
	}
	return e.Value.(*T), nil
}

func (inst *StdQueue[T]) IsEmpty() bool {
	return inst.l.Len() == 0
}

func (inst *StdQueue[T]) Len() int {
	return inst.l.Len()
}
