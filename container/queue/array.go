package queue

import (
	"fmt"

	"github.com/tezrry/queuebench/pkg/errors"
	util_math "github.com/tezrry/queuebench/util/math"
)

// ArrayQueue is a FIFO queue over a circular buffer that doubles when full.
type ArrayQueue[T any] struct {
	slot  []T
	front int
	rear  int
	count int
}

// NewArrayQueue creates an ArrayQueue with the given initial capacity.
// It panics if capacity is negative.
func NewArrayQueue[T any](capacity int) *ArrayQueue[T] {
	if capacity < 0 {
		panic(fmt.Errorf("%w: %d", errors.ErrInvalidCapacity, capacity))
	}

	return &ArrayQueue[T]{
		slot: make([]T, capacity),
	}
}

func (inst *ArrayQueue[T]) resize() {
	size, ok := util_math.DoubleCapacity(len(inst.slot))
	if !ok {
		panic(fmt.Errorf("%w: %d", errors.ErrCapacityOverflow, len(inst.slot)))
	}

	slot := make([]T, size)
	// live region is slot[front:] followed by slot[:rear] when it wraps
	n := copy(slot, inst.slot[inst.front:])
	if n < inst.count {
		copy(slot[n:], inst.slot[:inst.rear])
	}

	inst.slot = slot
	inst.front = 0
	inst.rear = inst.count
}

func (inst *ArrayQueue[T]) Enqueue(v T) {
	if inst.count == len(inst.slot) {
		inst.resize()
	}

	inst.slot[inst.rear] = v
	inst.rear++
	if inst.rear == len(inst.slot) {
		inst.rear = 0
	}
	inst.count++
}

// Dequeue removes the front element. It does nothing and returns false
// if the queue is empty.
func (inst *ArrayQueue[T]) Dequeue() bool {
	if inst.count == 0 {
		return false
	}

	var zero T
	inst.slot[inst.front] = zero
	inst.front++
	if inst.front == len(inst.slot) {
		inst.front = 0
	}
	inst.count--
	return true
}

func (inst *ArrayQueue[T]) Peek() (*T, error) {
	if inst.count == 0 {
		return nil, errors.ErrEmptyQueue
	}
	return &inst.slot[inst.front], nil
}

func (inst *ArrayQueue[T]) IsEmpty() bool {
	return inst.count == 0
}

func (inst *ArrayQueue[T]) Len() int {
	return inst.count
}

// Cap returns the size of the underlying buffer.
func (inst *ArrayQueue[T]) Cap() int {
	return len(inst.slot)
}

// Release drops the buffer. The queue is empty with zero capacity afterwards
// and may be reused.
func (inst *ArrayQueue[T]) Release() {
	inst.slot = nil
	inst.front = 0
	inst.rear = 0
	inst.count = 0
}
