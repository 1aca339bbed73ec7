package queue

import (
	"fmt"

	"github.com/tezrry/queuebench/pkg/errors"
)

// Kind identifies a queue implementation.
type Kind uint8

const (
	KindArray Kind = iota
	KindList
	KindStd
)

func (k Kind) String() string {
	switch k {
	case KindArray:
		return "ArrayQueue"
	case KindList:
		return "ListQueue"
	case KindStd:
		return "StdQueue"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Kinds lists every implementation in report order.
func Kinds() []Kind {
	return []Kind{KindArray, KindList, KindStd}
}

// IQueue is an unbounded FIFO queue.
//
// Dequeue on an empty queue is a no-op and reports false.
// Peek on an empty queue returns errors.ErrEmptyQueue.
type IQueue[T any] interface {
	Enqueue(v T)
	Dequeue() bool
	// Peek returns a pointer to the front element. The pointer is valid
	// until the next Enqueue or Dequeue.
	Peek() (*T, error)
	IsEmpty() bool
	Len() int
}

// New creates an empty queue of the given kind. capacity is only used by
// KindArray.
func New[T any](kind Kind, capacity int) (IQueue[T], error) {
	switch kind {
	case KindArray:
		if capacity < 0 {
			return nil, fmt.Errorf("%w: %d", errors.ErrInvalidCapacity, capacity)
		}
		return NewArrayQueue[T](capacity), nil
	case KindList:
		return NewListQueue[T](), nil
	case KindStd:
		return NewStdQueue[T](), nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedKind, kind)
	}
}
