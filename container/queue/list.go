package queue

import "github.com/tezrry/queuebench/pkg/errors"

type listNode[T any] struct {
	elt  T
	next *listNode[T]
}

// ListQueue is a FIFO queue over a singly-linked list. Every Enqueue
// allocates one node.
type ListQueue[T any] struct {
	front *listNode[T]
	rear  *listNode[T]
	num   int
}

func NewListQueue[T any]() *ListQueue[T] {
	return &ListQueue[T]{}
}

func (inst *ListQueue[T]) Enqueue(v T) {
	node := &listNode[T]{elt: v}
	if inst.rear == nil {
		inst.front = node
		inst.rear = node
	} else {
		inst.rear.next = node
		inst.rear = node
	}
	inst.num++
}

// Dequeue unlinks the front node. It does nothing and returns false if the
// queue is empty.
func (inst *ListQueue[T]) Dequeue() bool {
	node := inst.front
	if node == nil {
		return false
	}

	inst.front = node.next
	if inst.front == nil {
		inst.rear = nil
	}
	node.next = nil
	inst.num--
	return true
}

func (inst *ListQueue[T]) Peek() (*T, error) {
	if inst.front == nil {
		return nil, errors.ErrEmptyQueue
	}
	return &inst.front.elt, nil
}

func (inst *ListQueue[T]) IsEmpty() bool {
	return inst.front == nil
}

func (inst *ListQueue[T]) Len() int {
	return inst.num
}

// Release unlinks every node from front to rear.
func (inst *ListQueue[T]) Release() {
	for inst.Dequeue() {
	}
}
