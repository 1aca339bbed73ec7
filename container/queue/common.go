package queue

// DefaultCapacity is the initial buffer size of an ArrayQueue.
const DefaultCapacity = 100

// Drain dequeues every element of q and returns how many were removed.
func Drain[T any](q IQueue[T]) int {
	n := 0
	for q.Dequeue() {
		n++
	}
	return n
}

// Collect drains q and returns its elements in dequeue order.
func Collect[T any](q IQueue[T]) []T {
	out := make([]T, 0, q.Len())
	for {
		v, err := q.Peek()
		if err != nil {
			return out
		}
		out = append(out, *v)
		q.Dequeue()
	}
}
