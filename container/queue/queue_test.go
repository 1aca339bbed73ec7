package queue

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tezrry/queuebench/pkg/errors"
)

type record struct {
	id   int
	name string
}

func newAll[T any](t *testing.T, capacity int) map[string]IQueue[T] {
	t.Helper()
	all := make(map[string]IQueue[T], 3)
	for _, k := range Kinds() {
		q, err := New[T](k, capacity)
		require.NoError(t, err)
		all[k.String()] = q
	}
	return all
}

func TestQueue_EnqueueDequeueAll(t *testing.T) {
	for _, n := range []int{0, 1, 99, 100, 101, 1000} {
		for name, q := range newAll[int](t, DefaultCapacity) {
			t.Run(fmt.Sprintf("%s/%d", name, n), func(t *testing.T) {
				for i := 0; i < n; i++ {
					q.Enqueue(i)
				}
				require.Equal(t, n, q.Len())
				for i := 0; i < n; i++ {
					require.True(t, q.Dequeue())
				}
				require.True(t, q.IsEmpty())
				require.Equal(t, 0, q.Len())
			})
		}
	}
}

func TestQueue_FIFO(t *testing.T) {
	in := []record{{1, "a"}, {2, "b"}, {3, "c"}, {4, "d"}, {5, "e"}}
	for name, q := range newAll[record](t, 2) {
		t.Run(name, func(t *testing.T) {
			for _, v := range in {
				q.Enqueue(v)
			}
			require.Equal(t, in, Collect(q))
			require.True(t, q.IsEmpty())
		})
	}
}

func TestQueue_EnqueueDequeuePeek(t *testing.T) {
	for name, q := range newAll[int](t, DefaultCapacity) {
		t.Run(name, func(t *testing.T) {
			q.Enqueue(1)
			q.Enqueue(2)
			q.Enqueue(3)
			q.Dequeue()
			q.Dequeue()

			v, err := q.Peek()
			require.NoError(t, err)
			require.Equal(t, 3, *v)
		})
	}
}

func TestQueue_PeekEmpty(t *testing.T) {
	for name, q := range newAll[string](t, DefaultCapacity) {
		t.Run(name, func(t *testing.T) {
			v, err := q.Peek()
			require.ErrorIs(t, err, errors.ErrEmptyQueue)
			require.Nil(t, v)
		})
	}
}

func TestQueue_EmptyOpsKeepState(t *testing.T) {
	for name, q := range newAll[int](t, 4) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				require.False(t, q.Dequeue())
				_, err := q.Peek()
				require.ErrorIs(t, err, errors.ErrEmptyQueue)
			}
			require.True(t, q.IsEmpty())

			for i := 0; i < 10; i++ {
				q.Enqueue(i)
			}
			require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, Collect(q))

			require.False(t, q.Dequeue())
			q.Enqueue(42)
			v, err := q.Peek()
			require.NoError(t, err)
			require.Equal(t, 42, *v)
		})
	}
}

func TestQueue_PeekIsMutable(t *testing.T) {
	for name, q := range newAll[record](t, DefaultCapacity) {
		t.Run(name, func(t *testing.T) {
			q.Enqueue(record{1, "Sample"})
			v, err := q.Peek()
			require.NoError(t, err)
			v.name = "changed"

			v, err = q.Peek()
			require.NoError(t, err)
			require.Equal(t, "changed", v.name)
		})
	}
}

func TestQueue_Drain(t *testing.T) {
	for name, q := range newAll[int](t, 1) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 17; i++ {
				q.Enqueue(i)
			}
			require.Equal(t, 17, Drain(q))
			require.Equal(t, 0, Drain(q))
			require.True(t, q.IsEmpty())
		})
	}
}

func TestNew(t *testing.T) {
	_, err := New[int](KindArray, -1)
	require.ErrorIs(t, err, errors.ErrInvalidCapacity)

	_, err = New[int](Kind(9), 0)
	require.ErrorIs(t, err, errors.ErrUnsupportedKind)

	q, err := New[int](KindList, -1)
	require.NoError(t, err)
	require.IsType(t, &ListQueue[int]{}, q)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "ArrayQueue", KindArray.String())
	require.Equal(t, "ListQueue", KindList.String())
	require.Equal(t, "StdQueue", KindStd.String())
	require.Equal(t, "Kind(7)", Kind(7).String())
}

func TestArrayQueue_ResizeDoubles(t *testing.T) {
	q := NewArrayQueue[int](DefaultCapacity)
	require.Equal(t, 100, q.Cap())

	resizes := 0
	last := q.Cap()
	for i := 0; i < 150; i++ {
		q.Enqueue(i)
		if q.Cap() != last {
			resizes++
			require.Equal(t, last*2, q.Cap())
			last = q.Cap()
		}
	}
	require.Equal(t, 1, resizes)
	require.Equal(t, 200, q.Cap())

	for i := 0; i < 150; i++ {
		v, err := q.Peek()
		require.NoError(t, err)
		require.Equal(t, i, *v)
		q.Dequeue()
	}
	require.True(t, q.IsEmpty())
}

func TestArrayQueue_ResizeWrapped(t *testing.T) {
	q := NewArrayQueue[int](4)
	for i := 0; i < 4; i++ {
		q.Enqueue(i)
	}
	q.Dequeue()
	q.Dequeue()
	q.Enqueue(4)
	q.Enqueue(5)
	// buffer is [4 5 2 3] with front at 2
	require.Equal(t, 2, q.front)
	require.Equal(t, 4, q.Cap())

	q.Enqueue(6)
	require.Equal(t, 8, q.Cap())
	require.Equal(t, 0, q.front)
	require.Equal(t, 5, q.rear)
	require.Equal(t, []int{2, 3, 4, 5, 6}, Collect[int](q))
}

func TestArrayQueue_ZeroCapacity(t *testing.T) {
	q := NewArrayQueue[string](0)
	require.Equal(t, 0, q.Cap())
	q.Enqueue("test")
	require.Equal(t, 1, q.Cap())
	q.Enqueue("test")
	require.Equal(t, 2, q.Cap())
	q.Enqueue("test")
	require.Equal(t, 4, q.Cap())
	require.Equal(t, 3, Drain[string](q))
}

func TestArrayQueue_NegativeCapacity(t *testing.T) {
	require.Panics(t, func() {
		NewArrayQueue[int](-1)
	})
}

func TestArrayQueue_DequeueClearsSlot(t *testing.T) {
	q := NewArrayQueue[*record](2)
	q.Enqueue(&record{1, "Sample"})
	q.Dequeue()
	require.Nil(t, q.slot[0])
}

func TestArrayQueue_Release(t *testing.T) {
	q := NewArrayQueue[int](DefaultCapacity)
	for i := 0; i < 10; i++ {
		q.Enqueue(i)
	}
	q.Release()
	require.True(t, q.IsEmpty())
	require.Equal(t, 0, q.Cap())

	q.Enqueue(7)
	v, err := q.Peek()
	require.NoError(t, err)
	require.Equal(t, 7, *v)
}

func TestListQueue_NodesReleased(t *testing.T) {
	q := NewListQueue[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	first := q.front
	require.Same(t, q.rear, first.next)
	require.Nil(t, q.rear.next)

	q.Dequeue()
	require.Nil(t, first.next)
	require.Same(t, q.front, q.rear)

	q.Dequeue()
	require.Nil(t, q.front)
	require.Nil(t, q.rear)
}

func TestListQueue_Release(t *testing.T) {
	q := NewListQueue[int]()
	for i := 0; i < 100; i++ {
		q.Enqueue(i)
	}
	q.Release()
	require.True(t, q.IsEmpty())
	require.Nil(t, q.rear)
	require.Equal(t, 0, q.Len())
}
