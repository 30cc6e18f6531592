package backdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularQueueOverwritesOldest(t *testing.T) {
	q := NewCircularQueue[int](3)

	for i := range 5 {
		q.Enqueue(i)
	}

	assert.True(t, q.IsFull())
	assert.Equal(t, 3, q.Length)
	assert.Equal(t, 2, q.At(0))
	assert.Equal(t, 3, q.At(1))
	assert.Equal(t, 4, q.At(2))
	assert.Equal(t, 2, q.PeekFirst())
	assert.Equal(t, 4, q.PeekLast())
}

func TestCircularQueueDequeue(t *testing.T) {
	q := NewCircularQueue[string](2)
	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")

	assert.Equal(t, "b", q.Dequeue())
	assert.Equal(t, "c", q.Dequeue())
	assert.True(t, q.IsEmpty())
	assert.Panics(t, func() { q.Dequeue() })

	q.Enqueue("d")
	assert.Equal(t, "d", q.PeekFirst())
	assert.Equal(t, "d", q.PeekLast())
}

func TestCircularQueueZeroSize(t *testing.T) {
	q := NewCircularQueue[int](0)
	q.Enqueue(1)
	assert.True(t, q.IsEmpty())
}

func TestTrailNeverExceedsBound(t *testing.T) {
	for _, bound := range []int{TrailMinLength, 32, TrailMaxLength - 1} {
		trail := NewTrail(bound)

		for i := range 100 {
			trail.Push(FPt(float64(i), 0))
			assert.Equal(t, min(i+1, bound), trail.Len())
		}

		// newest first
		assert.Equal(t, FPt(99, 0), trail.At(0))
		assert.Equal(t, FPt(float64(100-bound), 0), trail.At(trail.Len()-1))
	}
}

func TestTrailClear(t *testing.T) {
	trail := NewTrail(4)
	trail.Push(FPt(1, 1))
	trail.Clear()
	assert.Equal(t, 0, trail.Len())
	assert.Equal(t, 4, trail.Bound())
}
