package queue

import "fmt"

// ErrQueueFull is returned when an item is enqueued on a queue at capacity.
type ErrQueueFull struct {
	Capacity int
}

func (e *ErrQueueFull) Error() string {
	return fmt.Sprintf("queue is full (capacity %d)", e.Capacity)
}

func IsQueueFull(err error) bool {
	_, ok := err.(*ErrQueueFull)
	return ok
}

// ErrQueueEmpty is returned when dequeuing from an empty queue.
type ErrQueueEmpty struct{}

func (e *ErrQueueEmpty) Error() string {
	return "queue is empty"
}

func IsQueueEmpty(err error) bool {
	_, ok := err.(*ErrQueueEmpty)
	return ok
}
