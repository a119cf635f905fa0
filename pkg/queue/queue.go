package queue

// Queue represents a basic bounded queue.
// Implementations must be thread-safe.
type Queue interface {
	// Enqueue adds an item to the end of the queue.
	// It returns ErrQueueFull instead of blocking when there is no room.
	Enqueue(item interface{}) error
	// Dequeue removes and returns the item at the front of the queue.
	Dequeue() (interface{}, error)
	// Size returns the number of pending items.
	Size() int
	// ReadAllMessages drains every pending item in FIFO order.
	ReadAllMessages() ([]interface{}, error)
	// ClearQueue drops every pending item.
	ClearQueue() error
}
