package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_FIFO(t *testing.T) {
	q := NewInMemoryQueue(4)
	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	require.NoError(t, q.Enqueue(3))
	assert.Equal(t, 3, q.Size())

	item, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, item)

	all, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{2, 3}, all)
	assert.Equal(t, 0, q.Size())
}

func TestInMemoryQueue_full(t *testing.T) {
	q := NewInMemoryQueue(1)
	require.NoError(t, q.Enqueue("a"))

	err := q.Enqueue("b")
	require.Error(t, err)
	assert.True(t, IsQueueFull(err))
	assert.Equal(t, 1, q.Size())
}

func TestInMemoryQueue_empty(t *testing.T) {
	q := NewInMemoryQueue(1)

	_, err := q.Dequeue()
	assert.True(t, IsQueueEmpty(err))

	all, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestInMemoryQueue_ClearQueue(t *testing.T) {
	q := NewInMemoryQueue(8)
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(i))
	}
	require.NoError(t, q.ClearQueue())
	assert.Equal(t, 0, q.Size())
}
