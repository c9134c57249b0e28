package dtn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageStore_Copies(t *testing.T) {
	t.Parallel()
	nodes := []Node{NewNode("A", 0), NewNode("B", 0)}
	input := []Message{NewMessage(1, "A", "B", "x")}
	store := newStore(t, nodes, input...)

	input[0].Payload = "changed"
	m, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, "x", m.Payload, "the store owns its own copy")

	_, ok = store.Get(2)
	assert.False(t, ok)

	assert.True(t, store.Holds(1, 0), "the source holds its message from the start")
	assert.False(t, store.Holds(1, 1))
	assert.Equal(t, 1, store.Carriers(1))
}

func TestMessageStore_InsertionOrder(t *testing.T) {
	t.Parallel()
	nodes := []Node{NewNode("A", 0), NewNode("B", 0)}
	store := newStore(t, nodes,
		NewMessage(30, "A", "B", "c"),
		NewMessage(10, "A", "B", "a"),
		NewMessage(20, "B", "A", "b"),
	)

	ids := make([]int, 0, store.Len())
	for _, m := range store.Messages() {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int{30, 10, 20}, ids)
}

func TestMessage_MarkDelivered(t *testing.T) {
	t.Parallel()
	m := NewMessage(1, "A", "B", "x")
	assert.Equal(t, -1, m.DeliveredAt)

	assert.True(t, m.markDelivered(4, 2))
	assert.True(t, m.Delivered)
	assert.Equal(t, 4, m.DeliveredAt)
	assert.Equal(t, 2, m.Hops)

	assert.False(t, m.markDelivered(9, 5), "delivery happens once")
	assert.Equal(t, 4, m.DeliveredAt)
	assert.Equal(t, 2, m.Hops)
}

func TestIndexNodes(t *testing.T) {
	t.Parallel()
	index, err := indexNodes([]Node{NewNode("A", 0), NewNode("B", 1)})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "B": 1}, index)

	_, err = indexNodes(nil)
	assert.ErrorIs(t, err, ErrNoNodes)

	_, err = indexNodes([]Node{NewNode("A", 0), NewNode("A", 1)})
	assert.ErrorIs(t, err, ErrDuplicateNode)

	assert.Equal(t, "A@-3", NewNode("A", -3).String())
}
