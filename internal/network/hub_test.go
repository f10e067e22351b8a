package network

import (
	"testing"

	"snipes-server/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_RegisterAndBroadcast(t *testing.T) {
	hub := NewBroadcaster()
	a := hub.Register("a")
	b := hub.Register("b")
	require.Equal(t, 2, hub.SubscriberCount())

	hub.Broadcast(api.ServerResponse{Type: api.ResponseUpdate, Tick: 7})

	assert.Equal(t, 7, (<-a).Tick)
	assert.Equal(t, 7, (<-b).Tick)
}

func TestBroadcaster_SendTo(t *testing.T) {
	hub := NewBroadcaster()
	a := hub.Register("a")
	b := hub.Register("b")

	hub.SendTo("a", api.ServerResponse{Type: api.ResponseError})
	hub.SendTo("missing", api.ServerResponse{Type: api.ResponseError})

	assert.Equal(t, api.ResponseError, (<-a).Type)
	assert.Len(t, b, 0)
}

func TestBroadcaster_ReRegisterClosesOldChannel(t *testing.T) {
	hub := NewBroadcaster()
	old := hub.Register("a")
	fresh := hub.Register("a")

	_, ok := <-old
	assert.False(t, ok, "old channel must be closed")
	assert.Equal(t, 1, hub.SubscriberCount())

	hub.Unregister("a")
	_, ok = <-fresh
	assert.False(t, ok)
	assert.Equal(t, 0, hub.SubscriberCount())

	// Повторный Unregister безопасен
	hub.Unregister("a")
}

func TestBroadcaster_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewBroadcaster()
	ch := hub.Register("slow")

	for i := 0; i < subscriberBuffer*3; i++ {
		hub.Broadcast(api.ServerResponse{Tick: i})
	}

	assert.Len(t, ch, subscriberBuffer)
	assert.Equal(t, 0, (<-ch).Tick, "oldest snapshots are kept, overflow is dropped")
}
