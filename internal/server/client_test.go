package server

import (
	"testing"
	"time"

	"snipes-server/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ForwardStopsAfterWritePump(t *testing.T) {
	c := &Client{
		Send: make(chan api.ServerResponse), // никто не читает: writePump уже вышел
		done: make(chan struct{}),
	}
	close(c.done)

	updates := make(chan api.ServerResponse, 3)
	for i := 0; i < 3; i++ {
		updates <- api.ServerResponse{Tick: i}
	}
	close(updates)

	finished := make(chan struct{})
	go func() {
		c.forward(updates)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("forward blocked on a dead write pump")
	}

	_, ok := <-c.Send
	assert.False(t, ok, "Send must be closed")
	assert.Len(t, updates, 0, "hub channel must be drained")
}

func TestClient_ForwardDeliversInOrder(t *testing.T) {
	c := &Client{
		Send: make(chan api.ServerResponse, 4),
		done: make(chan struct{}),
	}

	updates := make(chan api.ServerResponse, 2)
	updates <- api.ServerResponse{Tick: 1}
	updates <- api.ServerResponse{Tick: 2}
	close(updates)

	c.forward(updates)

	require.Equal(t, 1, (<-c.Send).Tick)
	require.Equal(t, 2, (<-c.Send).Tick)
	_, ok := <-c.Send
	assert.False(t, ok)
}
