package sse

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastTargetsSeller(t *testing.T) {
	hub := NewHub()
	mine := hub.Register("c1", "seller-1")
	other := hub.Register("c2", "seller-2")

	hub.Broadcast(&ProductEvent{
		Event:     EventProductApproved,
		ProductID: "p1",
		SellerID:  "seller-1",
		Timestamp: time.Now(),
	})

	select {
	case data := <-mine.Events:
		var event ProductEvent
		require.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, EventProductApproved, event.Event)
		assert.Equal(t, "p1", event.ProductID)
	default:
		t.Fatal("expected event for seller-1 client")
	}

	select {
	case <-other.Events:
		t.Fatal("seller-2 client must not receive seller-1 events")
	default:
	}
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	client := hub.Register("c1", "seller-1")

	hub.Unregister("c1")
	_, open := <-client.Events
	assert.False(t, open)
	assert.Equal(t, 0, hub.ClientCount())

	// Unregistering twice is harmless.
	hub.Unregister("c1")
}

func TestHub_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub()
	client := hub.Register("c1", "seller-1")

	for i := 0; i < 100; i++ {
		hub.Broadcast(&ProductEvent{Event: EventProductUpdated, SellerID: "seller-1"})
	}

	assert.Equal(t, 64, len(client.Events))
}

func TestNotifier_SkipsWhenNoClients(t *testing.T) {
	hub := NewHub()
	notifier := NewHubNotifier(hub)

	// No clients connected; must not panic or block.
	notifier.NotifyProductVerified("seller-1", "p1", "iPhone 13", false)
	notifier.NotifyProductApproved("seller-1", "p1", "iPhone 13")
	notifier.NotifyProductUpdated("seller-1", "p1", "iPhone 13", true, true)
}
