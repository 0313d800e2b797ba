package chat

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// create fake client
	client := &Client{
		Send:           make(chan []byte, 10),
		ConversationID: "conv1",
	}

	// register client
	hub.register <- client

	// broadcast a test message
	msg := outboundPayload{Action: "reply", Content: "hello test"}
	data, _ := json.Marshal(msg)
	hub.broadcast <- broadcastMsg{ConversationID: "conv1", Data: data}

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	// unregister client
	hub.unregister <- client
}

func TestHubSurvivesSlowClientEviction(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// No buffer and no reader: the first broadcast evicts this client.
	slow := &Client{Send: make(chan []byte), ConversationID: "conv1"}
	hub.register <- slow
	hub.broadcast <- broadcastMsg{ConversationID: "conv1", Data: []byte("evict")}

	// readPump always unregisters on exit, so the evicted client comes
	// back through this path too.
	hub.unregister <- slow

	// The hub must still be alive and delivering.
	healthy := &Client{Send: make(chan []byte, 10), ConversationID: "conv1"}
	hub.register <- healthy
	hub.broadcast <- broadcastMsg{ConversationID: "conv1", Data: []byte("still here")}

	select {
	case got := <-healthy.Send:
		if string(got) != "still here" {
			t.Fatalf("expected %q, got %q", "still here", got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("hub stopped delivering after evicting a slow client")
	}

	hub.unregister <- healthy
}

func TestHubIsolatesConversations(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	a := &Client{Send: make(chan []byte, 10), ConversationID: "conv-a"}
	b := &Client{Send: make(chan []byte, 10), ConversationID: "conv-b"}
	hub.register <- a
	hub.register <- b

	hub.broadcast <- broadcastMsg{ConversationID: "conv-a", Data: []byte("only a")}

	select {
	case got := <-a.Send:
		if string(got) != "only a" {
			t.Fatalf("expected %q, got %q", "only a", got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	select {
	case leaked := <-b.Send:
		t.Fatalf("conversation b received %q", leaked)
	case <-time.After(100 * time.Millisecond):
	}

	hub.unregister <- a
	hub.unregister <- b
}
