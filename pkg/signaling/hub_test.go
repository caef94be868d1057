package signaling

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestHubDeliversOnlyToAddressedPeer(t *testing.T) {
	hub := NewHub()
	p1 := hub.Join("peer-1")
	p2 := hub.Join("peer-2")
	p3 := hub.Join("peer-3")

	var mu sync.Mutex
	var p2Got, p3Got []Message

	p2.OnMessage(func(m Message) {
		mu.Lock()
		p2Got = append(p2Got, m)
		mu.Unlock()
	})
	p3.OnMessage(func(m Message) {
		mu.Lock()
		p3Got = append(p3Got, m)
		mu.Unlock()
	})

	if err := p1.Send(context.Background(), Message{Kind: KindOffer, To: "peer-3", Payload: []byte("hi")}); err != nil {
		t.Fatalf("send: %v", err)
	}

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		got := len(p3Got)
		mu.Unlock()
		if got > 0 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(p3Got) != 1 {
		t.Fatalf("peer-3 expected 1 message, got %d", len(p3Got))
	}
	if len(p2Got) != 0 {
		t.Fatalf("peer-2 should not observe a message addressed to peer-3, got %d", len(p2Got))
	}
	if p3Got[0].From != "peer-1" {
		t.Errorf("From = %q, want peer-1", p3Got[0].From)
	}
}

func TestHubDeliveryIsAsynchronous(t *testing.T) {
	hub := NewHub()
	p1 := hub.Join("peer-1")
	p2 := hub.Join("peer-2")

	received := make(chan struct{})
	p2.OnMessage(func(Message) { close(received) })

	if err := p1.Send(context.Background(), Message{To: "peer-2"}); err != nil {
		t.Fatalf("send: %v", err)
	}

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for async delivery")
	}
}

func TestHubUnknownRecipientIsANoop(t *testing.T) {
	hub := NewHub()
	p1 := hub.Join("peer-1")
	if err := p1.Send(context.Background(), Message{To: "nobody"}); err != nil {
		t.Fatalf("send to unknown peer should not error: %v", err)
	}
}
