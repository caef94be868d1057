package signaling

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestBroadcastChannelWildcardReachesEveryone(t *testing.T) {
	ch := NewBroadcastChannel()
	a := ch.Join("a")
	b := ch.Join("b")
	c := ch.Join("c")

	var mu sync.Mutex
	got := map[string]bool{}
	wait := make(chan struct{}, 2)

	for _, p := range []*BroadcastProvider{b, c} {
		p := p
		p.OnMessage(func(m Message) {
			mu.Lock()
			got[p.LocalID()] = true
			mu.Unlock()
			wait <- struct{}{}
		})
	}

	if err := a.Send(context.Background(), Message{Kind: KindHangup, To: Wildcard}); err != nil {
		t.Fatalf("send: %v", err)
	}

	for i := 0; i < 2; i++ {
		select {
		case <-wait:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for broadcast fan-out")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if !got["b"] || !got["c"] {
		t.Errorf("expected both b and c to observe the broadcast, got %v", got)
	}
}

func TestBroadcastChannelTargetedMessageSkipsOthers(t *testing.T) {
	ch := NewBroadcastChannel()
	a := ch.Join("a")
	b := ch.Join("b")
	c := ch.Join("c")

	var mu sync.Mutex
	var bGot, cGot int
	done := make(chan struct{})

	b.OnMessage(func(Message) {
		mu.Lock()
		bGot++
		mu.Unlock()
		close(done)
	})
	c.OnMessage(func(Message) {
		mu.Lock()
		cGot++
		mu.Unlock()
	})

	if err := a.Send(context.Background(), Message{To: "b"}); err != nil {
		t.Fatalf("send: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for targeted delivery")
	}

	mu.Lock()
	defer mu.Unlock()
	if bGot != 1 {
		t.Errorf("b should have received exactly 1 message, got %d", bGot)
	}
	if cGot != 0 {
		t.Errorf("c should not have received the message addressed to b, got %d", cGot)
	}
}

func TestBroadcastChannelSenderDoesNotReceiveOwnMessage(t *testing.T) {
	ch := NewBroadcastChannel()
	a := ch.Join("a")

	got := false
	a.OnMessage(func(Message) { got = true })

	if err := a.Send(context.Background(), Message{To: Wildcard}); err != nil {
		t.Fatalf("send: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if got {
		t.Error("sender should not receive its own broadcast")
	}
}
