package signaling

import (
	"context"
	"testing"
)

func TestManualProviderRoutesThroughSink(t *testing.T) {
	var captured Message
	p := NewManualProvider("local", func(m Message) { captured = m })

	err := p.Send(context.Background(), Message{Kind: KindAnswer, To: "remote", Payload: []byte("sdp")})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if captured.From != "local" {
		t.Errorf("From = %q, want local", captured.From)
	}
	if captured.Kind != KindAnswer {
		t.Errorf("Kind = %q, want answer", captured.Kind)
	}
}

func TestManualProviderReceiveInjectsMessage(t *testing.T) {
	p := NewManualProvider("local", nil)

	var got Message
	delivered := false
	p.OnMessage(func(m Message) {
		got = m
		delivered = true
	})

	p.Receive(Message{Kind: KindOffer, From: "remote", To: "local", Payload: []byte("offer-sdp")})

	if !delivered {
		t.Fatal("expected handler to be invoked")
	}
	if got.From != "remote" {
		t.Errorf("From = %q, want remote", got.From)
	}
}

func TestManualProviderReceiveWithoutHandlerIsSafe(t *testing.T) {
	p := NewManualProvider("local", nil)
	p.Receive(Message{Kind: KindOffer})
}
