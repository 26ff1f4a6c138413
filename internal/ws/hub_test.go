package ws

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("client count = %d, want %d", h.ClientCount(), want)
}

func TestHub_RegisterAndUnregister(t *testing.T) {
	h := NewHub(testLogger())
	go h.Run()

	c := &Client{hub: h, send: make(chan []byte, 1)}
	h.Register(c)
	waitForClients(t, h, 1)

	h.Unregister(c)
	waitForClients(t, h, 0)

	if _, ok := <-c.send; ok {
		t.Fatal("send channel still open after unregister")
	}
}

func TestHub_SlowClientDroppedWithoutBlocking(t *testing.T) {
	h := NewHub(testLogger())
	go h.Run()

	slow := &Client{hub: h, send: make(chan []byte)}
	h.Register(slow)
	healthy := &Client{hub: h, send: make(chan []byte, 64)}
	h.Register(healthy)
	waitForClients(t, h, 2)

	for i := 0; i < 5; i++ {
		h.Broadcast([]byte(`{"type":"application.created"}`))
	}

	waitForClients(t, h, 1)
	if _, ok := <-slow.send; ok {
		t.Fatal("slow client send channel still open after drop")
	}
	select {
	case msg := <-healthy.send:
		if len(msg) == 0 {
			t.Fatal("healthy client received empty message")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("healthy client received nothing")
	}
}
