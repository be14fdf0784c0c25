package broadcast_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/updown/broadcast"
	"github.com/jetsetilly/updown/intent"
	"github.com/jetsetilly/updown/trainer"
	"github.com/jetsetilly/updown/test"
)

type message struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

func connect(t *testing.T, hub *broadcast.Hub) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	test.DemandSuccess(t, err)
	t.Cleanup(func() { conn.Close() })

	// wait for the hub to register the client
	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client was not registered")
		}
		time.Sleep(time.Millisecond)
	}

	return conn
}

func read(t *testing.T, conn *websocket.Conn) message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, b, err := conn.ReadMessage()
	test.DemandSuccess(t, err)

	var m message
	test.DemandSuccess(t, json.Unmarshal(b, &m))
	return m
}

func TestPublish(t *testing.T) {
	hub := broadcast.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	conn := connect(t, hub)

	hub.PublishIntent(intent.Intent{
		Direction: intent.Up,
		Source:    intent.Keyboard,
		Timestamp: time.Now(),
	})
	m := read(t, conn)
	test.ExpectEquality(t, m.Type, "intent")
	test.ExpectEquality(t, m.Data["direction"], any("up"))
	test.ExpectEquality(t, m.Data["source"], any("keyboard"))

	s := trainer.Reduce(trainer.InitialState(), trainer.Input{Direction: intent.Up})
	hub.PublishState(s)
	m = read(t, conn)
	test.ExpectEquality(t, m.Type, "state")
	test.ExpectEquality(t, m.Data["selected"], any("top"))
	test.ExpectEquality(t, m.Data["target"], any("down"))
	test.ExpectEquality(t, m.Data["successes"], any(1.0))
}

func TestRunStops(t *testing.T) {
	hub := broadcast.NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan bool)
	go func() {
		hub.Run(ctx)
		done <- true
	}()

	connect(t, hub)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("hub did not stop")
	}
	test.ExpectEquality(t, hub.Clients(), 0)
}

func TestPublishWithoutClients(t *testing.T) {
	hub := broadcast.NewHub()

	// publishing never blocks, even when nothing is draining the queue
	for range 1000 {
		hub.PublishIntent(intent.Intent{Direction: intent.Down})
	}
}

func TestStart(t *testing.T) {
	hub := broadcast.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr, err := broadcast.Start(ctx, "127.0.0.1:0", hub)
	test.DemandSuccess(t, err)

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr.String()+broadcast.Path, nil)
	test.DemandSuccess(t, err)
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client was not registered")
		}
		time.Sleep(time.Millisecond)
	}

	hub.PublishIntent(intent.Intent{Direction: intent.Down, Source: intent.Device})
	m := read(t, conn)
	test.ExpectEquality(t, m.Type, "intent")
	test.ExpectEquality(t, m.Data["direction"], any("down"))
}

func TestStartAddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	test.DemandSuccess(t, err)
	defer ln.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// the error is reported immediately rather than from a goroutine
	addr, err := broadcast.Start(ctx, ln.Addr().String(), broadcast.NewHub())
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, addr, nil)
}
