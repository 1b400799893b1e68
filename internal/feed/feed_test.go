package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func eventsURL(t *testing.T, baseURL string) string {
	t.Helper()

	parsed, err := url.Parse(baseURL)
	if err != nil {
		t.Fatalf("failed to parse test server url: %v", err)
	}
	parsed.Scheme = "ws"
	parsed.Path = "/events"
	return parsed.String()
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	for i := 0; i < 100; i++ {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Expected %d clients, got %d", want, hub.ClientCount())
}

func TestPublishReachesSubscriber(t *testing.T) {
	server := NewServer("")
	srv := httptest.NewServer(http.HandlerFunc(server.handleEvents))
	t.Cleanup(srv.Close)

	conn, resp, err := websocket.DefaultDialer.Dial(eventsURL(t, srv.URL), nil)
	if err != nil {
		t.Fatalf("failed to open websocket connection: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
		if resp != nil {
			resp.Body.Close()
		}
	})

	waitForClients(t, server.Hub(), 1)

	sent := Event{
		Type:          TypeTurn,
		Difficulty:    "normal",
		Turn:          7,
		Health:        3,
		MaxHealth:     5,
		DroneDistance: 2,
		Mood:          "mid",
		Outcome:       "trapped",
		Line:          "The floor erupts in sparks.",
	}
	server.Publish(sent)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read published event: %v", err)
	}

	var got Event
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("failed to decode event payload: %v", err)
	}
	if got != sent {
		t.Errorf("Expected %+v, got %+v", sent, got)
	}
}

func TestDisconnectedClientIsRemoved(t *testing.T) {
	server := NewServer("")
	srv := httptest.NewServer(http.HandlerFunc(server.handleEvents))
	t.Cleanup(srv.Close)

	conn, resp, err := websocket.DefaultDialer.Dial(eventsURL(t, srv.URL), nil)
	if err != nil {
		t.Fatalf("failed to open websocket connection: %v", err)
	}
	if resp != nil {
		t.Cleanup(func() { resp.Body.Close() })
	}

	waitForClients(t, server.Hub(), 1)

	conn.Close()
	waitForClients(t, server.Hub(), 0)
}

func TestPublishWithoutClients(t *testing.T) {
	hub := NewHub()

	// Must not panic or block
	hub.Publish(Event{Type: TypeStatus, Line: "all quiet"})

	if hub.ClientCount() != 0 {
		t.Errorf("Expected no clients, got %d", hub.ClientCount())
	}
}

func TestServerStartAndShutdown(t *testing.T) {
	server := NewServer("127.0.0.1:0")

	if err := server.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if server.Addr() == nil {
		t.Fatal("Expected a bound address after Start")
	}

	wsURL := "ws://" + server.Addr().String() + "/events"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to dial running server: %v", err)
	}
	conn.Close()
	if resp != nil {
		resp.Body.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
}
