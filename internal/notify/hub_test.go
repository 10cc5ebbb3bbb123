package notify_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/tdat2209/Read-Track-Backend/internal/notify"
	"github.com/tdat2209/Read-Track-Backend/pkg/logger"
)

func setupHub(t *testing.T) (*notify.Hub, string, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init(logger.ERROR, false, nil)

	hub := notify.NewHub(logger.GetLogger())
	go hub.Run()

	router := gin.New()
	router.GET("/ws", hub.HandleWS)
	server := httptest.NewServer(router)

	wsURL := strings.Replace(server.URL, "http://", "ws://", 1) + "/ws"
	cleanup := func() {
		hub.Stop()
		server.Close()
	}
	return hub, wsURL, cleanup
}

func TestHub_BroadcastsPublishedEvents(t *testing.T) {
	hub, wsURL, cleanup := setupHub(t)
	defer cleanup()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Registration goes through the hub's run loop; give it a moment.
	time.Sleep(50 * time.Millisecond)

	hub.Publish(notify.EventBookCreated, map[string]interface{}{"id": 42, "title": "Dune"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var event notify.Event
	if err := json.Unmarshal(data, &event); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if event.Type != notify.EventBookCreated {
		t.Fatalf("expected %s, got %s", notify.EventBookCreated, event.Type)
	}
	if event.ID == "" {
		t.Fatal("event id must be set")
	}

	payload, ok := event.Payload.(map[string]interface{})
	if !ok || payload["title"] != "Dune" {
		t.Fatalf("unexpected payload: %#v", event.Payload)
	}
}

func TestHub_MultipleSubscribersReceiveSameEvent(t *testing.T) {
	hub, wsURL, cleanup := setupHub(t)
	defer cleanup()

	conns := make([]*websocket.Conn, 0, 2)
	for i := 0; i < 2; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			t.Fatalf("dial %d: %v", i, err)
		}
		defer conn.Close()
		conns = append(conns, conn)
	}
	time.Sleep(50 * time.Millisecond)

	hub.Publish(notify.EventLogCreated, map[string]interface{}{"pagesRead": 10})

	for i, conn := range conns {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("subscriber %d read: %v", i, err)
		}
		var event notify.Event
		if err := json.Unmarshal(data, &event); err != nil {
			t.Fatalf("subscriber %d decode: %v", i, err)
		}
		if event.Type != notify.EventLogCreated {
			t.Fatalf("subscriber %d: expected %s, got %s", i, notify.EventLogCreated, event.Type)
		}
	}
}
