package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"main/model"

	"github.com/gorilla/websocket"
)

func TestDecodePanelDelete(t *testing.T) {
	tests := []struct {
		name   string
		frame  string
		wantID string
		wantOK bool
	}{
		{"ValidDelete", `{"kind":"DELETED","id":"n1"}`, "n1", true},
		{"MissingID", `{"kind":"DELETED"}`, "", false},
		{"EmptyID", `{"kind":"DELETED","id":""}`, "", false},
		{"WrongKind", `{"kind":"SNAPSHOT","id":"n1"}`, "", false},
		{"LowercaseKind", `{"kind":"deleted","id":"n1"}`, "", false},
		{"UnknownKind", `{"kind":"ARCHIVED","id":"n1"}`, "", false},
		{"NotJSON", `deleted n1`, "", false},
		{"EmptyFrame", ``, "", false},
		{"NullFrame", `null`, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := decodePanelDelete([]byte(tc.frame))
			if id != tc.wantID || ok != tc.wantOK {
				t.Errorf("decodePanelDelete(%q) = (%q, %v), want (%q, %v)",
					tc.frame, id, ok, tc.wantID, tc.wantOK)
			}
		})
	}
}

// dialTestHub runs a hub behind an httptest server and returns a
// connected client.
func dialTestHub(t *testing.T, hub *PanelHub) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Attach(conn)
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *PanelHub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("client count stuck at %d, want %d", hub.ClientCount(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPanelHubBroadcast(t *testing.T) {
	hub := NewPanelHub(func(string) {})
	go hub.Run()

	conn := dialTestHub(t, hub)
	waitForClients(t, hub, 1)

	sent := model.PanelMessage{
		Kind: model.PanelKindSnapshot,
		Notes: []*model.Note{
			{ID: "n1", Text: "on the panel", Date: "2026-04-21", Priority: 3},
		},
	}
	hub.Broadcast(sent)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var received model.PanelMessage
	if err := conn.ReadJSON(&received); err != nil {
		t.Fatal("read:", err)
	}
	if received.Kind != model.PanelKindSnapshot {
		t.Errorf("kind = %q, want %q", received.Kind, model.PanelKindSnapshot)
	}
	if len(received.Notes) != 1 || received.Notes[0].ID != "n1" {
		t.Errorf("notes = %v", received.Notes)
	}
}

func TestPanelHubDeleteNotification(t *testing.T) {
	deleted := make(chan string, 1)
	hub := NewPanelHub(func(noteID string) {
		deleted <- noteID
	})
	go hub.Run()

	conn := dialTestHub(t, hub)
	waitForClients(t, hub, 1)

	// A malformed frame is dropped, a valid one reaches the callback.
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`not json`)); err != nil {
		t.Fatal("write:", err)
	}
	if err := conn.WriteJSON(model.PanelMessage{Kind: model.PanelKindDeleted, ID: "n42"}); err != nil {
		t.Fatal("write:", err)
	}

	select {
	case id := <-deleted:
		if id != "n42" {
			t.Errorf("deleted id = %q, want n42", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("delete notification never arrived")
	}
}

func TestPanelHubDetachOnClose(t *testing.T) {
	hub := NewPanelHub(func(string) {})
	go hub.Run()

	conn := dialTestHub(t, hub)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)
}
