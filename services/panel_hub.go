package services

import (
	"encoding/json"
	"log"
	"sync/atomic"
	"time"

	"main/middleware"
	"main/model"

	"github.com/gorilla/websocket"
)

// PanelHub fans filtered snapshots out to attached daily-panel windows
// and feeds their delete notifications back into the store. Panels never
// share memory with the main view; every frame is a self-contained copy.
type PanelHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan model.PanelMessage
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	count      atomic.Int64

	// onDelete receives the note id of each valid DELETED frame.
	onDelete func(noteID string)
}

func NewPanelHub(onDelete func(noteID string)) *PanelHub {
	return &PanelHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan model.PanelMessage),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		onDelete:   onDelete,
	}
}

// Run owns the client set. All registration and fan-out goes through the
// channels so no lock is needed around the map.
func (h *PanelHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true
			h.count.Add(1)
			log.Println("Panel attached")

		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
				h.count.Add(-1)
				log.Println("Panel detached")
			}

		case message := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteJSON(message); err != nil {
					log.Println("Error broadcasting to panel:", err)
					conn.Close()
					delete(h.clients, conn)
					h.count.Add(-1)
				}
			}
		}
	}
}

// Attach hands a freshly upgraded connection to the hub and blocks on
// its read loop until the panel goes away.
func (h *PanelHub) Attach(conn *websocket.Conn) {
	h.register <- conn
	defer func() {
		h.unregister <- conn
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		if noteID, ok := decodePanelDelete(data); ok {
			h.onDelete(noteID)
		}
	}
}

// decodePanelDelete validates an inbound frame. Only a well-formed
// DELETED frame carrying a note id produces a notification; anything
// else is dropped without comment.
func decodePanelDelete(data []byte) (string, bool) {
	var msg model.PanelMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return "", false
	}
	if msg.Kind != model.PanelKindDeleted || msg.ID == "" {
		return "", false
	}
	return msg.ID, true
}

// Broadcast sends a frame to every attached panel.
func (h *PanelHub) Broadcast(message model.PanelMessage) {
	h.broadcast <- message
}

// ClientCount reports how many panels are attached.
func (h *PanelHub) ClientCount() int {
	return int(h.count.Load())
}

// PushSnapshotAfter schedules a snapshot push once the panel has had
// time to finish loading. The delay is a timing heuristic, not a
// guarantee. A panel that never attached is logged and skipped; the
// snapshot is built at push time so it reflects the current store.
func (h *PanelHub) PushSnapshotAfter(delay time.Duration, snapshot func() model.PanelMessage) {
	go func() {
		time.Sleep(delay)
		if h.ClientCount() == 0 {
			log.Println("No panel attached, skipping snapshot push")
			middleware.TrackPanelPush("skipped")
			return
		}
		h.Broadcast(snapshot())
		middleware.TrackPanelPush("sent")
	}()
}
