package model

// Panel wire protocol. The daily panel (external viewer) only ever
// receives copies of notes and sends back discrete delete notifications;
// it never shares memory with the store.
const (
	PanelKindSnapshot = "SNAPSHOT"
	PanelKindDeleted  = "DELETED"
)

// PanelMessage is the single frame shape exchanged with the panel.
// Outbound: {kind: "SNAPSHOT", notes: [...]}. Inbound: {kind: "DELETED", id}.
type PanelMessage struct {
	Kind  string  `json:"kind"`
	Notes []*Note `json:"notes,omitempty"`
	ID    string  `json:"id,omitempty"`
}
