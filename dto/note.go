package dto

// CreateNoteRequest carries the raw creation-form values. Text length is
// capped at the transport edge the way the form caps it; everything else
// goes through the domain validation so the caller sees the specific
// failure reason. Priority arrives as typed and is normalized, never
// rejected.
type CreateNoteRequest struct {
	Text     string `json:"text" binding:"max=200"`
	Date     string `json:"date"`
	Priority string `json:"priority"`
}

// NoteActionRequest is the single dispatch payload for per-note actions.
// Confirmed applies to delete; the field values apply to save.
type NoteActionRequest struct {
	Action    string `json:"action" binding:"required"`
	Confirmed bool   `json:"confirmed,omitempty"`
	Text      string `json:"text,omitempty" binding:"max=200"`
	Date      string `json:"date,omitempty"`
	Priority  string `json:"priority,omitempty"`
}

// DraftRequest mirrors the creation form for session-scoped draft saves.
type DraftRequest struct {
	Text     string `json:"text" binding:"max=200"`
	Date     string `json:"date"`
	Priority string `json:"priority"`
}

// SnapshotURI binds the snapshot timestamp path segment.
type SnapshotURI struct {
	Timestamp string `uri:"ts" binding:"required,rfc3339"`
}
