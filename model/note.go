package model

// Note is the single persistent entity: a dated, prioritized reminder.
// Date is stored as ISO YYYY-MM-DD with no time component.
type Note struct {
	ID        string `bson:"_id" json:"id"`
	Text      string `bson:"text" json:"text"`
	Date      string `bson:"date" json:"date"`
	Priority  int    `bson:"priority" json:"priority"`
	Completed bool   `bson:"completed,omitempty" json:"completed,omitempty"`
}

// Priority bounds; out-of-range input is clamped at construction, never rejected.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// Clone returns an independent copy of the note.
func (n *Note) Clone() *Note {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}

// CloneNotes deep-copies a note list so callers can hand it out
// without sharing mutable state with the store.
func CloneNotes(notes []*Note) []*Note {
	out := make([]*Note, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}
