package usecase

import (
	"errors"

	"main/model"
)

// EditState is the per-card state: a note is either shown as-is or has
// its fields projected into editable controls.
type EditState int

const (
	EditIdle EditState = iota
	EditActive
)

var ErrEditInProgress = errors.New("another note is already being edited")

// EditSession governs the VIEW -> EDITING -> VIEW transitions. At most
// one note may be in EDITING at a time; Begin on a second note fails
// instead of silently collapsing the open editor. Save and Cancel both
// return to VIEW.
type EditSession struct {
	state  EditState
	noteID string
	draft  model.Note
}

// Begin projects the note's current field values into the draft. It does
// not touch the store. Re-entering the card already being edited resets
// the draft to the note's current values.
func (e *EditSession) Begin(n *model.Note) error {
	if e.state == EditActive && e.noteID != n.ID {
		return ErrEditInProgress
	}
	e.state = EditActive
	e.noteID = n.ID
	e.draft = *n
	return nil
}

// Editing reports whether the given note is the one in EDITING.
func (e *EditSession) Editing(id string) bool {
	return e.state == EditActive && e.noteID == id
}

// Active returns the id of the note being edited, if any.
func (e *EditSession) Active() (string, bool) {
	if e.state != EditActive {
		return "", false
	}
	return e.noteID, true
}

// Draft returns the field values captured when the edit began.
func (e *EditSession) Draft() (model.Note, bool) {
	if e.state != EditActive {
		return model.Note{}, false
	}
	return e.draft, true
}

// End returns to VIEW, discarding the draft. Used by both exits.
func (e *EditSession) End() {
	e.state = EditIdle
	e.noteID = ""
	e.draft = model.Note{}
}
