package model

import "fmt"

// ActionKind is the closed set of per-note user intents the UI can emit.
type ActionKind string

const (
	ActionComplete   ActionKind = "complete"
	ActionUncomplete ActionKind = "uncomplete"
	ActionDelete     ActionKind = "delete"
	ActionEdit       ActionKind = "edit"
	ActionSave       ActionKind = "save"
	ActionCancel     ActionKind = "cancel"
)

// ParseActionKind rejects anything outside the closed set.
func ParseActionKind(s string) (ActionKind, error) {
	switch ActionKind(s) {
	case ActionComplete, ActionUncomplete, ActionDelete,
		ActionEdit, ActionSave, ActionCancel:
		return ActionKind(s), nil
	default:
		return "", fmt.Errorf("unknown action kind %q", s)
	}
}

// Mutating reports whether the action changes the store (and therefore
// requires a persistence write). Edit and cancel only touch view state.
func (a ActionKind) Mutating() bool {
	switch a {
	case ActionComplete, ActionUncomplete, ActionDelete, ActionSave:
		return true
	default:
		return false
	}
}
